package user

type Role string

const (
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePartner, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageRules reports whether the role may edit discount rules.
func (r Role) CanManageRules() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
