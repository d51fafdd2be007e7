package commands

import (
	"context"

	"github.com/google/uuid"

	"chefpartner/internal/domain/pricing"
	reqdto "chefpartner/internal/handler/dto/request"
	"chefpartner/internal/infra"
	"chefpartner/internal/pkg/errs"
	"chefpartner/internal/usecase/shared"
)

var (
	ErrInvalidRuleDefinition = errs.New("invalid discount rule definition")
	ErrRuleNotFound          = errs.New("discount rule not found")
)

type DiscountRuleCommands interface {
	// Create validates the definition and persists a new rule.
	Create(ctx context.Context, partnerID uuid.UUID, req reqdto.UpsertDiscountRuleRequest) (uuid.UUID, error)
	// Update replaces a rule's definition in place.
	Update(ctx context.Context, partnerID, ruleID uuid.UUID, req reqdto.UpsertDiscountRuleRequest) error
	Delete(ctx context.Context, ruleID uuid.UUID) error
	SetActive(ctx context.Context, ruleID uuid.UUID, active bool) error
}

type discountRuleCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewDiscountRuleCommands(uow shared.UnitOfWork) DiscountRuleCommands {
	return &discountRuleCommandsImpl{uow: uow}
}

func (c *discountRuleCommandsImpl) Create(ctx context.Context, partnerID uuid.UUID, req reqdto.UpsertDiscountRuleRequest) (uuid.UUID, error) {
	rule, err := req.ToDomain(partnerID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRuleDefinition)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Rules().Upsert(ctx, tx.DB(), rule)
		return txErr
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *discountRuleCommandsImpl) Update(ctx context.Context, partnerID, ruleID uuid.UUID, req reqdto.UpsertDiscountRuleRequest) error {
	validated, err := req.ToDomain(partnerID)
	if err != nil {
		return errs.Mark(err, ErrInvalidRuleDefinition)
	}

	rule := pricing.ReconstructRule(
		ruleID,
		partnerID,
		validated.Scope(),
		validated.Discount(),
		validated.IsActive(),
		validated.ValidFrom(),
		validated.ValidUntil(),
		validated.CreatedAt(),
		validated.UpdatedAt(),
	)

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Rules().Upsert(ctx, tx.DB(), rule)
		return txErr
	})
}

func (c *discountRuleCommandsImpl) Delete(ctx context.Context, ruleID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rules().Delete(ctx, tx.DB(), ruleID)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrRuleNotFound)
	}
	return err
}

func (c *discountRuleCommandsImpl) SetActive(ctx context.Context, ruleID uuid.UUID, active bool) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rules().SetActive(ctx, tx.DB(), ruleID, active)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrRuleNotFound)
	}
	return err
}
