package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrMalformedPath = errors.New("malformed category path")

// CategoryRow is one category of a brand's hierarchy as stored: a
// materialized path like /rm/oven/combi plus its segment depth.
type CategoryRow struct {
	ID    uuid.UUID
	Path  string
	Depth int
	Name  string
}

// Validate checks the materialized-path invariants: a leading slash, no
// empty segments, and depth equal to the number of segments.
func (r CategoryRow) Validate() error {
	if !strings.HasPrefix(r.Path, "/") {
		return ErrMalformedPath
	}
	segments := strings.Split(strings.TrimPrefix(r.Path, "/"), "/")
	if len(segments) != r.Depth {
		return ErrMalformedPath
	}
	for _, s := range segments {
		if s == "" {
			return ErrMalformedPath
		}
	}
	return nil
}

// ParentPath returns the path one segment up, or "" for a root category.
func ParentPath(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx <= 0 {
		return ""
	}
	return path[:idx]
}
