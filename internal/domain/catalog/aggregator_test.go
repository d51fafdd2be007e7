//go:build unit

package catalog_test

import (
	"testing"

	"chefpartner/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func row(id uuid.UUID, path string, depth int) catalog.CategoryRow {
	return catalog.CategoryRow{ID: id, Path: path, Depth: depth}
}

func TestHierarchicalCounts(t *testing.T) {
	t.Run("parent includes descendant counts", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		rows := []catalog.CategoryRow{
			row(a, "/rm/oven", 2),
			row(b, "/rm/oven/combi", 3),
		}
		direct := map[uuid.UUID]int64{a: 5, b: 3}

		counts := catalog.HierarchicalCounts(rows, direct)

		assert.Equal(t, int64(8), counts[a])
		assert.Equal(t, int64(3), counts[b])
	})

	t.Run("sibling sharing a string prefix is excluded", func(t *testing.T) {
		oven, ovenware, combi := uuid.New(), uuid.New(), uuid.New()
		rows := []catalog.CategoryRow{
			row(oven, "/rm/oven", 2),
			row(ovenware, "/rm/ovenware", 2),
			row(combi, "/rm/oven/combi", 3),
		}
		direct := map[uuid.UUID]int64{oven: 5, ovenware: 7, combi: 3}

		counts := catalog.HierarchicalCounts(rows, direct)

		assert.Equal(t, int64(8), counts[oven])
		assert.Equal(t, int64(7), counts[ovenware])
	})

	t.Run("multi-level rollup", func(t *testing.T) {
		root, mid, leafA, leafB := uuid.New(), uuid.New(), uuid.New(), uuid.New()
		rows := []catalog.CategoryRow{
			row(root, "/rm", 1),
			row(mid, "/rm/oven", 2),
			row(leafA, "/rm/oven/combi", 3),
			row(leafB, "/rm/oven/convection", 3),
		}
		direct := map[uuid.UUID]int64{root: 1, mid: 2, leafA: 3, leafB: 4}

		counts := catalog.HierarchicalCounts(rows, direct)

		assert.Equal(t, int64(10), counts[root])
		assert.Equal(t, int64(9), counts[mid])
		assert.Equal(t, int64(3), counts[leafA])
		assert.Equal(t, int64(4), counts[leafB])
	})

	t.Run("hierarchical is never below direct", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
		rows := []catalog.CategoryRow{
			row(ids[0], "/g", 1),
			row(ids[1], "/g/fridge", 2),
			row(ids[2], "/g/fridge/wine", 3),
			row(ids[3], "/g/dishwasher", 2),
		}
		direct := map[uuid.UUID]int64{ids[0]: 0, ids[1]: 12, ids[2]: 4, ids[3]: 9}

		counts := catalog.HierarchicalCounts(rows, direct)

		for _, id := range ids {
			assert.GreaterOrEqual(t, counts[id], direct[id])
		}
	})

	t.Run("malformed path is excluded but keeps its direct count", func(t *testing.T) {
		good, noSlash, badDepth := uuid.New(), uuid.New(), uuid.New()
		rows := []catalog.CategoryRow{
			row(good, "/rm", 1),
			row(noSlash, "rm/oven", 2),
			row(badDepth, "/rm/oven", 3),
		}
		direct := map[uuid.UUID]int64{good: 2, noSlash: 5, badDepth: 7}

		counts := catalog.HierarchicalCounts(rows, direct)

		assert.Equal(t, int64(2), counts[good], "malformed rows must not contribute to ancestors")
		assert.Equal(t, int64(5), counts[noSlash])
		assert.Equal(t, int64(7), counts[badDepth])
	})

	t.Run("gap in the stored hierarchy still reaches the ancestor", func(t *testing.T) {
		root, grandchild := uuid.New(), uuid.New()
		rows := []catalog.CategoryRow{
			row(root, "/rm", 1),
			row(grandchild, "/rm/oven/combi", 3),
		}
		direct := map[uuid.UUID]int64{root: 1, grandchild: 6}

		counts := catalog.HierarchicalCounts(rows, direct)

		assert.Equal(t, int64(7), counts[root])
		assert.Equal(t, int64(6), counts[grandchild])
	})

	t.Run("category missing from direct counts defaults to zero", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		rows := []catalog.CategoryRow{
			row(a, "/rm", 1),
			row(b, "/rm/oven", 2),
		}
		direct := map[uuid.UUID]int64{b: 3}

		counts := catalog.HierarchicalCounts(rows, direct)

		assert.Equal(t, int64(3), counts[a])
	})

	t.Run("empty input", func(t *testing.T) {
		counts := catalog.HierarchicalCounts(nil, nil)
		assert.Empty(t, counts)
	})
}
