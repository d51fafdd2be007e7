package catalog

import (
	"log/slog"

	"github.com/google/uuid"
)

type node struct {
	id       uuid.UUID
	direct   int64
	children []int
}

// HierarchicalCounts rolls per-category direct product counts up the tree:
// each category's hierarchical count is its own direct count plus the direct
// counts of every descendant. Parent/child linking goes through the
// materialized path, so /rm/ovenware never folds into /rm/oven.
//
// Malformed rows are logged and excluded from the rollup; their own
// hierarchical count falls back to their direct count. Never fatal.
func HierarchicalCounts(rows []CategoryRow, direct map[uuid.UUID]int64) map[uuid.UUID]int64 {
	nodes := make([]node, 0, len(rows))
	byPath := make(map[string]int, len(rows))
	result := make(map[uuid.UUID]int64, len(rows))

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			slog.Warn("excluding malformed category from rollup",
				"category_id", row.ID, "path", row.Path, "depth", row.Depth)
			result[row.ID] = direct[row.ID]
			continue
		}
		byPath[row.Path] = len(nodes)
		nodes = append(nodes, node{id: row.ID, direct: direct[row.ID]})
	}

	roots := make([]int, 0, len(nodes))
	for path, idx := range byPath {
		// Link to the nearest present ancestor so a gap in the stored
		// hierarchy does not orphan a whole subtree.
		parent := -1
		for p := ParentPath(path); p != ""; p = ParentPath(p) {
			if pi, ok := byPath[p]; ok {
				parent = pi
				break
			}
		}
		if parent >= 0 {
			nodes[parent].children = append(nodes[parent].children, idx)
		} else {
			roots = append(roots, idx)
		}
	}

	for _, root := range roots {
		rollup(nodes, root, result)
	}
	return result
}

// rollup is a post-order traversal: children first, then the node itself.
func rollup(nodes []node, idx int, result map[uuid.UUID]int64) int64 {
	total := nodes[idx].direct
	for _, child := range nodes[idx].children {
		total += rollup(nodes, child, result)
	}
	result[nodes[idx].id] = total
	return total
}
