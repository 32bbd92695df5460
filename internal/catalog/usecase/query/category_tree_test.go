package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

func cat(id uint, parent *uint) domain.Category {
	return domain.Category{ID: id, Name: "c", Slug: "c", ParentID: parent, IsActive: domain.StatusActive}
}

func childIDs(n *CategoryNode) []uint {
	ids := []uint{}
	for _, c := range n.Children {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestBuildCategoryTree(t *testing.T) {
	input := []domain.Category{
		cat(1, nil),
		cat(2, ptr(uint(1))),
		cat(3, nil),
		cat(4, ptr(uint(1))),
		cat(5, ptr(uint(2))),
		cat(6, ptr(uint(3))),
	}

	tree := BuildCategoryTree(input)
	require.Len(t, tree, 2)

	// roots are exactly the parentless records, in input order
	assert.Equal(t, uint(1), tree[0].ID)
	assert.Equal(t, uint(3), tree[1].ID)

	// each node's children are exactly the records pointing at it
	var check func(nodes []*CategoryNode)
	check = func(nodes []*CategoryNode) {
		for _, n := range nodes {
			want := []uint{}
			for _, c := range input {
				if c.ParentID != nil && *c.ParentID == n.ID {
					want = append(want, c.ID)
				}
			}
			assert.Equal(t, want, childIDs(n), "children of %d", n.ID)
			check(n.Children)
		}
	}
	check(tree)

	// flat export and flattened tree hold the same ids
	flatIDs := []uint{}
	for _, c := range input {
		flatIDs = append(flatIDs, c.ID)
	}
	assert.ElementsMatch(t, flatIDs, FlattenCategoryTree(tree))
	assert.Equal(t, []uint{1, 2, 5, 4, 3, 6}, FlattenCategoryTree(tree))
}

func TestBuildCategoryTree_LeafHasEmptyChildren(t *testing.T) {
	tree := BuildCategoryTree([]domain.Category{cat(1, nil)})
	require.Len(t, tree, 1)
	assert.NotNil(t, tree[0].Children)
	assert.Empty(t, tree[0].Children)
}

func TestBuildCategoryTree_Empty(t *testing.T) {
	assert.Empty(t, BuildCategoryTree(nil))
}

func TestBuildCategoryTree_MalformedChains(t *testing.T) {
	tests := []struct {
		name  string
		input []domain.Category
		want  []uint
	}{
		{
			name:  "self parent is unreachable",
			input: []domain.Category{cat(1, nil), cat(2, ptr(uint(2)))},
			want:  []uint{1},
		},
		{
			name:  "two node cycle is unreachable",
			input: []domain.Category{cat(1, nil), cat(2, ptr(uint(3))), cat(3, ptr(uint(2)))},
			want:  []uint{1},
		},
		{
			name:  "parent filtered out upstream",
			input: []domain.Category{cat(1, nil), cat(2, ptr(uint(99)))},
			want:  []uint{1},
		},
		{
			name:  "duplicate ids are emitted once",
			input: []domain.Category{cat(1, nil), cat(2, ptr(uint(1))), cat(2, ptr(uint(1)))},
			want:  []uint{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tree []*CategoryNode
			require.NotPanics(t, func() { tree = BuildCategoryTree(tt.input) })
			assert.Equal(t, tt.want, FlattenCategoryTree(tree))
		})
	}
}
