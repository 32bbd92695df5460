package query

import "github.com/tair/catalog-service/internal/catalog/domain"

// CategoryNode is a category with its direct children
type CategoryNode struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	ImageURL *string         `json:"imageUrl"`
	ParentID *uint           `json:"parentId"`
	IsActive domain.Status   `json:"isActive"`
	Children []*CategoryNode `json:"children"`
}

// BuildCategoryTree nests a flat category list into a forest. Roots are the
// records without a parent; children keep their input order. Records whose
// parent is not in the list are left out, and a category is emitted at most
// once, so corrupted parent chains cannot loop.
func BuildCategoryTree(categories []domain.Category) []*CategoryNode {
	var roots []int
	children := make(map[uint][]int, len(categories))
	for i, c := range categories {
		if c.ParentID == nil {
			roots = append(roots, i)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], i)
	}

	visited := make(map[uint]struct{}, len(categories))
	var build func(indexes []int) []*CategoryNode
	build = func(indexes []int) []*CategoryNode {
		nodes := make([]*CategoryNode, 0, len(indexes))
		for _, i := range indexes {
			c := categories[i]
			if _, seen := visited[c.ID]; seen {
				continue
			}
			visited[c.ID] = struct{}{}

			nodes = append(nodes, &CategoryNode{
				ID:       c.ID,
				Name:     c.Name,
				Slug:     c.Slug,
				ImageURL: c.ImageURL,
				ParentID: c.ParentID,
				IsActive: c.IsActive,
				Children: build(children[c.ID]),
			})
		}
		return nodes
	}

	return build(roots)
}

// FlattenCategoryTree lists node ids in pre-order
func FlattenCategoryTree(nodes []*CategoryNode) []uint {
	var ids []uint
	var walk func([]*CategoryNode)
	walk = func(nodes []*CategoryNode) {
		for _, n := range nodes {
			ids = append(ids, n.ID)
			walk(n.Children)
		}
	}
	walk(nodes)
	return ids
}
