package tree

// Node is one taxonomy entry: a Tactic, a Technique, or a Procedure.
// The kind is a naming convention carried by the id prefix (T, TQ, P),
// not a separate field. Children keep insertion order, which is also
// display order.
type Node struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Children    []*Node `json:"children"`
}

// newNode builds a leaf node with an allocated (non-nil) child slice so
// the node serializes as "children": [] rather than null.
func newNode(id, title, description string) *Node {
	return &Node{
		ID:          id,
		Title:       title,
		Description: description,
		Children:    []*Node{},
	}
}
