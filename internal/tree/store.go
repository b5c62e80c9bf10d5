// Package tree implements the in-memory taxonomy tree: typed nodes keyed
// by unique string ids, with lookup, validated insertion, and recursive
// deletion. Every operation is a pure in-memory mutation; persistence is
// the storage package's job.
package tree

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

const (
	// RootID is the id given to the root of a freshly created skeleton.
	// A loaded tree keeps whatever root id its file carries.
	RootID = "T0000"

	// RootSentinel resolves to the root node without a search. It is not
	// a real id; case does not matter.
	RootSentinel = "root"
)

const (
	rootTitle       = "tactics"
	rootDescription = "Methods and techniques used to execute fraudulent operations"
)

// Store owns a single tree of taxonomy nodes and guards its invariants:
// ids are unique tree-wide and the root node is never removed. A Store
// is not safe for concurrent use; the editor has exactly one mutator.
type Store struct {
	root *Node
}

// New returns a Store holding the fresh root-only skeleton.
func New() *Store {
	return &Store{root: newNode(RootID, rootTitle, rootDescription)}
}

// FromRoot adopts an existing tree, typically one decoded from storage.
// It fails when the root is missing, any id is empty, or any id appears
// more than once. Nil child slices are normalized to empty ones.
func FromRoot(root *Node) (*Store, error) {
	if root == nil {
		return nil, fmt.Errorf("tree: missing root node")
	}
	seen := make(map[string]struct{})
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			return nil, fmt.Errorf("tree: null node in children")
		}
		if n.ID == "" {
			return nil, fmt.Errorf("tree: node with empty id")
		}
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("tree: duplicate id %q", n.ID)
		}
		seen[n.ID] = struct{}{}
		if n.Children == nil {
			n.Children = []*Node{}
		}
		stack = append(stack, n.Children...)
	}
	return &Store{root: root}, nil
}

// Root returns the root node.
func (s *Store) Root() *Node {
	return s.root
}

// Find resolves id to its node with a pre-order depth-first search over
// the whole tree. The RootSentinel resolves directly to the root.
func (s *Store) Find(id string) (*Node, error) {
	if strings.EqualFold(id, RootSentinel) {
		return s.root, nil
	}
	stack := []*Node{s.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.ID == id {
			return n, nil
		}
		// Push in reverse so children are visited in insertion order.
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return nil, ErrNotFound
}

// ResolveParent resolves the parent node for an add. A miss is reported
// as a *MissingParentError rather than ErrNotFound so the caller can run
// the placeholder-creation step and retry. The store takes no policy
// decision here; it only signals.
func (s *Store) ResolveParent(parentID string) (*Node, error) {
	n, err := s.Find(parentID)
	if err != nil {
		return nil, &MissingParentError{ParentID: parentID}
	}
	return n, nil
}

// Add creates a node under parentID and returns it. The new id must be
// unique across the whole tree; the new node is appended to the parent's
// children, preserving insertion order.
func (s *Store) Add(parentID, id, title, description string) (*Node, error) {
	if s.exists(id) {
		return nil, ErrDuplicateID
	}
	parent, err := s.ResolveParent(parentID)
	if err != nil {
		return nil, err
	}
	child := newNode(id, title, description)
	parent.Children = append(parent.Children, child)
	return child, nil
}

// CreatePlaceholder inserts a filler node for a parent id that did not
// resolve. attachUnder defaults to the root when nil; autocreate is
// single-level, so the root is the only attach point the editor uses.
func (s *Store) CreatePlaceholder(id, title, description string, attachUnder *Node) (*Node, error) {
	if s.exists(id) {
		return nil, ErrDuplicateID
	}
	if attachUnder == nil {
		attachUnder = s.root
	}
	child := newNode(id, title, description)
	attachUnder.Children = append(attachUnder.Children, child)
	return child, nil
}

// Delete removes id and its entire subtree in one operation. The root is
// protected, whether named by the sentinel or by its own id. The tree is
// untouched on any error.
func (s *Store) Delete(id string) error {
	if strings.EqualFold(id, RootSentinel) || strings.EqualFold(id, s.root.ID) {
		return ErrRootProtected
	}
	// Parent-tracking traversal: the target is spliced out of its
	// parent's child slice, taking the whole subtree with it.
	stack := []*Node{s.root}
	for len(stack) > 0 {
		parent := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, child := range parent.Children {
			if child.ID == id {
				parent.Children = slices.Delete(parent.Children, i, i+1)
				return nil
			}
		}
		for i := len(parent.Children) - 1; i >= 0; i-- {
			stack = append(stack, parent.Children[i])
		}
	}
	return ErrNotFound
}

// Walk yields (depth, node) pairs in pre-order, root at depth 0. The
// sequence is finite, has no side effects, and may be ranged over any
// number of times.
func (s *Store) Walk() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		type frame struct {
			depth int
			node  *Node
		}
		stack := []frame{{0, s.root}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(f.depth, f.node) {
				return
			}
			for i := len(f.node.Children) - 1; i >= 0; i-- {
				stack = append(stack, frame{f.depth + 1, f.node.Children[i]})
			}
		}
	}
}

// Size returns the number of nodes in the tree, root included.
func (s *Store) Size() int {
	n := 0
	for range s.Walk() {
		n++
	}
	return n
}

// exists reports whether id is already taken. The sentinel counts as
// taken because it always resolves to the root.
func (s *Store) exists(id string) bool {
	_, err := s.Find(id)
	return err == nil
}
