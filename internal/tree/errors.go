package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree operations. All of them are recoverable
// outcomes: the interactive layer reports them and re-prompts.
var (
	// ErrNotFound indicates the referenced id does not exist in the tree.
	ErrNotFound = errors.New("tree: id not found")

	// ErrDuplicateID indicates a new id collides with an existing one.
	ErrDuplicateID = errors.New("tree: id already exists")

	// ErrRootProtected indicates an attempt to delete the root node.
	ErrRootProtected = errors.New("tree: root node cannot be deleted")

	// ErrMissingParent indicates the parent id referenced by an add does
	// not exist. Unlike ErrNotFound it is part of the autocreate
	// protocol: the caller may create a placeholder and retry.
	ErrMissingParent = errors.New("tree: parent id not found")
)

// MissingParentError carries the parent id that failed to resolve so the
// caller can offer to create it. It matches ErrMissingParent under
// errors.Is.
type MissingParentError struct {
	ParentID string
}

// Error implements the error interface.
func (e *MissingParentError) Error() string {
	return fmt.Sprintf("tree: parent %q not found", e.ParentID)
}

// Unwrap returns the underlying sentinel error.
func (e *MissingParentError) Unwrap() error {
	return ErrMissingParent
}
