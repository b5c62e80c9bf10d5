package session

import (
	"errors"

	"github.com/fraudneuron/neuronctl/internal/tree"
)

// FlowState identifies where an AddFlow is in the add protocol.
type FlowState int

const (
	// AwaitingParent: no parent resolved yet.
	AwaitingParent FlowState = iota
	// AwaitingPlaceholderDetails: the parent id did not resolve; the
	// caller must either create a placeholder or abort.
	AwaitingPlaceholderDetails
	// Ready: parent resolved, the add can proceed.
	Ready
	// Done: the add completed.
	Done
	// Aborted: the caller gave up after a missing parent.
	Aborted
)

// ErrFlowState reports an AddFlow primitive called in the wrong state.
var ErrFlowState = errors.New("session: add flow used out of order")

// AddFlow sequences a single add as an explicit state machine around the
// missing-parent case: resolve the parent, then either create a
// placeholder under the root or abort, then finish the add. The store
// supplies the primitives; the flow only orders them, which keeps the
// whole protocol synchronous and testable without console input.
type AddFlow struct {
	store    *tree.Store
	state    FlowState
	parentID string
	parent   *tree.Node
}

// NewAddFlow starts a flow in AwaitingParent.
func NewAddFlow(store *tree.Store) *AddFlow {
	return &AddFlow{store: store}
}

// State returns the current protocol state.
func (f *AddFlow) State() FlowState {
	return f.state
}

// Parent returns the resolved parent node, nil before resolution.
func (f *AddFlow) Parent() *tree.Node {
	return f.parent
}

// ResolveParent records the target parent. On success the flow is Ready.
// A *tree.MissingParentError moves the flow to AwaitingPlaceholderDetails
// and is returned so the caller can run the placeholder dialog.
func (f *AddFlow) ResolveParent(parentID string) error {
	if f.state != AwaitingParent {
		return ErrFlowState
	}
	parent, err := f.store.ResolveParent(parentID)
	if err != nil {
		f.state = AwaitingPlaceholderDetails
		f.parentID = parentID
		return err
	}
	f.parent = parent
	f.state = Ready
	return nil
}

// CreatePlaceholder materializes the missing parent under the root with
// the recorded id and readies the flow. Autocreate is single-level: the
// placeholder always attaches to the root, so a second level of missing
// ancestors cannot arise.
func (f *AddFlow) CreatePlaceholder(title, description string) (*tree.Node, error) {
	if f.state != AwaitingPlaceholderDetails {
		return nil, ErrFlowState
	}
	parent, err := f.store.CreatePlaceholder(f.parentID, title, description, nil)
	if err != nil {
		return nil, err
	}
	f.parent = parent
	f.state = Ready
	return parent, nil
}

// Abort gives up on the add. Only meaningful before the flow is Ready.
func (f *AddFlow) Abort() {
	if f.state == AwaitingParent || f.state == AwaitingPlaceholderDetails {
		f.state = Aborted
	}
}

// Finish performs the add under the resolved parent. On ErrDuplicateID
// the flow stays Ready so the caller can retry with a different id.
func (f *AddFlow) Finish(id, title, description string) (*tree.Node, error) {
	if f.state != Ready {
		return nil, ErrFlowState
	}
	node, err := f.store.Add(f.parent.ID, id, title, description)
	if err != nil {
		return nil, err
	}
	f.state = Done
	return node, nil
}
