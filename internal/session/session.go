// Package session drives the interactive editing loop over a tree.Store.
// All console interaction goes through the Prompter interface, so the
// loop runs in tests against a scripted prompter with no TTY involved.
// The store is passed in explicitly; nothing here is global state.
package session

import (
	"errors"
	"fmt"

	"github.com/fraudneuron/neuronctl/internal/storage"
	"github.com/fraudneuron/neuronctl/internal/tree"
)

// Action is one of the five menu actions.
type Action int

const (
	// ActionShow displays the current hierarchy.
	ActionShow Action = iota
	// ActionAdd adds a tactic, technique, or procedure.
	ActionAdd
	// ActionDelete removes an entry and all nested items.
	ActionDelete
	// ActionSaveExit persists the tree and ends the session.
	ActionSaveExit
	// ActionDiscardExit ends the session without persisting.
	ActionDiscardExit
)

// Sentinel errors for session control flow.
var (
	// ErrCancelled reports that the user aborted a prompt (ctrl-c/esc).
	ErrCancelled = errors.New("session: cancelled by user")

	// ErrHeadless reports that the interactive menu was requested
	// without a terminal attached.
	ErrHeadless = errors.New("session: interactive menu requires a terminal")
)

// Entry carries the user-supplied fields for a new node.
type Entry struct {
	ID          string
	Title       string
	Description string
}

// Prompter supplies user decisions to the session loop.
type Prompter interface {
	// SelectAction presents the main menu.
	SelectAction() (Action, error)
	// ParentID asks which node a new entry goes under, "root" meaning
	// the top level. The store is provided so the prompt can show the
	// current hierarchy for reference.
	ParentID(store *tree.Store) (string, error)
	// EntryDetails collects id, title, and description. A non-empty
	// idHint fixes the id, so only title and description are asked.
	EntryDetails(idHint string) (Entry, error)
	// ConfirmCreateParent asks whether to autocreate a missing parent.
	ConfirmCreateParent(parentID string) (bool, error)
	// DeleteTarget asks which id to delete, showing the hierarchy.
	DeleteTarget(store *tree.Store) (string, error)
	// ConfirmDelete asks before removing id and its subtree.
	ConfirmDelete(id string) (bool, error)
	// ShowTree displays the current hierarchy.
	ShowTree(store *tree.Store) error
	// Info and Warn surface feedback between prompts.
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// Options configures a Session.
type Options struct {
	// Store is the tree being edited. Required.
	Store *tree.Store
	// Path is the dataset file written on save-and-exit. Required.
	Path string
	// Prompter supplies all user interaction. Required.
	Prompter Prompter
	// ConfirmDelete asks before each deletion when true.
	ConfirmDelete bool
}

// Session owns one editing run against a single dataset file. Mutations
// stay in memory until the user picks save-and-exit.
type Session struct {
	store         *tree.Store
	path          string
	prompter      Prompter
	confirmDelete bool
	dirty         bool
}

// New creates a Session from the given options.
func New(opts Options) *Session {
	return &Session{
		store:         opts.Store,
		path:          opts.Path,
		prompter:      opts.Prompter,
		confirmDelete: opts.ConfirmDelete,
	}
}

// Dirty reports whether the tree has unsaved changes.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Run dispatches menu actions until the user exits. Only ActionSaveExit
// persists; ActionDiscardExit drops in-memory changes. Errors from tree
// operations are reported through the prompter and never end the loop.
func (s *Session) Run() error {
	for {
		action, err := s.prompter.SelectAction()
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				// Ctrl-c at the menu behaves like exit-without-saving.
				if s.dirty {
					s.prompter.Warn("discarding unsaved changes")
				}
				return nil
			}
			return err
		}

		switch action {
		case ActionShow:
			if err := s.prompter.ShowTree(s.store); err != nil {
				return err
			}
		case ActionAdd:
			if err := s.runAdd(); err != nil {
				return err
			}
		case ActionDelete:
			if err := s.runDelete(); err != nil {
				return err
			}
		case ActionSaveExit:
			if err := storage.Save(s.store, s.path); err != nil {
				s.prompter.Warn("save failed: %v", err)
				continue
			}
			s.dirty = false
			s.prompter.Info("saved %s", s.path)
			return nil
		case ActionDiscardExit:
			if s.dirty {
				s.prompter.Warn("discarding unsaved changes")
			}
			return nil
		default:
			return fmt.Errorf("session: unknown action %d", action)
		}
	}
}

// runAdd walks the add dialog: parent resolution, the optional
// placeholder sub-dialog for a missing parent, then the entry itself.
// A cancelled prompt aborts the action, not the session.
func (s *Session) runAdd() error {
	parentID, err := s.prompter.ParentID(s.store)
	if err != nil {
		return s.abortOnCancel(err)
	}

	flow := NewAddFlow(s.store)
	if err := flow.ResolveParent(parentID); err != nil {
		var missing *tree.MissingParentError
		if !errors.As(err, &missing) {
			return err
		}

		ok, err := s.prompter.ConfirmCreateParent(missing.ParentID)
		if err != nil {
			return s.abortOnCancel(err)
		}
		if !ok {
			flow.Abort()
			s.prompter.Info("aborted")
			return nil
		}

		entry, err := s.prompter.EntryDetails(missing.ParentID)
		if err != nil {
			return s.abortOnCancel(err)
		}
		if _, err := flow.CreatePlaceholder(entry.Title, entry.Description); err != nil {
			return err
		}
		s.dirty = true
		s.prompter.Info("created parent %q under %s", missing.ParentID, s.store.Root().ID)
	}

	entry, err := s.prompter.EntryDetails("")
	if err != nil {
		return s.abortOnCancel(err)
	}

	node, err := flow.Finish(entry.ID, entry.Title, entry.Description)
	if err != nil {
		if errors.Is(err, tree.ErrDuplicateID) {
			s.prompter.Warn("id %q already exists, entry not added", entry.ID)
			return nil
		}
		return err
	}
	s.dirty = true
	s.prompter.Info("added %s under %s", node.ID, flow.Parent().ID)
	return nil
}

// runDelete walks the delete dialog with root protection and not-found
// feedback.
func (s *Session) runDelete() error {
	id, err := s.prompter.DeleteTarget(s.store)
	if err != nil {
		return s.abortOnCancel(err)
	}

	if s.confirmDelete {
		ok, err := s.prompter.ConfirmDelete(id)
		if err != nil {
			return s.abortOnCancel(err)
		}
		if !ok {
			s.prompter.Info("deletion cancelled")
			return nil
		}
	}

	switch err := s.store.Delete(id); {
	case errors.Is(err, tree.ErrRootProtected):
		s.prompter.Warn("the root node cannot be deleted")
	case errors.Is(err, tree.ErrNotFound):
		s.prompter.Warn("id %q not found", id)
	case err != nil:
		return err
	default:
		s.dirty = true
		s.prompter.Info("deleted %q and all nested entries", id)
	}
	return nil
}

// abortOnCancel converts a cancelled prompt into a completed action so
// the menu loop continues; any other error propagates.
func (s *Session) abortOnCancel(err error) error {
	if errors.Is(err, ErrCancelled) {
		s.prompter.Info("aborted")
		return nil
	}
	return err
}
