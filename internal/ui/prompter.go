package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/fraudneuron/neuronctl/internal/session"
	"github.com/fraudneuron/neuronctl/internal/tree"
)

// FormPrompter implements session.Prompter with huh forms. Each prompt
// runs as its own form, so a cancelled dialog only aborts the current
// action, never the whole session.
type FormPrompter struct {
	theme    *Theme
	headless *HeadlessManager
	out      io.Writer
}

// NewFormPrompter creates a prompter writing feedback to stdout.
func NewFormPrompter(theme *Theme, hm *HeadlessManager) *FormPrompter {
	return &FormPrompter{theme: theme, headless: hm, out: os.Stdout}
}

var _ session.Prompter = (*FormPrompter)(nil)

// run executes a form, mapping a user abort to session.ErrCancelled.
func (p *FormPrompter) run(form *huh.Form) error {
	err := form.WithTheme(p.theme.HuhTheme()).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return session.ErrCancelled
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// SelectAction presents the five-item main menu.
func (p *FormPrompter) SelectAction() (session.Action, error) {
	var action session.Action
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[session.Action]().
			Title("Fraud Neuron Manager").
			Description("Maintain the fraud tactics / techniques / procedures hierarchy").
			Options(
				huh.NewOption("Show current hierarchy", session.ActionShow),
				huh.NewOption("Add entry (tactic / technique / procedure)", session.ActionAdd),
				huh.NewOption("Delete entry and all its children", session.ActionDelete),
				huh.NewOption("Save & exit", session.ActionSaveExit),
				huh.NewOption("Exit without saving", session.ActionDiscardExit),
			).
			Value(&action),
	))
	if err := p.run(form); err != nil {
		return 0, err
	}
	return action, nil
}

// ParentID prints the hierarchy for reference, then asks for the parent
// of the new entry.
func (p *FormPrompter) ParentID(store *tree.Store) (string, error) {
	fmt.Fprint(p.out, "\n"+RenderTree(p.theme, store)+"\n")

	var id string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Parent ID").
			Description(`Existing id, or "root" for a new top-level tactic`).
			Validate(requireNonEmpty).
			Value(&id),
	))
	if err := p.run(form); err != nil {
		return "", err
	}
	return strings.TrimSpace(id), nil
}

// EntryDetails collects the fields of a new entry. A non-empty idHint
// fixes the id, so only title and description are asked.
func (p *FormPrompter) EntryDetails(idHint string) (session.Entry, error) {
	entry := session.Entry{ID: idHint}

	var fields []huh.Field
	if idHint == "" {
		fields = append(fields, huh.NewInput().
			Title("New ID").
			Description("Convention: T* tactic, TQ* technique, P* procedure").
			Validate(requireNonEmpty).
			Value(&entry.ID))
	} else {
		fields = append(fields, huh.NewNote().
			Title(fmt.Sprintf("Details for new parent %q", idHint)))
	}
	fields = append(fields,
		huh.NewInput().Title("Title").Value(&entry.Title),
		huh.NewInput().Title("Description").Value(&entry.Description),
	)

	if err := p.run(huh.NewForm(huh.NewGroup(fields...))); err != nil {
		return session.Entry{}, err
	}
	entry.ID = strings.TrimSpace(entry.ID)
	entry.Title = strings.TrimSpace(entry.Title)
	entry.Description = strings.TrimSpace(entry.Description)
	return entry, nil
}

// ConfirmCreateParent asks whether a missing parent should be created
// under the root.
func (p *FormPrompter) ConfirmCreateParent(parentID string) (bool, error) {
	return p.confirm(
		fmt.Sprintf("ID %q not found. Create it?", parentID),
		"The new parent will be attached under the root",
	)
}

// DeleteTarget prints the hierarchy, then asks which id to delete.
func (p *FormPrompter) DeleteTarget(store *tree.Store) (string, error) {
	fmt.Fprint(p.out, "\n"+RenderTree(p.theme, store)+"\n")

	var id string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("ID to delete").
			Description("The entry and all nested items will be removed; the root is protected").
			Validate(requireNonEmpty).
			Value(&id),
	))
	if err := p.run(form); err != nil {
		return "", err
	}
	return strings.TrimSpace(id), nil
}

// ConfirmDelete asks before removing id and its subtree.
func (p *FormPrompter) ConfirmDelete(id string) (bool, error) {
	return p.confirm(
		fmt.Sprintf("Delete %q and all nested items?", id),
		"This cannot be undone within the session",
	)
}

// ShowTree displays the hierarchy, paged when a TTY is available.
func (p *FormPrompter) ShowTree(store *tree.Store) error {
	content := RenderTree(p.theme, store)
	if p.headless.IsHeadless() || p.theme.NoColor {
		_, err := fmt.Fprint(p.out, content)
		return err
	}
	return ShowPager(p.theme, "Current hierarchy", content)
}

// Info prints a success-styled message.
func (p *FormPrompter) Info(format string, args ...any) {
	fmt.Fprintln(p.out, p.theme.Success.Render(fmt.Sprintf(format, args...)))
}

// Warn prints an error-styled message.
func (p *FormPrompter) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.theme.Error.Render(fmt.Sprintf(format, args...)))
}

func (p *FormPrompter) confirm(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))
	if err := p.run(form); err != nil {
		return false, err
	}
	return ok, nil
}

func requireNonEmpty(val string) error {
	if strings.TrimSpace(val) == "" {
		return errors.New("required")
	}
	return nil
}
