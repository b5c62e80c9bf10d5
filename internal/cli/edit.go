package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraudneuron/neuronctl/internal/session"
	"github.com/fraudneuron/neuronctl/internal/storage"
	"github.com/fraudneuron/neuronctl/internal/ui"
)

// runEdit starts the interactive editing session against the dataset.
func runEdit(cmd *cobra.Command, args []string) error {
	cfg := loadSettings()

	hm := ui.NewHeadlessManager()
	if cfg.Editor.NonInteractive {
		hm.ForceHeadless(true)
	}
	if hm.IsHeadless() {
		return fmt.Errorf("%w; use the show, add, and delete subcommands instead",
			session.ErrHeadless)
	}

	theme := ui.NewTheme(cfg.Editor.NoColor || getBoolFlag(cmd, "no-color"))
	path := datasetPath(args, cfg)

	store, err := storage.Load(path)
	if err != nil {
		// Recovered with a fresh skeleton; tell the user before they edit.
		fmt.Fprintln(cmd.ErrOrStderr(),
			theme.Error.Render(fmt.Sprintf("warning: %v; starting with a fresh skeleton", err)))
	}

	sess := session.New(session.Options{
		Store:         store,
		Path:          path,
		Prompter:      ui.NewFormPrompter(theme, hm),
		ConfirmDelete: cfg.Editor.ConfirmDelete,
	})
	return sess.Run()
}
