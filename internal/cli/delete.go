package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraudneuron/neuronctl/internal/session"
	"github.com/fraudneuron/neuronctl/internal/storage"
	"github.com/fraudneuron/neuronctl/internal/tree"
	"github.com/fraudneuron/neuronctl/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [file]",
	Short: "Delete an entry and all its children without the interactive menu",
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		if getStringFlag(cmd, "id") == "" {
			return errors.New("--id is required")
		}
		return nil
	},
	RunE: runDeleteCmd,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().String("id", "", "Id of the entry to delete")
	deleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runDeleteCmd(cmd *cobra.Command, args []string) error {
	cfg := loadSettings()
	path := datasetPath(args, cfg)
	id := getStringFlag(cmd, "id")

	store, err := storage.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	if !getBoolFlag(cmd, "yes") {
		hm := ui.NewHeadlessManager()
		if hm.IsHeadless() {
			return errors.New("refusing to delete without confirmation; pass --yes")
		}
		theme := ui.NewTheme(cfg.Editor.NoColor || getBoolFlag(cmd, "no-color"))
		ok, err := ui.NewFormPrompter(theme, hm).ConfirmDelete(id)
		if err != nil && !errors.Is(err, session.ErrCancelled) {
			return err
		}
		if err != nil || !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "deletion cancelled")
			return nil
		}
	}

	switch err := store.Delete(id); {
	case errors.Is(err, tree.ErrRootProtected):
		return errors.New("the root node cannot be deleted")
	case errors.Is(err, tree.ErrNotFound):
		return fmt.Errorf("id %q not found", id)
	case err != nil:
		return err
	}

	if err := storage.Save(store, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %q and all nested entries\n", id)
	return nil
}
