package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraudneuron/neuronctl/internal/session"
	"github.com/fraudneuron/neuronctl/internal/storage"
	"github.com/fraudneuron/neuronctl/internal/tree"
)

var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Add an entry without the interactive menu",
	Long: `Add a tactic, technique, or procedure in one shot and save the dataset.

Examples:
  neuronctl add --parent root --id T2000 --title themes
  neuronctl add --parent T2000 --id TQ2300 --title charity_schemes
  neuronctl add --parent T9999 --id TQ9999 --title x --create-parent --parent-title placeholder`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateAddFlags,
	RunE:    runAddCmd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("parent", "", `Parent id, or "root" for a top-level tactic`)
	addCmd.Flags().String("id", "", "Id of the new entry")
	addCmd.Flags().String("title", "", "Title of the new entry")
	addCmd.Flags().String("description", "", "Description of the new entry")
	addCmd.Flags().Bool("create-parent", false, "Create a missing parent under the root")
	addCmd.Flags().String("parent-title", "", "Title for a created parent")
	addCmd.Flags().String("parent-description", "", "Description for a created parent")
}

// validateAddFlags checks required flag values before execution.
func validateAddFlags(cmd *cobra.Command, _ []string) error {
	if getStringFlag(cmd, "parent") == "" {
		return errors.New("--parent is required")
	}
	if getStringFlag(cmd, "id") == "" {
		return errors.New("--id is required")
	}
	return nil
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	cfg := loadSettings()
	path := datasetPath(args, cfg)

	store, err := storage.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	flow := session.NewAddFlow(store)
	if err := flow.ResolveParent(getStringFlag(cmd, "parent")); err != nil {
		var missing *tree.MissingParentError
		if !errors.As(err, &missing) {
			return err
		}
		if !getBoolFlag(cmd, "create-parent") {
			return fmt.Errorf("parent %q not found (pass --create-parent to create it under the root)",
				missing.ParentID)
		}
		if _, err := flow.CreatePlaceholder(
			getStringFlag(cmd, "parent-title"),
			getStringFlag(cmd, "parent-description"),
		); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created parent %q under %s\n",
			missing.ParentID, store.Root().ID)
	}

	node, err := flow.Finish(
		getStringFlag(cmd, "id"),
		getStringFlag(cmd, "title"),
		getStringFlag(cmd, "description"),
	)
	if err != nil {
		if errors.Is(err, tree.ErrDuplicateID) {
			return fmt.Errorf("id %q already exists", getStringFlag(cmd, "id"))
		}
		return err
	}

	if err := storage.Save(store, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added %s under %s\n", node.ID, flow.Parent().ID)
	return nil
}
