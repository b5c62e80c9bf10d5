package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraudneuron/neuronctl/internal/storage"
	"github.com/fraudneuron/neuronctl/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the current hierarchy and exit",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := loadSettings()
	path := datasetPath(args, cfg)

	store, err := storage.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	noColor := cfg.Editor.NoColor ||
		getBoolFlag(cmd, "no-color") ||
		ui.NewHeadlessManager().IsHeadless()
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderTree(ui.NewTheme(noColor), store))
	return nil
}
