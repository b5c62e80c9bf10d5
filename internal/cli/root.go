// Package cli wires the cobra command tree for neuronctl. The bare
// command runs the interactive menu; the show, add, and delete
// subcommands cover the same operations for scripts and non-TTY use.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fraudneuron/neuronctl/internal/config"
	"github.com/fraudneuron/neuronctl/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "neuronctl [file]",
	Short: "Interactive editor for the fraud TTP taxonomy",
	Long: `neuronctl maintains a fraud Tactics-Techniques-Procedures (TTP)
taxonomy stored as a JSON tree (fraudneuron.json by default).

Run it without a subcommand for the interactive menu: browse the
hierarchy, add or delete entries, then save or discard on exit.

Hierarchy convention:
  root (T0000, "tactics")
   └─ Tactic     id T*
       └─ Technique id TQ* (may nest)
           └─ Procedure id P*`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.GetVersion(),
	RunE:    runEdit,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	configureLogging()
	rootCmd.SetVersionTemplate(fmt.Sprintf("neuronctl %s\n", version.GetVersion()))
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable ANSI color output")
}

// configureLogging sets the default slog handler. The level comes from
// NEURONCTL_LOG and defaults to warnings only, keeping the interactive
// screen quiet.
func configureLogging() {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("NEURONCTL_LOG")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// loadSettings reads .neuronctl.yaml, falling back to defaults with a
// warning when the file is unusable.
func loadSettings() *config.Config {
	cfg, err := config.Load(config.Filename)
	if err != nil {
		slog.Warn("editor settings unusable, using defaults", "error", err)
	}
	return cfg
}

// datasetPath picks the dataset file: the positional argument when
// given, otherwise the configured default.
func datasetPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Editor.Dataset
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
