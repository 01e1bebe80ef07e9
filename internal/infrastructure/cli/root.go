package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/obsidian-os/obsidian-shell/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// containerFunc builds the dependency graph after flags have been parsed.
type containerFunc func(ctx context.Context) (*app.Container, error)

// NewRootCmd wires the cobra root command. Running with no subcommand starts
// the interactive shell.
func NewRootCmd(opts Options) *cobra.Command {
	var (
		configPath string
		forceAI    bool
		forceGUI   bool
	)

	build := func(ctx context.Context) (*app.Container, error) {
		return app.BuildContainer(ctx, app.Options{
			ConfigPath: configPath,
			Verbose:    opts.Verbose,
			ForceAI:    forceAI,
			ForceGUI:   forceGUI,
		})
	}

	root := &cobra.Command{
		Use:   "obsidian-shell",
		Short: "AI-powered shell for Obsidian OS",
		Long: "Obsidian Shell is an interactive command shell that can rewrite\n" +
			"natural-language input into executable commands before dispatching\n" +
			"them to the operating system.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), build)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file path")
	root.PersistentFlags().BoolVarP(&forceAI, "ai", "a", false, "enable AI assistance")
	root.PersistentFlags().BoolVarP(&forceGUI, "gui", "g", false, "enable GUI mode")

	root.AddCommand(newInteractiveCommand(build))
	root.AddCommand(newExecCommand(build))
	root.AddCommand(newConfigCommand(build))
	root.AddCommand(newUpdateModelsCommand(build))
	return root
}
