package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/obsidian-os/obsidian-shell/internal/app"
	"github.com/obsidian-os/obsidian-shell/internal/domain"
)

func newInteractiveCommand(build containerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), build)
		},
	}
}

func runInteractive(ctx context.Context, build containerFunc) error {
	container, err := build(ctx)
	if err != nil {
		return err
	}
	return RunSession(ctx, container)
}

// RunSession attaches a line reader to the container's session and runs the
// loop until it terminates.
func RunSession(ctx context.Context, container *app.Container) error {
	container.Session.Reader = NewLineReader(container.Completion)
	printBanner(os.Stdout, container.Config)
	return container.Session.Run(ctx)
}

func printBanner(out io.Writer, cfg domain.Config) {
	fmt.Fprintln(out, "Obsidian Shell v0.1.0")
	fmt.Fprintln(out, "AI-powered shell for Obsidian OS")
	fmt.Fprintln(out, "Type 'help' for available commands or 'exit' to quit.")
	if cfg.AIEnabled {
		fmt.Fprintln(out, "AI assistance is on.")
	}
	fmt.Fprintln(out)
}
