package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/obsidian-os/obsidian-shell/internal/domain"
)

func newConfigCommand(build containerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := build(cmd.Context())
			if err != nil {
				return err
			}
			renderConfig(os.Stdout, container.Config)
			return nil
		},
	}
}

func renderConfig(out io.Writer, cfg domain.Config) {
	fmt.Fprintln(out, "Obsidian Shell configuration")
	fmt.Fprintf(out, "  AI enabled:   %t\n", cfg.AIEnabled)
	fmt.Fprintf(out, "  GUI enabled:  %t\n", cfg.GUIEnabled)
	fmt.Fprintf(out, "  History path: %s\n", cfg.HistoryPath)
	fmt.Fprintf(out, "  AI backend:   %s\n", cfg.AI.Backend)
	fmt.Fprintf(out, "  Model path:   %s\n", cfg.AI.ModelPath)
	fmt.Fprintf(out, "  API endpoint: %s\n", cfg.AI.APIEndpoint)
	fmt.Fprintf(out, "  Max tokens:   %d\n", cfg.AI.MaxTokens)
	fmt.Fprintf(out, "  Temperature:  %.2f\n", cfg.AI.Temperature)
}
