package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newExecCommand(build containerFunc) *cobra.Command {
	var interpret bool

	cmd := &cobra.Command{
		Use:   "exec <command>",
		Short: "Execute a single command and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := build(cmd.Context())
			if err != nil {
				return err
			}
			session := container.Session

			command := strings.Join(args, " ")
			if interpret {
				// Unlike the interactive loop, one-shot interpretation has no
				// fallback path: a failure here is the command's result.
				interpreted, err := session.Interpreter.Interpret(cmd.Context(), command)
				if err != nil {
					return fmt.Errorf("interpretation failed: %w", err)
				}
				if interpreted != command {
					fmt.Fprintf(os.Stdout, "interpreted: %s\n", interpreted)
				}
				command = interpreted
			}
			return session.Execute(cmd.Context(), command)
		},
	}

	cmd.Flags().BoolVarP(&interpret, "interpret", "i", false, "interpret the command with AI before executing")
	return cmd
}
