package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/obsidian-os/obsidian-shell/internal/domain"
	"github.com/obsidian-os/obsidian-shell/internal/ports"
)

// Local spawns programs directly with an argument vector. No shell sits in
// between: tokens reach the process untouched, with no quoting, globbing, or
// metacharacter expansion. There is also no timeout; a hung child blocks the
// caller until it finishes.
type Local struct{}

// NewLocal builds a new executor.
func NewLocal() *Local {
	return &Local{}
}

// Execute runs program with args and waits for completion, capturing both
// output streams. Exit code 0 returns stdout exactly as produced. A non-zero
// exit returns *domain.ExitError carrying the captured stderr; a process that
// cannot be started returns *domain.SpawnError wrapping the OS failure.
func (l *Local) Execute(ctx context.Context, program string, args []string) (string, error) {
	if program == "" {
		return "", domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, program, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &domain.ExitError{Code: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return "", &domain.SpawnError{Program: program, Err: err}
	}
	return stdout.String(), nil
}

var _ ports.CommandExecutor = (*Local)(nil)
