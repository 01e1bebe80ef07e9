package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCommand is returned when execution is requested with no program.
var ErrEmptyCommand = errors.New("empty command")

// ExitError reports a command that ran to completion with a non-zero exit
// code. Stdout captured alongside it is not usable and is discarded.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("command exited with code %d", e.Code)
	}
	return fmt.Sprintf("command exited with code %d: %s", e.Code, msg)
}

// SpawnError reports a command that could not be started at all, such as a
// missing program or a permission failure.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("cannot start %q: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
