// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The session loop in internal/services depends only on these abstractions;
// concrete adapters live in the infrastructure layer. This keeps the loop's
// contract stable when an adapter is swapped, most importantly so the
// rule-table Interpreter can later be replaced by a real inference backend
// without touching the loop.
package ports

import (
	"context"

	"github.com/obsidian-os/obsidian-shell/internal/domain"
)

// ConfigProvider loads the session configuration from persistent storage.
// Implementations typically read ~/.config/obsidian-shell/config.toml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Interpreter maps free-form input to an executable command line. It must be
// stateless: interpreting the same input twice yields the same output.
// A failed interpretation is never fatal to the caller; the session falls
// back to executing the raw input.
type Interpreter interface {
	Name() string
	Interpret(ctx context.Context, raw string) (string, error)
}

// CommandExecutor spawns a program with a flat argument vector and waits for
// it to finish. No shell quoting or glob expansion happens on the way in.
type CommandExecutor interface {
	Execute(ctx context.Context, program string, args []string) (string, error)
}

// HistoryStore records issued commands in insertion order, append-only.
// Persistence is best-effort: a failed Add still keeps the in-memory entry.
type HistoryStore interface {
	Load() error
	Add(entry string) error
	Recent(n int) []string
	Len() int
}

// CompletionProvider suggests completions for a partial input line.
type CompletionProvider interface {
	Complete(input string) []string
}

// LineReader blocks for one line of user input under the given prompt text.
// io.EOF signals that the input source is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
