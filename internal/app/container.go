package app

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/obsidian-os/obsidian-shell/internal/domain"
	"github.com/obsidian-os/obsidian-shell/internal/infrastructure/completion"
	"github.com/obsidian-os/obsidian-shell/internal/infrastructure/config"
	"github.com/obsidian-os/obsidian-shell/internal/infrastructure/executor"
	"github.com/obsidian-os/obsidian-shell/internal/infrastructure/history"
	"github.com/obsidian-os/obsidian-shell/internal/infrastructure/interpreter"
	"github.com/obsidian-os/obsidian-shell/internal/pkg/logger"
	"github.com/obsidian-os/obsidian-shell/internal/ports"
	"github.com/obsidian-os/obsidian-shell/internal/services"
)

// Options carries process-level switches from the CLI into the container.
type Options struct {
	ConfigPath string
	Verbose    bool
	ForceAI    bool
	ForceGUI   bool
}

// Container wires the session with its infrastructure adapters.
type Container struct {
	Config     domain.Config
	Session    *services.Session
	History    *history.FileStore
	Completion ports.CompletionProvider
	Logger     ports.Logger
}

// BuildContainer constructs the dependency graph. A configuration that fails
// to load is the only fatal startup error; everything downstream degrades
// per adapter.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfg, err := config.NewFileLoader(opts.ConfigPath).Load(ctx)
	if err != nil {
		return nil, err
	}
	if opts.ForceAI {
		cfg.AIEnabled = true
	}
	if opts.ForceGUI {
		cfg.GUIEnabled = true
	}

	log := logger.NewStd(opts.Verbose)
	store := history.NewFileStore(cfg.HistoryPath)

	interp, err := interpreter.ForConfig(cfg)
	if err != nil {
		return nil, err
	}

	completionProvider := completion.NewStatic()

	session := &services.Session{
		Config:      cfg,
		History:     store,
		Interpreter: interp,
		Executor:    executor.NewLocal(),
		Logger:      log,
		Out:         os.Stdout,
		Err:         os.Stderr,
		ID:          uuid.NewString(),
	}

	return &Container{
		Config:     cfg,
		Session:    session,
		History:    store,
		Completion: completionProvider,
		Logger:     log,
	}, nil
}
