package interpreter

import (
	"fmt"

	"github.com/obsidian-os/obsidian-shell/internal/domain"
	"github.com/obsidian-os/obsidian-shell/internal/ports"
)

// ForConfig selects the interpretation backend named by the configuration.
// The rule table is the default; the remote backend is opt-in.
func ForConfig(cfg domain.Config) (ports.Interpreter, error) {
	switch cfg.AI.Backend {
	case "", domain.BackendRules:
		return NewRuleTable(cfg.AI.RulesFile)
	case domain.BackendRemote:
		return NewRemote(cfg.AI, nil), nil
	default:
		return nil, fmt.Errorf("unsupported interpreter backend: %q", cfg.AI.Backend)
	}
}
