package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/obsidian-os/obsidian-shell/internal/pkg/filesystem"
	"github.com/obsidian-os/obsidian-shell/internal/ports"
)

// Rule maps trigger substrings to a fixed command line. All listed
// substrings must appear in the input (case-insensitive) for the rule to fire.
type Rule struct {
	Contains []string `yaml:"contains"`
	Command  string   `yaml:"command"`
}

// rulesFile is the YAML schema root for a user-supplied rule table.
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// RuleTable interprets input against an ordered rule list. Rules are not
// mutually exclusive, so order matters: the first match wins, and input that
// matches nothing is echoed back unchanged in its original case. The table is
// a stand-in for a real model call and deliberately covers only a handful of
// phrasings.
type RuleTable struct {
	rules []Rule
}

// NewRuleTable loads rules from the given YAML file, falling back to the
// built-in table when the path is empty or the file does not exist.
func NewRuleTable(path string) (*RuleTable, error) {
	rules, err := loadRules(path)
	if err != nil {
		return nil, err
	}
	return &RuleTable{rules: rules}, nil
}

func defaultRules() []Rule {
	return []Rule{
		{Contains: []string{"find", "file"}, Command: "find . -type f"},
		{Contains: []string{"process"}, Command: "ps aux"},
		{Contains: []string{"install"}, Command: "apt install"},
	}
}

func loadRules(path string) ([]Rule, error) {
	if path == "" {
		return defaultRules(), nil
	}
	data, err := os.ReadFile(filesystem.ExpandPath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultRules(), nil
		}
		return nil, err
	}

	var parsed rulesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if len(parsed.Rules) == 0 {
		return defaultRules(), nil
	}
	for i, rule := range parsed.Rules {
		if len(rule.Contains) == 0 {
			return nil, fmt.Errorf("rules %s: rule %d has no trigger substrings", path, i+1)
		}
		if strings.TrimSpace(rule.Command) == "" {
			return nil, fmt.Errorf("rules %s: rule %d has no command", path, i+1)
		}
	}
	return parsed.Rules, nil
}

// Name implements ports.Interpreter.
func (t *RuleTable) Name() string {
	return "rules"
}

// Interpret implements ports.Interpreter. It is pure and never fails.
func (t *RuleTable) Interpret(_ context.Context, raw string) (string, error) {
	lower := strings.ToLower(raw)
	for _, rule := range t.rules {
		if matchesAll(lower, rule.Contains) {
			return rule.Command, nil
		}
	}
	return raw, nil
}

func matchesAll(lower string, needles []string) bool {
	if len(needles) == 0 {
		return false
	}
	for _, needle := range needles {
		if !strings.Contains(lower, strings.ToLower(needle)) {
			return false
		}
	}
	return true
}

var _ ports.Interpreter = (*RuleTable)(nil)
