package domain

// Config mirrors ~/.config/obsidian-shell/config.toml.
type Config struct {
	AIEnabled   bool     `toml:"ai_enabled"`
	GUIEnabled  bool     `toml:"gui_enabled"`
	HistoryPath string   `toml:"history_path"`
	AI          AIConfig `toml:"ai"`
}

// AIConfig configures the interpretation backend.
type AIConfig struct {
	Backend     string  `toml:"backend"`
	ModelPath   string  `toml:"model_path"`
	APIEndpoint string  `toml:"api_endpoint"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float64 `toml:"temperature"`
	RulesFile   string  `toml:"rules_file"`
}

// DefaultConfig returns the built-in configuration used when no config file
// exists. Fields absent from a config file keep these values.
func DefaultConfig() Config {
	return Config{
		AIEnabled:   true,
		GUIEnabled:  false,
		HistoryPath: DefaultHistoryPath,
		AI: AIConfig{
			Backend:     BackendRules,
			ModelPath:   DefaultModelPath,
			APIEndpoint: DefaultAPIEndpoint,
			MaxTokens:   DefaultMaxTokens,
			Temperature: DefaultTemperature,
		},
	}
}
