package domain

import "time"

// Interpretation backends.
const (
	// BackendRules is the offline substring-rule interpreter.
	BackendRules = "rules"
	// BackendRemote delegates interpretation to an HTTP inference endpoint.
	BackendRemote = "remote"
)

// Configuration defaults.
const (
	// DefaultHistoryPath is where issued commands are persisted.
	DefaultHistoryPath = "~/.obsidian-shell-history"
	// DefaultModelPath is the on-disk location of the local model.
	DefaultModelPath = "/usr/share/obsidian/models/llm.onnx"
	// DefaultAPIEndpoint is the inference endpoint for the remote backend.
	DefaultAPIEndpoint = "http://localhost:8000/ai"
	// DefaultMaxTokens caps remote completion length.
	DefaultMaxTokens = 512
	// DefaultTemperature is the remote sampling temperature.
	DefaultTemperature = 0.7
)

const (
	// DefaultHistoryDisplay is how many entries the history built-in shows.
	DefaultHistoryDisplay = 10
	// DefaultHTTPClientTimeout bounds remote interpretation requests.
	DefaultHTTPClientTimeout = 60 * time.Second
)
