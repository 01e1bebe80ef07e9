package completion

import "github.com/obsidian-os/obsidian-shell/internal/ports"

// Static is a placeholder completion source that always reports no
// suggestions. A real provider can replace it behind the same port without
// touching the session loop or the readers.
type Static struct{}

// NewStatic builds the placeholder provider.
func NewStatic() *Static {
	return &Static{}
}

// Complete implements ports.CompletionProvider.
func (s *Static) Complete(string) []string {
	return nil
}

var _ ports.CompletionProvider = (*Static)(nil)
