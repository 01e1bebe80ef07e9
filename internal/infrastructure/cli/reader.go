package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/obsidian-os/obsidian-shell/internal/ports"
)

var promptColor = color.New(color.FgCyan, color.Bold)

// NewLineReader picks the go-prompt reader on a terminal and falls back to a
// plain buffered reader for piped input.
func NewLineReader(completion ports.CompletionProvider) ports.LineReader {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return NewPromptReader(completion)
	}
	return NewStdioReader(nil, nil)
}

// StdioReader reads lines from a plain byte stream. It serves piped input
// and tests, where full line editing is unavailable.
type StdioReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdioReader constructs a reader over stdio by default.
func NewStdioReader(in io.Reader, out io.Writer) *StdioReader {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &StdioReader{in: bufio.NewReader(in), out: out}
}

// ReadLine implements ports.LineReader. io.EOF is returned once the source
// is exhausted; a final unterminated line is still delivered first.
func (r *StdioReader) ReadLine(promptText string) (string, error) {
	fmt.Fprint(r.out, promptColor.Sprint(promptText))
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// PromptReader reads lines through go-prompt, giving line editing plus
// completion backed by the session's completion provider.
type PromptReader struct {
	completion ports.CompletionProvider
}

// NewPromptReader constructs a terminal reader.
func NewPromptReader(completion ports.CompletionProvider) *PromptReader {
	return &PromptReader{completion: completion}
}

// ReadLine implements ports.LineReader.
func (r *PromptReader) ReadLine(promptText string) (string, error) {
	line := prompt.Input(
		prompt.WithPrefix(promptText),
		prompt.WithPrefixTextColor(prompt.Cyan),
		prompt.WithCompleter(r.completer),
	)
	return line, nil
}

func (r *PromptReader) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	endIndex := d.CurrentRuneIndex()
	w := d.GetWordBeforeCursor()
	startIndex := endIndex - istrings.RuneCountInString(w)

	var suggestions []prompt.Suggest
	for _, candidate := range r.completion.Complete(d.TextBeforeCursor()) {
		suggestions = append(suggestions, prompt.Suggest{Text: candidate})
	}
	return prompt.FilterHasPrefix(suggestions, w, true), startIndex, endIndex
}

var (
	_ ports.LineReader = (*StdioReader)(nil)
	_ ports.LineReader = (*PromptReader)(nil)
)
