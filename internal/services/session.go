package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/obsidian-os/obsidian-shell/internal/domain"
	"github.com/obsidian-os/obsidian-shell/internal/ports"
)

// naturalLanguageTriggers is the vocabulary that routes input through the
// interpreter when AI assistance is on. Matching is a case-insensitive
// substring check.
var naturalLanguageTriggers = []string{
	"find", "search", "show", "list", "get", "create", "delete",
	"move", "copy", "open", "start", "stop", "install", "update",
}

// Session drives one shell run: prompt, read, dispatch, record. It owns the
// configuration, history, interpreter, and executor for the lifetime of the
// process; nothing here is shared across concurrent sessions. Input,
// interpretation, and execution are sequential blocking steps.
type Session struct {
	Config      domain.Config
	History     ports.HistoryStore
	Interpreter ports.Interpreter
	Executor    ports.CommandExecutor
	Reader      ports.LineReader
	Logger      ports.Logger
	Out         io.Writer
	Err         io.Writer

	// ID identifies this session in debug logs.
	ID string
}

func (s *Session) ready() error {
	if s.History == nil || s.Interpreter == nil || s.Executor == nil ||
		s.Reader == nil || s.Logger == nil {
		return errors.New("services.Session dependencies not satisfied")
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Err == nil {
		s.Err = os.Stderr
	}
	return nil
}

// Run executes the interactive loop until the user enters exit or quit, or
// the reader is exhausted. Steady-state errors are reported and the loop
// resumes at the prompt; only a broken reader ends the session with an error.
func (s *Session) Run(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.History.Load(); err != nil {
		s.Logger.Warn("history load failed", map[string]interface{}{"error": err.Error()})
	}
	s.Logger.Debug("session started", map[string]interface{}{
		"session":     s.ID,
		"ai_enabled":  s.Config.AIEnabled,
		"interpreter": s.Interpreter.Name(),
	})

	for {
		line, err := s.Reader.ReadLine(s.Prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch input {
		case "exit", "quit":
			s.Logger.Debug("session ended", map[string]interface{}{"session": s.ID})
			return nil
		case "help":
			s.printHelp()
		case "clear":
			fmt.Fprint(s.Out, "\x1b[2J\x1b[1;1H")
		case "history":
			s.printHistory()
		default:
			s.Dispatch(ctx, input)
		}
	}
}

// Dispatch handles one non-empty, non-built-in input line. The raw input is
// recorded to history before interpretation or execution is attempted, so the
// log always holds what the user typed, never the interpreted form. Every
// failure is reported and swallowed; dispatch never ends the session.
func (s *Session) Dispatch(ctx context.Context, input string) {
	if err := s.History.Add(input); err != nil {
		s.Logger.Warn("history append failed", map[string]interface{}{"error": err.Error()})
	}

	command := input
	if s.Config.AIEnabled && wantsInterpretation(input) {
		interpreted, err := s.Interpreter.Interpret(ctx, input)
		if err != nil {
			fmt.Fprintf(s.Err, "interpretation failed: %v\n", err)
			fmt.Fprintln(s.Out, "executing original command...")
		} else {
			if interpreted != input {
				fmt.Fprintf(s.Out, "interpreted: %s\n", interpreted)
			}
			command = interpreted
		}
	}

	if err := s.Execute(ctx, command); err != nil {
		fmt.Fprintf(s.Err, "error: %v\n", err)
	}
}

// Execute splits the command line on whitespace, runs the first token as the
// program with the rest as its argument vector, and prints captured stdout.
func (s *Session) Execute(ctx context.Context, commandLine string) error {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}

	output, err := s.Executor.Execute(ctx, fields[0], fields[1:])
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Fprint(s.Out, output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Fprintln(s.Out)
		}
	}
	return nil
}

// Prompt renders the prompt text: a marker, the working directory base name,
// and a dollar sign. Coloring is left to the reader so line editors can
// account for display width themselves.
func (s *Session) Prompt() string {
	dir := "~"
	if wd, err := os.Getwd(); err == nil {
		dir = filepath.Base(wd)
	}
	return fmt.Sprintf("◆ %s $ ", dir)
}

func wantsInterpretation(input string) bool {
	lower := strings.ToLower(input)
	for _, trigger := range naturalLanguageTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, "Obsidian Shell")
	fmt.Fprintln(s.Out, "Built-in commands:")
	fmt.Fprintln(s.Out, "  help     - show this help")
	fmt.Fprintln(s.Out, "  clear    - clear the screen")
	fmt.Fprintln(s.Out, "  history  - show recent commands")
	fmt.Fprintln(s.Out, "  exit     - leave the shell")
	fmt.Fprintln(s.Out, "  quit     - leave the shell")
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, "Natural language examples:")
	fmt.Fprintln(s.Out, "  'find all text files'    -> find . -type f")
	fmt.Fprintln(s.Out, "  'show running processes' -> ps aux")
	fmt.Fprintln(s.Out)
}

func (s *Session) printHistory() {
	entries := s.History.Recent(domain.DefaultHistoryDisplay)
	if len(entries) == 0 {
		fmt.Fprintln(s.Out, "history is empty")
		return
	}
	for i, entry := range entries {
		fmt.Fprintf(s.Out, "%3d: %s\n", i+1, entry)
	}
}
