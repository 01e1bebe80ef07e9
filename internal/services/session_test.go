package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/obsidian-os/obsidian-shell/internal/domain"
	"github.com/obsidian-os/obsidian-shell/internal/pkg/logger"
)

func newTestSession(reader *scriptReader) (*Session, *stubHistory, *stubInterpreter, *stubExecutor, *bytes.Buffer) {
	history := &stubHistory{}
	interp := &stubInterpreter{}
	exec := &stubExecutor{}
	history.executor = exec
	out := &bytes.Buffer{}

	session := &Session{
		Config:      domain.Config{AIEnabled: true},
		History:     history,
		Interpreter: interp,
		Executor:    exec,
		Reader:      reader,
		Logger:      logger.NewStd(false),
		Out:         out,
		Err:         out,
		ID:          "test-session",
	}
	return session, history, interp, exec, out
}

func TestRunIgnoresWhitespaceOnlyInput(t *testing.T) {
	reader := &scriptReader{lines: []string{"   ", "\t", "", "exit"}}
	session, history, interp, exec, _ := newTestSession(reader)

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(history.entries) != 0 {
		t.Fatalf("history = %v, want empty", history.entries)
	}
	if interp.calls != 0 {
		t.Fatalf("interpreter called %d times", interp.calls)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("executor called %d times", len(exec.calls))
	}
}

func TestRunStopsOnExitAndQuit(t *testing.T) {
	for _, word := range []string{"exit", "quit", "  exit  "} {
		reader := &scriptReader{lines: []string{word, "echo never"}}
		session, _, _, exec, _ := newTestSession(reader)

		if err := session.Run(context.Background()); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if reader.reads != 1 {
			t.Fatalf("input %q: loop prompted %d times, want 1", word, reader.reads)
		}
		if len(exec.calls) != 0 {
			t.Fatalf("input %q: executor ran after terminal input", word)
		}
	}
}

func TestRunEndsCleanlyOnEOF(t *testing.T) {
	session, _, _, _, _ := newTestSession(&scriptReader{})

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestBuiltinsBypassHistoryAndExecutor(t *testing.T) {
	reader := &scriptReader{lines: []string{"help", "clear", "history", "exit"}}
	session, history, interp, exec, out := newTestSession(reader)

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(history.entries) != 0 {
		t.Fatalf("history = %v, want empty", history.entries)
	}
	if interp.calls != 0 || len(exec.calls) != 0 {
		t.Fatal("built-ins must not reach interpreter or executor")
	}
	if !strings.Contains(out.String(), "Built-in commands") {
		t.Fatal("help output missing")
	}
}

func TestDispatchRecordsRawInputNotInterpretedForm(t *testing.T) {
	reader := &scriptReader{lines: []string{"find all text files", "exit"}}
	session, history, interp, exec, _ := newTestSession(reader)
	interp.out = "find . -type f"

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(history.entries) != 1 || history.entries[0] != "find all text files" {
		t.Fatalf("history = %v, want the raw input", history.entries)
	}
	if len(exec.calls) != 1 || exec.calls[0].program != "find" {
		t.Fatalf("executor calls = %+v", exec.calls)
	}
	if got := strings.Join(exec.calls[0].args, " "); got != ". -type f" {
		t.Fatalf("args = %q, want interpreted command args", got)
	}
	if history.addedBeforeExecute != 1 {
		t.Fatal("history must be recorded before execution")
	}
}

func TestDispatchSkipsInterpreterWithoutTriggerWord(t *testing.T) {
	session, history, interp, exec, _ := newTestSession(nil)

	session.Dispatch(context.Background(), "echo hello")

	if interp.calls != 0 {
		t.Fatalf("interpreter called %d times, want 0", interp.calls)
	}
	if len(exec.calls) != 1 || exec.calls[0].program != "echo" {
		t.Fatalf("executor calls = %+v", exec.calls)
	}
	if len(history.entries) != 1 {
		t.Fatalf("history = %v", history.entries)
	}
}

func TestDispatchSkipsInterpreterWhenAIDisabled(t *testing.T) {
	session, _, interp, exec, _ := newTestSession(nil)
	session.Config.AIEnabled = false

	session.Dispatch(context.Background(), "find all text files")

	if interp.calls != 0 {
		t.Fatalf("interpreter called %d times, want 0", interp.calls)
	}
	if len(exec.calls) != 1 || exec.calls[0].program != "find" {
		t.Fatalf("raw input should run unchanged, got %+v", exec.calls)
	}
}

func TestDispatchFallsBackToRawInputWhenInterpretationFails(t *testing.T) {
	session, _, interp, exec, out := newTestSession(nil)
	interp.err = errors.New("model offline")

	session.Dispatch(context.Background(), "show running processes")

	if len(exec.calls) != 1 {
		t.Fatalf("executor calls = %+v", exec.calls)
	}
	if exec.calls[0].program != "show" {
		t.Fatalf("program = %q, want the raw input's first token", exec.calls[0].program)
	}
	if !strings.Contains(out.String(), "interpretation failed") {
		t.Fatal("failure was not reported")
	}
}

func TestRunSurvivesExecutionFailures(t *testing.T) {
	reader := &scriptReader{lines: []string{"badcmd now", "echo ok", "exit"}}
	session, _, _, exec, out := newTestSession(reader)
	exec.errs = map[string]error{"badcmd": &domain.ExitError{Code: 2, Stderr: "boom"}}

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(exec.calls) != 2 {
		t.Fatalf("executor calls = %d, want the loop to continue", len(exec.calls))
	}
	if !strings.Contains(out.String(), "exited with code 2") {
		t.Fatalf("failure not reported, output: %q", out.String())
	}
}

func TestHistoryBuiltinShowsRecentEntries(t *testing.T) {
	reader := &scriptReader{lines: []string{"history", "exit"}}
	session, history, _, _, out := newTestSession(reader)
	history.entries = []string{"uptime", "whoami"}

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "1: uptime") || !strings.Contains(out.String(), "2: whoami") {
		t.Fatalf("history output = %q", out.String())
	}
}

func TestExecutePrintsStdoutOnSuccess(t *testing.T) {
	session, _, _, exec, out := newTestSession(nil)
	exec.output = "ok\n"

	if err := session.Execute(context.Background(), "echo ok"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.String() != "ok\n" {
		t.Fatalf("output = %q", out.String())
	}
}

// --- stubs ---

type scriptReader struct {
	lines []string
	reads int
}

func (r *scriptReader) ReadLine(string) (string, error) {
	if r == nil || r.reads >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.reads]
	r.reads++
	return line, nil
}

type stubHistory struct {
	entries            []string
	addErr             error
	executor       *stubExecutor
	addedBeforeExecute int
}

func (s *stubHistory) Load() error { return nil }

func (s *stubHistory) Add(entry string) error {
	s.entries = append(s.entries, entry)
	if s.executor == nil || len(s.executor.calls) == 0 {
		s.addedBeforeExecute++
	}
	return s.addErr
}

func (s *stubHistory) Recent(n int) []string {
	if n <= 0 || len(s.entries) == 0 {
		return nil
	}
	start := 0
	if len(s.entries) > n {
		start = len(s.entries) - n
	}
	return s.entries[start:]
}

func (s *stubHistory) Len() int { return len(s.entries) }

type stubInterpreter struct {
	out   string
	err   error
	calls int
}

func (s *stubInterpreter) Name() string { return "stub" }

func (s *stubInterpreter) Interpret(_ context.Context, raw string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if s.out == "" {
		return raw, nil
	}
	return s.out, nil
}

type execCall struct {
	program string
	args    []string
}

type stubExecutor struct {
	output string
	errs   map[string]error
	calls  []execCall
}

func (s *stubExecutor) Execute(_ context.Context, program string, args []string) (string, error) {
	s.calls = append(s.calls, execCall{program: program, args: args})
	if err, ok := s.errs[program]; ok {
		return "", err
	}
	return s.output, nil
}
