package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/funvibe/hsfront/internal/pipeline"
	"github.com/funvibe/hsfront/internal/prettyprinter"
)

const replUnit = "<repl>"

// session accumulates accepted entries. Every new entry is analyzed
// together with everything accepted before it and kept only if the whole
// session still analyzes cleanly.
type session struct {
	d       *driver
	entries []string
	last    *pipeline.PipelineContext
}

func (s *session) source(extra string) string {
	var sb strings.Builder
	for _, e := range s.entries {
		sb.WriteString(e)
		sb.WriteString("\n")
	}
	if extra != "" {
		sb.WriteString(extra)
		sb.WriteString("\n")
	}
	return sb.String()
}

// eval analyzes the session with entry appended. Indented entries continue
// the previous statement, so guards can be added one line at a time.
func (s *session) eval(entry string) (*pipeline.PipelineContext, bool) {
	ctx := s.d.analyze(replUnit, s.source(entry))
	if ctx.Failed() {
		return ctx, false
	}
	s.entries = append(s.entries, entry)
	s.last = ctx
	return ctx, true
}

func (s *session) reset() {
	s.entries = nil
	s.last = nil
}

// command handles a ':' line and reports whether the session should end.
func (s *session) command(line string, out io.Writer) bool {
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return true
	case ":reset":
		s.reset()
		fmt.Fprintln(out, "session cleared")
	case ":tables", ":t":
		if s.last != nil {
			prettyprinter.PrintTables(out, s.last.Tables, s.d.style)
		}
	case ":ast":
		if s.last != nil {
			prettyprinter.NewTreePrinter(out, s.d.style).PrintProgram(s.last.AstRoot)
		}
	case ":source":
		fmt.Fprint(out, s.source(""))
	default:
		fmt.Fprintln(out, "commands: :tables :ast :source :reset :quit")
	}
	return false
}

func (s *session) handle(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if strings.HasPrefix(strings.TrimSpace(line), ":") {
		return s.command(line, s.d.out)
	}
	ctx, ok := s.eval(line)
	if !ok {
		for _, e := range ctx.Errors {
			fmt.Fprintln(s.d.errOut, s.d.style.Error(e.Error()))
		}
	}
	return false
}

func (d *driver) repl() int {
	s := &session{d: d}
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		input, err := state.Prompt("hs> ")
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Fprintln(d.out)
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintln(d.out)
				return 0
			default:
				fmt.Fprintf(d.errOut, "read error: %v\n", err)
				return 1
			}
		}
		if trimmed := strings.TrimSpace(input); trimmed != "" {
			state.AppendHistory(trimmed)
		}
		if s.handle(input) {
			return 0
		}
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".hsfront_history")
}
