package prettyprinter

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/hsfront/internal/config"
)

// Style decorates printer output with ANSI colors when enabled.
type Style struct {
	enabled bool
}

// Plain never emits escape codes.
var Plain = Style{}

// NewStyle resolves a color mode against the destination file.
func NewStyle(mode string, out *os.File) Style {
	switch mode {
	case config.ColorAlways:
		return Style{enabled: true}
	case config.ColorNever:
		return Plain
	}
	return Style{enabled: detectColor(out)}
}

func detectColor(out *os.File) bool {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if out == nil {
		return false
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func (s Style) Enabled() bool { return s.enabled }

func (s Style) fg(code int, text string) string {
	if !s.enabled {
		return text
	}
	return fmt.Sprintf("\033[%dm%s\033[39m", code, text)
}

func (s Style) Keyword(text string) string { return s.fg(35, text) }
func (s Style) Name(text string) string    { return s.fg(36, text) }
func (s Style) Type(text string) string    { return s.fg(33, text) }
func (s Style) Error(text string) string   { return s.fg(31, text) }

func (s Style) Bold(text string) string {
	if !s.enabled {
		return text
	}
	return "\033[1m" + text + "\033[22m"
}
