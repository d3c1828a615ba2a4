package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Precedence.Application != ApplicationLowest {
		t.Errorf("application = %q", cfg.Precedence.Application)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("color = %q", cfg.Output.Color)
	}
	if cfg.Analysis.RegisterTypes || cfg.Index.Path != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
precedence:
  application: highest
  levels:
    - infix: ["$", "||", "&&", "<=", ">=", "<", ">", "==", "/=", ":", "++", "+", "-"]
    - prefix: ["-"]
    - infix: ["*", "/", ".", "!!"]
    - infix: ["^", "**"]
      assoc: right
analysis:
  register_types: true
output:
  color: never
index:
  path: symbols.db
`)
	cfg, err := ParseConfig(data, "hsfront.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Precedence.Application != ApplicationHighest {
		t.Errorf("application = %q", cfg.Precedence.Application)
	}
	if len(cfg.Precedence.Levels) != 4 {
		t.Fatalf("levels = %+v", cfg.Precedence.Levels)
	}
	if cfg.Precedence.Levels[0].Assoc != AssocLeft || cfg.Precedence.Levels[3].Assoc != AssocRight {
		t.Errorf("assoc defaults not applied: %+v", cfg.Precedence.Levels)
	}
	if !cfg.Analysis.RegisterTypes || cfg.Output.Color != ColorNever || cfg.Index.Path != "symbols.db" {
		t.Errorf("got %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"application", "precedence:\n  application: middle\n", "precedence.application"},
		{"empty level", "precedence:\n  levels:\n    - assoc: left\n", "no operators"},
		{"assoc", "precedence:\n  levels:\n    - infix: [\"+\"]\n      assoc: none\n", "assoc"},
		{"repeated infix", "precedence:\n  levels:\n    - infix: [\"+\"]\n    - infix: [\"+\"]\n", "already defined"},
		{"empty operator", "precedence:\n  levels:\n    - infix: [\"\"]\n", "empty operator"},
		{"empty prefix", "precedence:\n  levels:\n    - prefix: [\"\"]\n", "empty operator"},
		{"partial table", "precedence:\n  levels:\n    - infix: [\"+\", \"-\"]\n", "missing operators"},
		{"color", "output:\n  color: sometimes\n", "output.color"},
		{"yaml", "precedence: [", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml), "bad.yaml")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) || !strings.Contains(err.Error(), "bad.yaml") {
				t.Errorf("error %q does not mention %q and the file", err, tt.want)
			}
		})
	}
}

func TestCustomLevelsMustCoverEveryOperator(t *testing.T) {
	_, err := ParseConfig([]byte("precedence:\n  levels:\n    - infix: [\"+\", \"-\", \"*\"]\n"), "partial.yaml")
	if err == nil {
		t.Fatal("partial table accepted")
	}
	msg := err.Error()
	for _, op := range []string{"$", "||", "**", "!!", "prefix -"} {
		if !strings.Contains(msg, op) {
			t.Errorf("error %q does not name %q", msg, op)
		}
	}
	if strings.Contains(msg, " * ") {
		t.Errorf("error %q names an operator that is present", msg)
	}

	_, err = ParseConfig([]byte(`
precedence:
  levels:
    - infix: ["$", "||", "&&", "<=", ">=", "<", ">", "==", "/=", ":", "++", "+", "-", "*", "/", "^", "**", ".", "!!"]
`), "noprefix.yaml")
	if err == nil || !strings.HasSuffix(err.Error(), "missing operators: prefix -") {
		t.Errorf("got %v, want only the prefix minus reported", err)
	}
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "lib")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, err := FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	// Only files under root are ours; anything found above it is ignored.
	if strings.HasPrefix(path, root) {
		t.Fatalf("found %s before one was written", path)
	}

	want := filepath.Join(root, "hsfront.yml")
	if err := os.WriteFile(want, []byte("output:\n  color: always\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path, err = FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path != want {
		t.Fatalf("got %q, want %q", path, want)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Color != ColorAlways {
		t.Errorf("color = %q", cfg.Output.Color)
	}

	// The primary name wins within one directory.
	primary := filepath.Join(root, "hsfront.yaml")
	if err := os.WriteFile(primary, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if path, _ = FindConfig(nested); path != primary {
		t.Errorf("got %q, want %q", path, primary)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSourceExt(t *testing.T) {
	if !HasSourceExt("dir/Main.hs") || HasSourceExt("main.go") {
		t.Error("HasSourceExt")
	}
	if TrimSourceExt("Main.hs") != "Main" || TrimSourceExt("README") != "README" {
		t.Error("TrimSourceExt")
	}
}
