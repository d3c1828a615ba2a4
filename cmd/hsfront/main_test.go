package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCLI runs the command with stdin read from a file holding stdinText.
func runCLI(t *testing.T, stdinText string, args ...string) (int, string, string) {
	t.Helper()
	stdinPath := writeFile(t, t.TempDir(), "stdin", stdinText)
	stdin, err := os.Open(stdinPath)
	if err != nil {
		t.Fatal(err)
	}
	defer stdin.Close()

	var stdout, stderr bytes.Buffer
	code := run(args, stdin, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

const okSource = `add :: Int -> Int -> Int
add x y = x + y
`

func TestAnalyzeFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Add.hs", okSource)
	code, out, errOut := runCLI(t, "", path)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	want := path + "\nadd :: Int -> Int -> Int\n  add x y  {x: Int, y: Int}\n"
	if out != want {
		t.Errorf("stdout:\n%s\nwant:\n%s", out, want)
	}
}

func TestVerboseTrace(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Add.hs", okSource)
	code, _, errOut := runCLI(t, "", "-v", path)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	for _, want := range []string{"hsfront: [", path + " (module Add)", "analyzed 1 symbols"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr %q lacks %q", errOut, want)
		}
	}
}

func TestDiagnosticsExitNonZero(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"syntax", "f :: ", "1:6: error [P001]"},
		{"duplicate", "f :: Int\nf :: Int\n", "2:1: error [A001]"},
		{"undeclared", "g = 1\n", "1:1: error [A002]"},
		{"arity", "f :: Int -> Int\nf = 1\n", "2:1: error [A003]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "Bad.hs", tt.source)
			code, out, errOut := runCLI(t, "", path)
			if code != 1 {
				t.Errorf("exit %d, want 1", code)
			}
			if !strings.Contains(errOut, path+":"+tt.want) {
				t.Errorf("stderr %q lacks %q", errOut, tt.want)
			}
			if out != "" {
				t.Errorf("tables printed for a failing unit: %q", out)
			}
		})
	}
}

func TestDirectoryAndStdinArguments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "B.hs", "b :: Int\nb = 2\n")
	writeFile(t, dir, "A.hs", "a :: Int\na = 1\n")
	writeFile(t, dir, "notes.txt", "not source")

	code, out, errOut := runCLI(t, "c :: Bool\nc = True\n", dir, "-")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	ia := strings.Index(out, "a :: Int")
	ib := strings.Index(out, "b :: Int")
	ic := strings.Index(out, "<stdin>\nc :: Bool")
	if ia < 0 || ib < 0 || ic < 0 || !(ia < ib && ib < ic) {
		t.Errorf("units missing or out of order:\n%s", out)
	}
	if strings.Contains(out, "notes") {
		t.Error("non-source file analyzed")
	}
}

func TestOneFailureDoesNotStopOthers(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.hs", "x = 1\n")
	good := writeFile(t, dir, "good.hs", okSource)
	code, out, _ := runCLI(t, "", bad, good)
	if code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
	if !strings.Contains(out, "add :: Int -> Int -> Int") {
		t.Errorf("good unit not reported:\n%s", out)
	}
}

func TestStdinWithoutArguments(t *testing.T) {
	code, out, errOut := runCLI(t, okSource)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.HasPrefix(out, "<stdin>\n") {
		t.Errorf("stdout %q", out)
	}
}

func TestFormatFlag(t *testing.T) {
	path := writeFile(t, t.TempDir(), "F.hs", "f :: Int->Int\nf x = ((x + 1)) * 2\n")
	code, out, errOut := runCLI(t, "", "-fmt", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "f :: Int -> Int\nf x = (x + 1) * 2\n" {
		t.Errorf("stdout %q", out)
	}
}

func TestASTAndTreeFlags(t *testing.T) {
	path := writeFile(t, t.TempDir(), "T.hs", "n :: Int\nn = 1 + 2\n")
	code, out, _ := runCLI(t, "", "-ast", "-tree", "-dump", path)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"const_declaration 1:1", "Definition n", "= (+ 1 2)", "&ast.Program{"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hsfront.yaml", "precedence:\n  application: highest\nanalysis:\n  register_types: true\n")
	src := writeFile(t, dir, "C.hs", "data Color = Red | Green\nf :: Int\nf = g $ x + 1\n")

	code, out, errOut := runCLI(t, "", "-ast", src)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "= (+ ($ g x) 1)") {
		t.Errorf("highest application not applied:\n%s", out)
	}
	if !strings.Contains(out, "data Color = Green | Red") {
		t.Errorf("types not registered:\n%s", out)
	}
}

func TestBadFlagsAndConfig(t *testing.T) {
	if code, _, _ := runCLI(t, "", "-color", "purple", "x.hs"); code != 2 {
		t.Errorf("bad -color: exit %d, want 2", code)
	}
	if code, _, _ := runCLI(t, "", "-nope"); code != 2 {
		t.Errorf("unknown flag: exit %d, want 2", code)
	}
	cfg := writeFile(t, t.TempDir(), "bad.yaml", "output:\n  color: loud\n")
	if code, _, errOut := runCLI(t, "", "-config", cfg, "x.hs"); code != 2 || !strings.Contains(errOut, "output.color") {
		t.Errorf("bad config: exit %d, stderr %q", code, errOut)
	}
	if code, _, _ := runCLI(t, "", filepath.Join(t.TempDir(), "missing.hs")); code != 1 {
		t.Errorf("missing file: exit %d, want 1", code)
	}
}

func TestIndexAndLookup(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "symbols.db")
	path := writeFile(t, dir, "Add.hs", okSource+"twice :: Int -> Int\ntwice n = add n n\n")

	if code, _, errOut := runCLI(t, "", "-index", db, path); code != 0 {
		t.Fatalf("index: exit %d: %s", code, errOut)
	}

	code, out, errOut := runCLI(t, "", "-index", db, "-lookup", "add")
	if code != 0 {
		t.Fatalf("lookup: exit %d: %s", code, errOut)
	}
	abs, _ := filepath.Abs(path)
	if !strings.Contains(out, abs+":1:1: add :: Int -> Int -> Int (1 equations)") {
		t.Errorf("lookup output:\n%s", out)
	}
	if !strings.Contains(out, "used by twice in "+abs) {
		t.Errorf("references missing:\n%s", out)
	}

	if code, _, _ := runCLI(t, "", "-index", db, "-lookup", "nothing"); code != 1 {
		t.Errorf("unknown name: exit %d, want 1", code)
	}
	if code, _, _ := runCLI(t, "", "-lookup", "add"); code != 1 {
		t.Errorf("lookup without index: exit %d, want 1", code)
	}
}

func TestSession(t *testing.T) {
	var out, errOut bytes.Buffer
	d := &driver{out: &out, errOut: &errOut}
	s := &session{d: d}

	for _, line := range []string{"f :: Int -> Int", "f x = x", "g y = y", ":tables"} {
		if s.handle(line) {
			t.Fatalf("%q ended the session", line)
		}
	}
	if len(s.entries) != 2 {
		t.Errorf("entries %q, want the failing one dropped", s.entries)
	}
	if !strings.Contains(errOut.String(), "A002") {
		t.Errorf("stderr %q", errOut.String())
	}
	if !strings.Contains(out.String(), "  f x  {x: Int}") {
		t.Errorf(":tables output %q", out.String())
	}

	if _, ok := s.eval("  | otherwise = 0"); ok {
		t.Error("dangling guard accepted")
	}
	s.handle(":reset")
	if s.source("") != "" || s.last != nil {
		t.Error("reset kept state")
	}
	if !s.handle(":q") {
		t.Error(":q did not end the session")
	}
}
