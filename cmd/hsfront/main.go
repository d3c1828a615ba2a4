package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/kr/pretty"

	"github.com/funvibe/hsfront/internal/analyzer"
	"github.com/funvibe/hsfront/internal/config"
	"github.com/funvibe/hsfront/internal/grammar"
	"github.com/funvibe/hsfront/internal/index"
	"github.com/funvibe/hsfront/internal/lexer"
	"github.com/funvibe/hsfront/internal/parser"
	"github.com/funvibe/hsfront/internal/pipeline"
	"github.com/funvibe/hsfront/internal/precedence"
	"github.com/funvibe/hsfront/internal/prettyprinter"
	"github.com/funvibe/hsfront/internal/utils"
)

const usage = `usage: hsfront [flags] [file|dir|-]...

Analyzes each source file on its own and prints its symbol tables.
With no arguments and a terminal on stdin, starts an interactive session.

`

type options struct {
	configPath string
	indexPath  string
	lookup     string
	color      string
	ast        bool
	tree       bool
	dump       bool
	format     bool
	verbose    bool
}

func main() {
	log.SetFlags(0)          // Disable timestamp in logs
	log.SetOutput(os.Stderr) // Diagnostics and traces go to stderr

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("hsfront", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.configPath, "config", "", "project configuration `file` (default: nearest hsfront.yaml)")
	fs.StringVar(&opts.indexPath, "index", "", "store results in the SQLite `db`")
	fs.StringVar(&opts.lookup, "lookup", "", "print the indexed declarations of `name`")
	fs.StringVar(&opts.color, "color", "", "color output: auto, always or never")
	fs.BoolVar(&opts.ast, "ast", false, "print the AST outline")
	fs.BoolVar(&opts.tree, "tree", false, "print the parse tree")
	fs.BoolVar(&opts.dump, "dump", false, "dump the AST as Go values")
	fs.BoolVar(&opts.format, "fmt", false, "print the program as normalized source")
	fs.BoolVar(&opts.verbose, "v", false, "trace pipeline stages")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(opts.configPath, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "hsfront: %v\n", err)
		return 2
	}
	switch opts.color {
	case "":
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
		cfg.Output.Color = opts.color
	default:
		fmt.Fprintf(stderr, "hsfront: -color: want auto, always or never, got %q\n", opts.color)
		return 2
	}
	if opts.indexPath != "" {
		cfg.Index.Path = opts.indexPath
	}

	var logger *log.Logger
	if opts.verbose {
		logger = log.New(stderr, "hsfront: ", 0)
	}
	d := &driver{
		opts:   opts,
		cfg:    cfg,
		out:    stdout,
		errOut: stderr,
		style:  styleFor(cfg.Output.Color, stdout),
		logger: logger,
	}

	if fs.NArg() == 0 && opts.lookup == "" {
		if isInteractive(stdin) {
			return d.repl()
		}
		return d.analyzeReader("<stdin>", stdin)
	}

	ctx := context.Background()
	if cfg.Index.Path != "" {
		ix, err := index.Open(ctx, cfg.Index.Path)
		if err != nil {
			fmt.Fprintf(stderr, "hsfront: %v\n", err)
			return 1
		}
		defer ix.Close()
		d.index = ix
	}

	status := 0
	for _, arg := range fs.Args() {
		if arg == "-" {
			status |= d.analyzeReader("<stdin>", stdin)
			continue
		}
		files, err := utils.CollectSourceFiles([]string{arg})
		if err != nil {
			fmt.Fprintf(stderr, "hsfront: %v\n", err)
			status = 1
			continue
		}
		for _, path := range files {
			status |= d.analyzeFile(ctx, path)
		}
	}
	if opts.lookup != "" {
		status |= d.printLookup(ctx, opts.lookup)
	}
	return status
}

// loadConfig reads the explicit config file, or the nearest one above the
// first input, or falls back to the defaults.
func loadConfig(explicit string, args []string) (*config.Config, error) {
	if explicit != "" {
		return config.LoadConfig(explicit)
	}
	dir := "."
	if len(args) > 0 && args[0] != "-" {
		dir = utils.GetModuleDir(args[0])
	}
	path, err := config.FindConfig(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

func styleFor(mode string, out io.Writer) prettyprinter.Style {
	f, _ := out.(*os.File)
	return prettyprinter.NewStyle(mode, f)
}

func isInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

type driver struct {
	opts   options
	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
	style  prettyprinter.Style
	logger *log.Logger
	index  *index.Index
}

func (d *driver) pipeline() *pipeline.Pipeline {
	return pipeline.New(
		&lexer.LexerProcessor{},
		&grammar.GrammarProcessor{},
		&parser.ParserProcessor{Logger: d.logger},
		&analyzer.SemanticAnalyzerProcessor{Logger: d.logger},
	)
}

// analyze runs one unit through the front-end.
func (d *driver) analyze(path, source string) *pipeline.PipelineContext {
	ctx := pipeline.NewContext(path, source, d.cfg)
	if d.logger != nil {
		d.logger.Printf("[%s] %s (module %s)", ctx.ID, path, utils.ExtractModuleName(path))
	}
	return d.pipeline().Run(ctx)
}

func (d *driver) analyzeReader(name string, r io.Reader) int {
	src, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(d.errOut, "hsfront: reading %s: %v\n", name, err)
		return 1
	}
	return d.report(context.Background(), d.analyze(name, string(src)))
}

func (d *driver) analyzeFile(ctx context.Context, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(d.errOut, "hsfront: %v\n", err)
		return 1
	}
	return d.report(ctx, d.analyze(path, string(src)))
}

// report prints what the flags ask for and the diagnostics of the unit.
func (d *driver) report(ctx context.Context, pctx *pipeline.PipelineContext) int {
	if d.opts.tree && pctx.ParseTree != nil {
		prettyprinter.PrintParseTree(d.out, pctx.ParseTree, d.style)
	}
	if d.opts.ast && pctx.AstRoot != nil {
		prettyprinter.NewTreePrinter(d.out, d.style).PrintProgram(pctx.AstRoot)
	}
	if d.opts.dump && pctx.AstRoot != nil {
		fmt.Fprintf(d.out, "%# v\n", pretty.Formatter(pctx.AstRoot))
	}
	if d.opts.format && pctx.AstRoot != nil {
		cp := prettyprinter.NewCodePrinter(precedence.FromConfig(d.cfg.Precedence))
		cp.PrintProgram(pctx.AstRoot)
		fmt.Fprint(d.out, cp.String())
	}

	if pctx.Failed() {
		for _, e := range pctx.Errors {
			fmt.Fprintln(d.errOut, d.style.Error(e.Error()))
		}
		return 1
	}

	if pctx.Tables.Symbols.Len()+pctx.Tables.Types.Len() > 0 && !d.opts.format {
		fmt.Fprintf(d.out, "%s\n", d.style.Bold(pctx.FilePath))
		prettyprinter.PrintTables(d.out, pctx.Tables, d.style)
	}

	if d.index != nil {
		unit := pctx.FilePath
		if abs, err := filepath.Abs(unit); err == nil {
			unit = abs
		}
		id, err := d.index.Store(ctx, unit, pctx.Tables)
		if err != nil {
			fmt.Fprintf(d.errOut, "hsfront: %v\n", err)
			return 1
		}
		if d.logger != nil {
			d.logger.Printf("[%s] indexed as %s", pctx.ID, id)
		}
	}
	return 0
}

func (d *driver) printLookup(ctx context.Context, name string) int {
	if d.index == nil {
		fmt.Fprintln(d.errOut, "hsfront: -lookup needs -index or index.path")
		return 1
	}
	entries, err := d.index.Lookup(ctx, name)
	if err != nil {
		fmt.Fprintf(d.errOut, "hsfront: %v\n", err)
		return 1
	}
	if len(entries) == 0 {
		fmt.Fprintf(d.errOut, "hsfront: %s is not indexed\n", name)
		return 1
	}
	for _, e := range entries {
		fmt.Fprintf(d.out, "%s:%d:%d: %s :: %s (%d equations)\n",
			e.Unit, e.Line, e.Column, d.style.Name(e.Name), d.style.Type(e.Type), e.Instances)
	}
	refs, err := d.index.References(ctx, name)
	if err != nil {
		fmt.Fprintf(d.errOut, "hsfront: %v\n", err)
		return 1
	}
	for _, r := range refs {
		fmt.Fprintf(d.out, "  used by %s in %s\n", r.Symbol, r.Unit)
	}
	return 0
}
