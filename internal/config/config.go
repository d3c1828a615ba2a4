package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/hsfront/internal/token"
)

// Config represents the top-level hsfront.yaml configuration.
type Config struct {
	Precedence PrecedenceConfig `yaml:"precedence"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Output     OutputConfig     `yaml:"output"`
	Index      IndexConfig      `yaml:"index"`
}

// PrecedenceConfig selects the operator table used by the AST builder.
type PrecedenceConfig struct {
	// Application places the explicit application operator $ at the
	// loosest ("lowest", the default) or tightest ("highest") tier.
	Application string `yaml:"application,omitempty"`

	// Levels, when set, replaces the built-in table. Listed loosest first.
	Levels []LevelConfig `yaml:"levels,omitempty"`
}

// LevelConfig is one operator tier.
type LevelConfig struct {
	Infix  []string `yaml:"infix,omitempty"`
	Prefix []string `yaml:"prefix,omitempty"`
	Assoc  string   `yaml:"assoc,omitempty"` // left (default) or right
}

type AnalysisConfig struct {
	// RegisterTypes records data declarations in the type table.
	// Off by default: plain analysis leaves the type table empty.
	RegisterTypes bool `yaml:"register_types,omitempty"`
}

type OutputConfig struct {
	Color string `yaml:"color,omitempty"` // auto, always or never
}

type IndexConfig struct {
	// Path is the SQLite file receiving analysis results. Empty disables indexing.
	Path string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig walks from dir up to the filesystem root looking for a config
// file. It returns "" without error when there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	switch c.Precedence.Application {
	case "", ApplicationLowest, ApplicationHighest:
	default:
		return fmt.Errorf("%s: precedence.application: want %q or %q, got %q",
			path, ApplicationLowest, ApplicationHighest, c.Precedence.Application)
	}

	seen := make(map[string]int)
	hasNegate := false
	for i, lvl := range c.Precedence.Levels {
		if len(lvl.Infix) == 0 && len(lvl.Prefix) == 0 {
			return fmt.Errorf("%s: precedence.levels[%d]: no operators", path, i)
		}
		switch lvl.Assoc {
		case "", AssocLeft, AssocRight:
		default:
			return fmt.Errorf("%s: precedence.levels[%d]: assoc: want %q or %q, got %q",
				path, i, AssocLeft, AssocRight, lvl.Assoc)
		}
		for _, op := range lvl.Infix {
			if op == "" {
				return fmt.Errorf("%s: precedence.levels[%d]: empty operator", path, i)
			}
			if prev, dup := seen[op]; dup {
				return fmt.Errorf("%s: precedence.levels[%d]: infix %q already defined in levels[%d]", path, i, op, prev)
			}
			seen[op] = i
		}
		for _, op := range lvl.Prefix {
			if op == "" {
				return fmt.Errorf("%s: precedence.levels[%d]: empty operator", path, i)
			}
			if op == NegateOperator {
				hasNegate = true
			}
		}
	}

	// A custom table must place every operator the lexer can produce.
	if len(c.Precedence.Levels) > 0 {
		var missing []string
		for _, op := range token.Operators() {
			if _, ok := seen[op]; !ok {
				missing = append(missing, op)
			}
		}
		if !hasNegate {
			missing = append(missing, "prefix "+NegateOperator)
		}
		if len(missing) > 0 {
			return fmt.Errorf("%s: precedence.levels: missing operators: %s", path, strings.Join(missing, " "))
		}
	}

	switch c.Output.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: output.color: want %q, %q or %q, got %q",
			path, ColorAuto, ColorAlways, ColorNever, c.Output.Color)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Precedence.Application == "" {
		c.Precedence.Application = ApplicationLowest
	}
	for i := range c.Precedence.Levels {
		if c.Precedence.Levels[i].Assoc == "" {
			c.Precedence.Levels[i].Assoc = AssocLeft
		}
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
}
