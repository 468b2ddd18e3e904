// Package config handles jsxbin.toml decompiler configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chazu/jsxbin/ast"
	"github.com/chazu/jsxbin/decompiler"
	"github.com/chazu/jsxbin/scan"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "jsxbin.toml"

// Output formats.
const (
	FormatJS   = "js"
	FormatCBOR = "cbor"
	FormatYAML = "yaml"
)

// Config represents a jsxbin.toml file.
type Config struct {
	Decode Decode `toml:"decode"`
	Render Render `toml:"render"`
	Output Output `toml:"output"`

	// Path is the file the configuration was read from (set at load time).
	Path string `toml:"-"`
}

// Decode configures the decode session.
type Decode struct {
	DepthBudget  int    `toml:"depth-budget"`
	NestingLimit int    `toml:"nesting-limit"`
	Unblind      bool   `toml:"unblind"`
	Version      string `toml:"version"`
}

// Render configures source output.
type Render struct {
	Indent     string `toml:"indent"`
	Unresolved string `toml:"unresolved"`
}

// Output selects what the CLI writes.
type Output struct {
	Format string `toml:"format"`
	Suffix string `toml:"suffix"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Decode.DepthBudget <= 0 {
		c.Decode.DepthBudget = scan.DefaultDepthBudget
	}
	if c.Decode.NestingLimit <= 0 {
		c.Decode.NestingLimit = scan.DefaultNestingLimit
	}
	if c.Render.Indent == "" {
		c.Render.Indent = ast.DefaultIndent
	}
	if c.Render.Unresolved == "" {
		c.Render.Unresolved = ast.DefaultUnresolved
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatJS
	}
	if c.Output.Suffix == "" {
		c.Output.Suffix = ".jsx"
	}
}

// Load parses the jsxbin.toml file in dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses the configuration file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.applyDefaults()
	return &c, nil
}

// FindAndLoad walks up from startDir to find a jsxbin.toml file, then loads
// and returns it. Returns the defaults if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", FormatJS, FormatCBOR, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Decode.Version != "" {
		if _, err := scan.ParseVersion(c.Decode.Version); err != nil {
			return err
		}
	}
	if u := c.Render.Unresolved; u != "" && !validPlaceholder(u) {
		return fmt.Errorf("render.unresolved %q must contain exactly one %%s and no other verbs", u)
	}
	return nil
}

// validPlaceholder reports whether pattern formats exactly one string.
func validPlaceholder(pattern string) bool {
	rest := strings.ReplaceAll(pattern, "%%", "")
	return strings.Count(rest, "%s") == 1 && strings.Count(rest, "%") == 1
}

// Options converts the configuration to decompiler options.
func (c *Config) Options() decompiler.Options {
	opts := decompiler.Options{
		DepthBudget:           c.Decode.DepthBudget,
		NestingLimit:          c.Decode.NestingLimit,
		Unblind:               c.Decode.Unblind,
		Indent:                c.Render.Indent,
		UnresolvedPlaceholder: c.Render.Unresolved,
	}
	if c.Decode.Version != "" {
		// Validated at load time.
		opts.Version, _ = scan.ParseVersion(c.Decode.Version)
	}
	return opts
}
