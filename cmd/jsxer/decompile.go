package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/jsxbin/config"
	"github.com/chazu/jsxbin/decompiler"
	"github.com/chazu/jsxbin/export"
)

// decompilePath decompiles one input file. output is the destination file,
// "-" for stdout, or empty to derive it from the input name.
func decompilePath(path, output string, cfg *config.Config, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	r, err := decompiler.DecompileFile(string(data), cfg.Options())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if r.Exhausted || r.Unresolved > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %s: incomplete decode (%d unresolved names, exhausted=%v)\n",
			path, r.Unresolved, r.Exhausted)
	}

	var out []byte
	switch cfg.Output.Format {
	case config.FormatJS:
		out = []byte(r.Source + "\n")
	default:
		var sb strings.Builder
		if err := export.Write(&sb, export.Build(r), cfg.Output.Format); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		out = []byte(sb.String())
	}

	if output == "-" {
		_, err := stdout.Write(out)
		return err
	}
	if output == "" {
		output = outputPath(path, cfg)
	}
	if err := os.WriteFile(output, out, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", output, err)
	}
	return nil
}

// outputPath derives the output file name: script.jsxbin -> script.jsx for
// source output, script.cbor or script.yaml for exports.
func outputPath(input string, cfg *config.Config) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if cfg.Output.Format == config.FormatJS {
		return base + cfg.Output.Suffix
	}
	return base + "." + cfg.Output.Format
}
