package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/jsxbin/ast"
	"github.com/chazu/jsxbin/config"
	"github.com/chazu/jsxbin/decompiler"
	"github.com/chazu/jsxbin/export"
	"github.com/chazu/jsxbin/internal/jsxbintest"
)

// writeSample writes a .jsxbin file holding: debugger;
func writeSample(t *testing.T, dir string) string {
	t.Helper()
	e := jsxbintest.New()
	e.Tag(byte(ast.TagProgram)).Num(1)
	e.Tag(byte(ast.TagDebuggerStatement)).Num(1).Tag(byte(ast.TagEmpty)).Num(0)

	path := filepath.Join(dir, "script.jsxbin")
	text := decompiler.Magic + "2.0@" + string(e.Bytes())
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOutputPath(t *testing.T) {
	cfg := config.Default()
	if got := outputPath("dir/a.jsxbin", cfg); got != "dir/a.jsx" {
		t.Errorf("outputPath = %q", got)
	}
	cfg.Output.Format = config.FormatYAML
	if got := outputPath("a.jsxbin", cfg); got != "a.yaml" {
		t.Errorf("outputPath = %q", got)
	}
}

func TestDecompilePathWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir)

	if err := decompilePath(path, "", config.Default(), nil); err != nil {
		t.Fatalf("decompilePath: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "script.jsx"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "debugger;\n" {
		t.Errorf("output = %q", got)
	}
}

func TestDecompilePathStdoutCBOR(t *testing.T) {
	path := writeSample(t, t.TempDir())
	cfg := config.Default()
	cfg.Output.Format = config.FormatCBOR

	var buf bytes.Buffer
	if err := decompilePath(path, "-", cfg, &buf); err != nil {
		t.Fatalf("decompilePath: %v", err)
	}
	doc, err := export.UnmarshalCBOR(buf.Bytes())
	if err != nil {
		t.Fatalf("UnmarshalCBOR: %v", err)
	}
	if doc.Tree == nil || doc.Tree.Kind != "Program" || doc.Nodes != 2 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestDecompilePathMissingFile(t *testing.T) {
	if err := decompilePath(filepath.Join(t.TempDir(), "nope.jsxbin"), "", config.Default(), nil); err == nil {
		t.Error("expected error")
	}
}
