// Package decompiler drives a JSXBIN decode: it unwraps the envelope,
// decodes the root node and renders it back to ExtendScript source.
package decompiler

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/chazu/jsxbin/ast"
	"github.com/chazu/jsxbin/scan"
)

var log = commonlog.GetLogger("jsxbin.decompiler")

// ErrNoRoot is returned when the body does not start with a decodable node.
var ErrNoRoot = errors.New("no root node in jsxbin body")

// Options controls decoding and rendering. The zero value uses the
// defaults of the scan and ast packages.
type Options struct {
	// Version, when set, overrides the version announced by the header.
	Version scan.Version

	DepthBudget  int
	NestingLimit int
	Unblind      bool

	Indent                string
	UnresolvedPlaceholder string
}

func (o Options) stateOptions() []scan.Option {
	return []scan.Option{
		scan.WithDepthBudget(o.DepthBudget),
		scan.WithNestingLimit(o.NestingLimit),
		scan.WithUnblind(o.Unblind),
	}
}

func (o Options) printerOptions() []ast.PrinterOption {
	var opts []ast.PrinterOption
	if o.Indent != "" {
		opts = append(opts, ast.WithIndent(o.Indent))
	}
	if o.UnresolvedPlaceholder != "" {
		opts = append(opts, ast.WithUnresolved(o.UnresolvedPlaceholder))
	}
	return opts
}

// Result is a completed decode. Degraded decodes still carry whatever
// source could be recovered; the counters say how degraded it is.
type Result struct {
	Source  string
	Version scan.Version
	Root    ast.Node
	Symbols []scan.Symbol

	Nodes      int  // decoded nodes
	Unresolved int  // failed symbol lookups
	Exhausted  bool // budget, nesting limit or data ran out
	Trailing   int  // bytes left unread after the root node
}

// Decode decodes one root node from an already normalized body.
func Decode(buf []byte, version scan.Version, opts Options) (*Result, error) {
	if opts.Version != scan.VersionUnknown {
		version = opts.Version
	}
	st := scan.New(buf, version, opts.stateOptions()...)

	root := ast.Decode(st)
	if root == nil {
		return nil, fmt.Errorf("decompiler: %w (%d bytes)", ErrNoRoot, len(buf))
	}

	r := &Result{
		Source:     ast.Source(root, opts.printerOptions()...),
		Version:    version,
		Root:       root,
		Symbols:    st.Symbols().Snapshot(),
		Nodes:      ast.Count(root),
		Unresolved: st.Unresolved(),
		Exhausted:  st.Exhausted(),
		Trailing:   st.Remaining(),
	}
	if r.Exhausted {
		log.Noticef("decode stopped early at offset %d of %d", st.Offset(), st.Len())
	}
	if r.Trailing > 0 {
		log.Debugf("%d trailing bytes after root node", r.Trailing)
	}
	return r, nil
}

// Decompile decodes buf and returns the rendered source.
func Decompile(buf []byte, version scan.Version, opts Options) (string, error) {
	r, err := Decode(buf, version, opts)
	if err != nil {
		return "", err
	}
	return r.Source, nil
}

// DecompileFile decompiles the contents of a .jsxbin file, or a script
// that embeds one.
func DecompileFile(text string, opts Options) (*Result, error) {
	h, body, err := ParseHeader(text)
	if err != nil {
		return nil, fmt.Errorf("decompiler: %w", err)
	}
	log.Debugf("jsxbin version %s at offset %d", h.Version, h.Offset)
	return Decode(Normalize(body), h.Version, opts)
}
