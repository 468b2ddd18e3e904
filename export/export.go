// Package export writes a decoded JSXBIN tree as a language-neutral
// document: a node outline plus the symbol table, encoded as canonical
// CBOR or YAML.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/chazu/jsxbin/ast"
	"github.com/chazu/jsxbin/decompiler"
	"github.com/chazu/jsxbin/scan"
)

// maxText bounds the source excerpt stored per outline node.
const maxText = 72

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("export: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Document is the exported form of one decode.
type Document struct {
	Version    string        `cbor:"version" yaml:"version"`
	Nodes      int           `cbor:"nodes" yaml:"nodes"`
	Unresolved int           `cbor:"unresolved" yaml:"unresolved"`
	Exhausted  bool          `cbor:"exhausted" yaml:"exhausted"`
	Symbols    []scan.Symbol `cbor:"symbols" yaml:"symbols"`
	Tree       *Outline      `cbor:"tree" yaml:"tree"`
}

// Outline is one node of the exported tree.
type Outline struct {
	Kind     string     `cbor:"kind" yaml:"kind"`
	Tag      string     `cbor:"tag" yaml:"tag"`
	Line     int        `cbor:"line,omitempty" yaml:"line,omitempty"`
	Text     string     `cbor:"text,omitempty" yaml:"text,omitempty"`
	Children []*Outline `cbor:"children,omitempty" yaml:"children,omitempty"`
}

// Build converts a decode result into a Document.
func Build(r *decompiler.Result) *Document {
	return &Document{
		Version:    r.Version.String(),
		Nodes:      r.Nodes,
		Unresolved: r.Unresolved,
		Exhausted:  r.Exhausted,
		Symbols:    r.Symbols,
		Tree:       NewOutline(r.Root),
	}
}

// NewOutline builds the outline of the tree rooted at n.
func NewOutline(n ast.Node) *Outline {
	if n == nil {
		return nil
	}
	o := &Outline{
		Kind: n.Tag().String(),
		Tag:  string(rune(n.Tag())),
		Text: excerpt(ast.Source(n)),
	}
	if l, ok := n.(ast.Lined); ok {
		o.Line = l.LineInfo().Line
	}
	for _, child := range n.Children() {
		o.Children = append(o.Children, NewOutline(child))
	}
	return o
}

// excerpt returns the first line of src, shortened to maxText bytes.
func excerpt(src string) string {
	if i := strings.IndexByte(src, '\n'); i >= 0 {
		src = src[:i]
	}
	if len(src) > maxText {
		src = src[:maxText-3] + "..."
	}
	return src
}

// MarshalCBOR serializes a Document to canonical CBOR.
func MarshalCBOR(d *Document) ([]byte, error) {
	return cborEncMode.Marshal(d)
}

// UnmarshalCBOR deserializes a Document from CBOR bytes.
func UnmarshalCBOR(data []byte) (*Document, error) {
	var d Document
	if err := cbor.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("export: unmarshal cbor: %w", err)
	}
	return &d, nil
}

// MarshalYAML serializes a Document to YAML with two-space indentation.
func MarshalYAML(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("export: marshal yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("export: encoder close: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML deserializes a Document from YAML. Unknown fields are
// rejected.
func UnmarshalYAML(data []byte) (*Document, error) {
	var d Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("export: parse yaml: %w", err)
	}
	return &d, nil
}

// Write encodes d to w in the named format ("cbor" or "yaml").
func Write(w io.Writer, d *Document, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "cbor":
		data, err = MarshalCBOR(d)
	case "yaml":
		data, err = MarshalYAML(d)
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
