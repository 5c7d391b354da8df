package texdot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/matzehuels/workflowdot/pkg/workflow"
)

// Prologue holds the graph-level rendering directives written before the
// first node.
type Prologue struct {
	// Name is the digraph identifier.
	Name string `toml:"name"`
	// D2TOptions is passed to dot2tex as its command-line options.
	D2TOptions string `toml:"d2toptions"`
	// Ratio is the Graphviz aspect ratio setting.
	Ratio string `toml:"ratio"`
	// LabelWidth is the fixed TeX width of every node label box.
	LabelWidth string `toml:"label_width"`
	// LabelAlign is the text alignment inside the label box.
	LabelAlign string `toml:"label_align"`
}

// DefaultPrologue returns the directives used when nothing is configured.
func DefaultPrologue() Prologue {
	return Prologue{
		Name:       "D",
		D2TOptions: "--autosize",
		Ratio:      "compress",
		LabelWidth: "10em",
		LabelAlign: "center",
	}
}

// withDefaults fills empty fields from DefaultPrologue.
func (p Prologue) withDefaults() Prologue {
	d := DefaultPrologue()
	if p.Name == "" {
		p.Name = d.Name
	}
	if p.D2TOptions == "" {
		p.D2TOptions = d.D2TOptions
	}
	if p.Ratio == "" {
		p.Ratio = d.Ratio
	}
	if p.LabelWidth == "" {
		p.LabelWidth = d.LabelWidth
	}
	if p.LabelAlign == "" {
		p.LabelAlign = d.LabelAlign
	}
	return p
}

// Options configures DOT emission. Zero-valued fields take the defaults.
type Options struct {
	Prologue Prologue
	Escaper  Escaper
}

const indent = "    "

// ToDOT renders tasks as dot2tex DOT.
//
// The output is the prologue, then for every task in order one node line
// carrying the escaped task type followed by one edge line per dependency
// in list order, then the closing brace. Dependencies that do not name a
// task in the list still produce an edge.
func ToDOT(tasks []workflow.Task, opts Options) []byte {
	p := opts.Prologue.withDefaults()
	esc := opts.Escaper
	if esc.isZero() {
		esc = DefaultEscaper()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", p.Name)
	fmt.Fprintf(&buf, "%sd2toptions = %q\n", indent, p.D2TOptions)
	fmt.Fprintf(&buf, "%sratio = %q\n", indent, p.Ratio)
	fmt.Fprintf(&buf, "%snode [lblstyle=\"text width=%s,align=%s\"]\n", indent, p.LabelWidth, p.LabelAlign)
	buf.WriteString("\n")

	for _, t := range tasks {
		node := NodeToken(t.Hash)
		fmt.Fprintf(&buf, "%s%s [texlbl=\"%s\"]\n", indent, node, esc.Escape(t.TaskType))
		for _, dep := range t.Dependencies {
			fmt.Fprintf(&buf, "%s%s -> %s\n", indent, NodeToken(dep), node)
		}
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

// WriteDOT renders tasks with [ToDOT] and writes the result to w.
func WriteDOT(w io.Writer, tasks []workflow.Task, opts Options) error {
	if _, err := w.Write(ToDOT(tasks, opts)); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}
