// Package texdot renders workflows as Graphviz DOT for dot2tex.
//
// dot2tex typesets node labels with LaTeX, taking the label text from the
// texlbl attribute and the label box style from lblstyle. This package
// produces that dialect:
//
//	digraph D {
//	    d2toptions = "--autosize"
//	    ratio = "compress"
//	    node [lblstyle="text width=10em,align=center"]
//
//	    node_1 [texlbl="Build"]
//	    node_2 [texlbl="Test"]
//	    node_1 -> node_2
//	}
//
// # Labels
//
// [Escaper] makes arbitrary text safe inside a texlbl value. Characters
// reserved by LaTeX are written as a backslash, the character and an empty
// group ({}) so that a following letter is not swallowed by a control
// word. After punctuation a zero-width \hspace{0pt} is inserted so long
// class names can wrap inside the fixed label width.
//
// # Node Names
//
// [NodeToken] maps a task hash to a bare DOT identifier by prefixing node_
// and replacing '-' with '_'. The mapping is injective only over hashes
// that pass [workflow.Validate].
//
// # Preview
//
// Graphviz ignores texlbl, so [PreviewDOT] builds a plain DOT of the same
// graph with ordinary labels, which [RenderSVG] renders in-process through
// go-graphviz.
package texdot
