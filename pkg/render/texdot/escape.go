package texdot

import (
	"strings"
	"unicode/utf8"
)

// CharSet is an immutable set of characters.
type CharSet string

// Contains reports whether r is in the set.
func (s CharSet) Contains(r rune) bool {
	return strings.ContainsRune(string(s), r)
}

// Default character sets for LaTeX labels.
const (
	// DefaultReserved holds the characters with special meaning in LaTeX text.
	DefaultReserved CharSet = `#$%&{}_~^\`

	// DefaultBreakAfter holds the punctuation after which a line may wrap.
	DefaultBreakAfter CharSet = ".,(){}[]$"
)

const (
	escapeMarker = `\`
	emptyGroup   = "{}"
	breakHint    = `\hspace{0pt}`
)

// Escaper escapes text for use as a dot2tex label.
//
// Each character is handled on its own, left to right. A character in
// Reserved is written as escapeMarker, the character and an empty group.
// A character in BreakAfter is followed by a zero-width break hint, after
// its escape if it was also reserved. Everything else is copied unchanged.
type Escaper struct {
	Reserved   CharSet
	BreakAfter CharSet
}

// DefaultEscaper returns an Escaper with the LaTeX character sets.
func DefaultEscaper() Escaper {
	return Escaper{Reserved: DefaultReserved, BreakAfter: DefaultBreakAfter}
}

// Escape returns text escaped for embedding in a texlbl attribute.
// Bytes that are not valid UTF-8 are copied through untouched.
func (e Escaper) Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		ch := text[i : i+size]
		i += size

		if r != utf8.RuneError && e.Reserved.Contains(r) {
			b.WriteString(escapeMarker)
			b.WriteString(ch)
			b.WriteString(emptyGroup)
		} else {
			b.WriteString(ch)
		}
		if r != utf8.RuneError && e.BreakAfter.Contains(r) {
			b.WriteString(breakHint)
		}
	}
	return b.String()
}

func (e Escaper) isZero() bool {
	return e.Reserved == "" && e.BreakAfter == ""
}

// EscapeLabel escapes text with [DefaultEscaper].
func EscapeLabel(text string) string {
	return DefaultEscaper().Escape(text)
}
