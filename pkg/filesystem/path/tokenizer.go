package path

import (
	"iter"
)

// Span is a half-open range [Start, End) of byte offsets into a
// pathname string.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Slice returns the bytes of s covered by the span.
func (s Span) Slice(str string) string {
	return str[s.Start:s.End]
}

// Element is a single pathname component yielded by Tokenize.
type Element struct {
	Span Span
	// Whether the element is followed by one or more separators.
	TrailingSeparator bool
}

// Tokenize splits a relative pathname string into its components.
// Runs of separators are treated as a single boundary, so no empty
// components are emitted in the middle of the string. If the string
// ends with one or more separators, a final empty element is emitted.
//
// The string must not start with a separator. Strings obtained through
// Path.RelativePath() never do.
//
// The returned sequence may be iterated over multiple times.
func Tokenize(s string, g *Grammar) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		start := 0
		for start < len(s) {
			separator := g.indexSeparator(s[start:])
			if separator < 0 {
				// Final component, not followed by a separator.
				yield(Element{Span: Span{Start: start, End: len(s)}})
				return
			}
			end := start + separator
			if !yield(Element{Span: Span{Start: start, End: end}, TrailingSeparator: true}) {
				return
			}
			start = g.skipSeparators(s, end)
			if start == len(s) {
				// Path ends with a separator.
				yield(Element{Span: Span{Start: start, End: start}})
				return
			}
		}
	}
}
