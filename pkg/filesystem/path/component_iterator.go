package path

import (
	"iter"
	"strings"
)

// ComponentIterator is a bidirectional cursor over the components of
// a path. If the path has a root path, it is yielded as the first
// component, followed by every component of the relative path. If the
// path ends with a separator that is not part of the root directory, an
// empty component is yielded last.
//
// ComponentIterator is a value type. Next() and Prev() return a new
// cursor and leave the original unmodified.
type ComponentIterator struct {
	path        Path
	rootPathEnd int
	// Offset at which the current component starts. The root path
	// starts at offset zero, while len(path)+1 denotes the end.
	start int
}

// Begin returns a cursor that points to the first component of the
// path. For the empty path, it is equal to End().
func (p Path) Begin() ComponentIterator {
	it := ComponentIterator{
		path:        p,
		rootPathEnd: p.rootPathEnd(),
	}
	if p.value == "" {
		it.start = it.endOffset()
	}
	return it
}

// End returns a cursor that points past the last component of the
// path.
func (p Path) End() ComponentIterator {
	it := ComponentIterator{
		path:        p,
		rootPathEnd: p.rootPathEnd(),
	}
	it.start = it.endOffset()
	return it
}

func (it ComponentIterator) endOffset() int {
	return len(it.path.value) + 1
}

func (it ComponentIterator) isRoot() bool {
	return it.start == 0 && it.rootPathEnd > 0
}

// IsBegin returns true if the cursor points to the first component.
func (it ComponentIterator) IsBegin() bool {
	if it.path.value == "" {
		return true
	}
	return it.start == 0
}

// IsEnd returns true if the cursor points past the last component.
func (it ComponentIterator) IsEnd() bool {
	return it.start == it.endOffset()
}

// Equal returns true if both cursors point to the same component of the
// same path.
func (it ComponentIterator) Equal(other ComponentIterator) bool {
	return it.path.Equal(other.path) && it.start == other.start
}

func (it ComponentIterator) componentEnd() int {
	if it.isRoot() {
		return it.rootPathEnd
	}
	if separator := it.path.Grammar().indexSeparator(it.path.value[it.start:]); separator >= 0 {
		return it.start + separator
	}
	return len(it.path.value)
}

// Value returns the component to which the cursor points. The empty
// path is returned when the cursor points past the last component.
func (it ComponentIterator) Value() Path {
	if it.IsEnd() {
		return Path{grammar: it.path.grammar}
	}
	return it.path.sub(it.start, it.componentEnd())
}

// Span returns the offsets of the component to which the cursor
// points.
func (it ComponentIterator) Span() Span {
	if it.IsEnd() {
		return Span{Start: len(it.path.value), End: len(it.path.value)}
	}
	return Span{Start: it.start, End: it.componentEnd()}
}

// Next returns a cursor that points to the next component. Calling
// Next() on End() yields End().
func (it ComponentIterator) Next() ComponentIterator {
	if it.IsEnd() {
		return it
	}
	value := it.path.value
	if it.isRoot() {
		if it.rootPathEnd < len(value) {
			it.start = it.rootPathEnd
		} else {
			it.start = it.endOffset()
		}
		return it
	}
	end := it.componentEnd()
	if end == len(value) {
		it.start = it.endOffset()
	} else {
		// Skip the separators. If the path ends with them, this
		// ends up pointing to the empty trailing component.
		it.start = it.path.Grammar().skipSeparators(value, end)
	}
	return it
}

// Prev returns a cursor that points to the previous component. Calling
// Prev() on Begin() yields Begin().
func (it ComponentIterator) Prev() ComponentIterator {
	if it.IsBegin() {
		return it
	}
	value := it.path.value
	g := it.path.Grammar()
	end := it.start
	if it.IsEnd() {
		if it.rootPathEnd == len(value) {
			it.start = 0
			return it
		}
		end = len(value)
		if g.IsSeparator(value[end-1]) {
			it.start = end
			return it
		}
	} else {
		if it.start == it.rootPathEnd {
			it.start = 0
			return it
		}
		for end > it.rootPathEnd && g.IsSeparator(value[end-1]) {
			end--
		}
	}
	start := end
	for start > it.rootPathEnd && !g.IsSeparator(value[start-1]) {
		start--
	}
	it.start = start
	return it
}

// Components returns a sequence of all components of the path, in the
// same order as yielded by ComponentIterator.
func (p Path) Components() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		for it := p.Begin(); !it.IsEnd(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// ComponentsBackward returns a sequence of all components of the path,
// starting at the last one.
func (p Path) ComponentsBackward() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		for it := p.End(); !it.IsBegin(); {
			it = it.Prev()
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// JoinComponents concatenates a sequence of components, as yielded by
// Path.Components(), using the grammar's preferred separator. No
// separator is placed directly after a leading component that only
// consists of a root path, as it either already ends with a separator
// or denotes a drive relative path (e.g., "C:"). Later components are
// never interpreted as root paths, so `x\c:\y` is joined verbatim.
func JoinComponents(components iter.Seq[Path], g *Grammar) Path {
	var out strings.Builder
	first, needsSeparator := true, false
	for component := range components {
		if needsSeparator {
			out.WriteByte(g.PreferredSeparator)
		}
		s := component.String()
		out.WriteString(s)
		if first {
			leading := NewPath(s, g)
			needsSeparator = !leading.HasRootPath() || leading.HasRelativePath()
			first = false
		} else {
			needsSeparator = true
		}
	}
	return NewPath(out.String(), g)
}

// CompareComponents orders paths component by component. Root names
// are compared first, followed by the presence of a root directory and
// the components of the relative path. Unlike Equal() and Compare(),
// this ignores the number and kind of separators between components.
func (p Path) CompareComponents(other Path) int {
	if c := strings.Compare(p.RootName().value, other.RootName().value); c != 0 {
		return c
	}
	if hasRootDirectory, otherHasRootDirectory := p.HasRootDirectory(), other.HasRootDirectory(); hasRootDirectory != otherHasRootDirectory {
		if hasRootDirectory {
			return 1
		}
		return -1
	}

	relativePath, otherRelativePath := p.RelativePath().value, other.RelativePath().value
	next, stop := iter.Pull(Tokenize(relativePath, p.Grammar()))
	defer stop()
	otherNext, otherStop := iter.Pull(Tokenize(otherRelativePath, other.Grammar()))
	defer otherStop()
	for {
		element, ok := next()
		otherElement, otherOK := otherNext()
		if !ok || !otherOK {
			if ok {
				return 1
			}
			if otherOK {
				return -1
			}
			return 0
		}
		if c := strings.Compare(element.Span.Slice(relativePath), otherElement.Span.Slice(otherRelativePath)); c != 0 {
			return c
		}
	}
}
