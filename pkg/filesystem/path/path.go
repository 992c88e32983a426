package path

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Path is a pathname string, paired with the grammar that is used to
// interpret it. Paths are immutable. All of the decomposition
// functions are pure projections of the original string, meaning that
// they never fail and that the components they return share storage
// with the original string.
//
// No normalization is performed whatsoever. Separators are retained
// verbatim, "." and ".." components are kept, and casing is left
// untouched.
//
// Paths are comparable, meaning they can be used as map keys. Two
// paths created through NewPath() are identical if they have the same
// grammar and contain the same bytes. The zero Path is interpreted
// using LocalGrammar. It is Equal() to NewLocalPath(""), but is a
// different map key.
type Path struct {
	value   string
	grammar *Grammar
}

// NewPath creates a Path that interprets a string using a given
// grammar. Every string is accepted, including the empty string and
// strings that contain null bytes.
func NewPath(value string, grammar *Grammar) Path {
	if grammar == nil {
		grammar = LocalGrammar
	}
	return Path{value: value, grammar: grammar}
}

// NewUNIXPath creates a Path that is interpreted using UNIXGrammar.
func NewUNIXPath(value string) Path {
	return NewPath(value, UNIXGrammar)
}

// NewWindowsPath creates a Path that is interpreted using
// WindowsGrammar.
func NewWindowsPath(value string) Path {
	return NewPath(value, WindowsGrammar)
}

// NewLocalPath creates a Path that is interpreted using the grammar of
// the locally running operating system.
func NewLocalPath(value string) Path {
	return NewPath(value, LocalGrammar)
}

func (p Path) String() string {
	return p.value
}

// Grammar returns the grammar that is used to interpret the path. The
// zero Path uses LocalGrammar.
func (p Path) Grammar() *Grammar {
	if p.grammar == nil {
		return LocalGrammar
	}
	return p.grammar
}

func (p Path) sub(start, end int) Path {
	return Path{value: p.value[start:end], grammar: p.grammar}
}

// IsEmpty returns true if the path is the empty string.
func (p Path) IsEmpty() bool {
	return p.value == ""
}

// Equal returns true if both paths use the same grammar and consist of
// the same bytes. Paths that only differ in the separators they use
// are not equal.
func (p Path) Equal(other Path) bool {
	return p.value == other.value && p.Grammar() == other.Grammar()
}

// Compare orders paths by their raw bytes.
func (p Path) Compare(other Path) int {
	return strings.Compare(p.value, other.value)
}

// Hash returns a hash of the raw bytes of the path.
func (p Path) Hash() uint64 {
	return xxhash.Sum64String(p.value)
}

func (p Path) classifyRootName() RootName {
	return ClassifyRootName(p.value, p.Grammar())
}

func (p Path) rootNameEnd() int {
	return p.classifyRootName().Length
}

func (p Path) rootPathEnd() int {
	rootNameEnd := p.rootNameEnd()
	return rootNameEnd + ExtractRootDirectory(p.value, rootNameEnd, p.Grammar())
}

// RootNameKind returns the kind of root name the path has.
func (p Path) RootNameKind() RootNameKind {
	return p.classifyRootName().Kind
}

// RootName returns the root name of the path, such as "C:" or
// "\\server". Paths interpreted using UNIXGrammar never have a root
// name.
func (p Path) RootName() Path {
	return p.sub(0, p.rootNameEnd())
}

// HasRootName returns true if the root name is non-empty.
func (p Path) HasRootName() bool {
	return p.rootNameEnd() > 0
}

// RootDirectory returns the run of separators that follows the root
// name, if any.
func (p Path) RootDirectory() Path {
	rootNameEnd := p.rootNameEnd()
	return p.sub(rootNameEnd, rootNameEnd+ExtractRootDirectory(p.value, rootNameEnd, p.Grammar()))
}

// HasRootDirectory returns true if the root directory is non-empty.
func (p Path) HasRootDirectory() bool {
	return !p.RootDirectory().IsEmpty()
}

// RootPath returns the concatenation of the root name and the root
// directory.
func (p Path) RootPath() Path {
	return p.sub(0, p.rootPathEnd())
}

// HasRootPath returns true if the path has a root name or a root
// directory.
func (p Path) HasRootPath() bool {
	return p.rootPathEnd() > 0
}

// RelativePath returns everything in the path that follows the root
// path.
func (p Path) RelativePath() Path {
	return p.sub(p.rootPathEnd(), len(p.value))
}

// HasRelativePath returns true if the relative path is non-empty.
func (p Path) HasRelativePath() bool {
	return p.rootPathEnd() < len(p.value)
}

func (p Path) parentPathEnd() int {
	rootPathEnd := p.rootPathEnd()
	g := p.Grammar()
	end := len(p.value)
	for end > rootPathEnd && !g.IsSeparator(p.value[end-1]) {
		end--
	}
	for end > rootPathEnd && g.IsSeparator(p.value[end-1]) {
		end--
	}
	return end
}

// ParentPath returns the path with its filename and the separators
// preceding it removed. If the path ends with one or more separators,
// only those separators are removed. The whole trailing run is
// stripped, so the parent path of "a//" is "a". Separators that are
// part of the root directory are never removed. This means that the
// parent path of a path only consisting of a root path is the path
// itself.
func (p Path) ParentPath() Path {
	return p.sub(0, p.parentPathEnd())
}

// HasParentPath returns true if the parent path is non-empty.
func (p Path) HasParentPath() bool {
	return p.parentPathEnd() > 0
}

func (p Path) filenameStart() int {
	rootPathEnd := p.rootPathEnd()
	relativePath := p.value[rootPathEnd:]
	return rootPathEnd + p.Grammar().lastIndexSeparator(relativePath) + 1
}

// Filename returns the last component of the relative path. The
// filename is empty if the relative path is empty or ends with a
// separator.
func (p Path) Filename() Path {
	return p.sub(p.filenameStart(), len(p.value))
}

// HasFilename returns true if the filename is non-empty.
func (p Path) HasFilename() bool {
	return p.filenameStart() < len(p.value)
}

func (p Path) extensionStart() int {
	filenameStart := p.filenameStart()
	filename := p.value[filenameStart:]
	if filename == "." || filename == ".." {
		return len(p.value)
	}
	if dot := strings.LastIndexByte(filename, '.'); dot > 0 {
		return filenameStart + dot
	}
	return len(p.value)
}

// Stem returns the filename without its extension.
func (p Path) Stem() Path {
	return p.sub(p.filenameStart(), p.extensionStart())
}

// HasStem returns true if the stem is non-empty.
func (p Path) HasStem() bool {
	return p.filenameStart() < p.extensionStart()
}

// Extension returns the part of the filename starting at its last
// period. Filenames that only start with a period (e.g., ".profile"),
// "." and ".." have no extension.
func (p Path) Extension() Path {
	return p.sub(p.extensionStart(), len(p.value))
}

// HasExtension returns true if the extension is non-empty.
func (p Path) HasExtension() bool {
	return p.extensionStart() < len(p.value)
}

// IsAbsolute returns true if the path unambiguously identifies a
// location without depending on the current working directory or
// current drive. For UNIXGrammar this only requires a root directory.
// For WindowsGrammar both a root name and a root directory are
// required, meaning that "C:foo" and "\foo" are relative.
func (p Path) IsAbsolute() bool {
	if p.Grammar().AbsoluteRequiresRootName {
		return p.HasRootName() && p.HasRootDirectory()
	}
	return p.HasRootDirectory()
}

// IsRelative returns the opposite of IsAbsolute.
func (p Path) IsRelative() bool {
	return !p.IsAbsolute()
}

// Decomposition contains the offsets of all of the parts of a path
// that can be obtained through the accessors of Path.
type Decomposition struct {
	RootName      RootName
	RootNameSpan  Span
	RootDirectory Span
	RootPath      Span
	RelativePath  Span
	ParentPath    Span
	Filename      Span
	Stem          Span
	Extension     Span
}

// Decompose computes the offsets of all parts of the path in one go.
func (p Path) Decompose() Decomposition {
	rootName := p.classifyRootName()
	rootPathEnd := p.rootPathEnd()
	filenameStart := p.filenameStart()
	extensionStart := p.extensionStart()
	return Decomposition{
		RootName:      rootName,
		RootNameSpan:  Span{Start: 0, End: rootName.Length},
		RootDirectory: Span{Start: rootName.Length, End: rootPathEnd},
		RootPath:      Span{Start: 0, End: rootPathEnd},
		RelativePath:  Span{Start: rootPathEnd, End: len(p.value)},
		ParentPath:    Span{Start: 0, End: p.parentPathEnd()},
		Filename:      Span{Start: filenameStart, End: len(p.value)},
		Stem:          Span{Start: filenameStart, End: extensionStart},
		Extension:     Span{Start: extensionStart, End: len(p.value)},
	}
}
