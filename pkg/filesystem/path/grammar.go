package path

import (
	"strings"
)

// Grammar describes the syntax of pathname strings on a single
// platform. It contains no logic. All of the parsing is performed by
// functions in this package that consult the fields of a Grammar.
//
// Instances should be treated as immutable once they are in use.
type Grammar struct {
	// Name of the grammar, used in logs, metrics and HTTP routes.
	Name string
	// Every byte in this string is a separator.
	Separators string
	// Separator that is emitted when joining components.
	PreferredSeparator byte
	// Whether "X:" is recognized as a root name.
	DriveLetters bool
	// Whether "\\server" and "\\?\" style prefixes are recognized
	// as root names.
	NetworkAndDeviceRoots bool
	// Whether a path needs both a root name and a root directory to
	// be absolute. If false, a root directory is sufficient.
	AbsoluteRequiresRootName bool
}

// UNIXGrammar parses pathname strings the way POSIX systems do. There
// is a single separator, and root names are never present.
var UNIXGrammar = &Grammar{
	Name:               "unix",
	Separators:         "/",
	PreferredSeparator: '/',
}

// WindowsGrammar parses pathname strings the way Win32 does. Both
// slashes and backslashes are separators, and drive letters, UNC paths
// and NT device namespace prefixes are recognized as root names.
var WindowsGrammar = &Grammar{
	Name:                     "windows",
	Separators:               "\\/",
	PreferredSeparator:       '\\',
	DriveLetters:             true,
	NetworkAndDeviceRoots:    true,
	AbsoluteRequiresRootName: true,
}

// IsSeparator returns true if c is one of the grammar's separators.
func (g *Grammar) IsSeparator(c byte) bool {
	if len(g.Separators) == 1 {
		return c == g.Separators[0]
	}
	return strings.IndexByte(g.Separators, c) >= 0
}

// indexSeparator returns the offset of the first separator in s, or -1.
func (g *Grammar) indexSeparator(s string) int {
	if len(g.Separators) == 1 {
		return strings.IndexByte(s, g.Separators[0])
	}
	return strings.IndexAny(s, g.Separators)
}

// lastIndexSeparator returns the offset of the last separator in s, or -1.
func (g *Grammar) lastIndexSeparator(s string) int {
	if len(g.Separators) == 1 {
		return strings.LastIndexByte(s, g.Separators[0])
	}
	return strings.LastIndexAny(s, g.Separators)
}

// skipSeparators returns the offset of the first non-separator at or
// after offset i.
func (g *Grammar) skipSeparators(s string, i int) int {
	for i < len(s) && g.IsSeparator(s[i]) {
		i++
	}
	return i
}

func (g *Grammar) String() string {
	return g.Name
}
