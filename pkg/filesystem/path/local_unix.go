//go:build !windows

package path

// LocalGrammar is the grammar of pathname strings that are native to
// the locally running operating system.
var LocalGrammar = UNIXGrammar
