package path

import (
	"strconv"
)

// RootNameKind describes which kind of root name, if any, is present
// at the start of a pathname string.
type RootNameKind int

const (
	// RootNameKindNone indicates that the path has no root name.
	RootNameKindNone RootNameKind = iota
	// RootNameKindDrive indicates a drive letter, such as "C:".
	RootNameKindDrive
	// RootNameKindNetwork indicates a UNC server name, such as
	// "\\server".
	RootNameKindNetwork
	// RootNameKindDeviceNamespace indicates an NT device namespace
	// prefix, such as "\\?", "\\." or "\??".
	RootNameKindDeviceNamespace
)

var rootNameKindNames = [...]string{
	RootNameKindNone:            "none",
	RootNameKindDrive:           "drive",
	RootNameKindNetwork:         "network",
	RootNameKindDeviceNamespace: "device_namespace",
}

func (k RootNameKind) String() string {
	if k >= 0 && int(k) < len(rootNameKindNames) {
		return rootNameKindNames[k]
	}
	return "RootNameKind(" + strconv.Itoa(int(k)) + ")"
}

// RootName is the result of classifying the start of a pathname
// string. Length is the number of bytes that make up the root name.
// It is zero for RootNameKindNone.
type RootName struct {
	Kind   RootNameKind
	Length int
}

func isDrivePrefix(s string) bool {
	upperDriveLetter := s[0] &^ 0x20
	return upperDriveLetter >= 'A' && upperDriveLetter <= 'Z' && s[1] == ':'
}

// ClassifyRootName determines whether the pathname string starts with
// a root name. Rules are tried in order, and the first one to match
// wins:
//
//   - Strings shorter than two bytes never have a root name.
//   - A single ASCII letter followed by a colon is a drive letter.
//     Longer or shorter variants ("cc:", ":") are not.
//   - Root names other than drive letters all start with a separator.
//   - "\\?\", "\\.\" and "\??\", using any mix of separators, are
//     device namespace prefixes. The root name consists of the first
//     three bytes. The separator that follows them is the root
//     directory. A fifth byte that is a separator disqualifies it.
//   - Two separators followed by something other than a separator
//     start a UNC path. The root name extends up to the next
//     separator.
//
// Everything else, including strings starting with one or more than two
// separators, has no root name.
func ClassifyRootName(s string, g *Grammar) RootName {
	if len(s) < 2 {
		return RootName{Kind: RootNameKindNone}
	}

	if g.DriveLetters && isDrivePrefix(s) {
		return RootName{Kind: RootNameKindDrive, Length: 2}
	}

	// Colons that do not form a drive letter are ordinary
	// characters, as in "cc:dog" or "::".
	if !g.IsSeparator(s[0]) || !g.NetworkAndDeviceRoots {
		return RootName{Kind: RootNameKindNone}
	}

	// \\?\, \\.\ and \??\. The \\?\UNC\ prefix is intentionally
	// not handled separately. NT treats UNC as an ordinary device
	// owned by the multiple UNC provider.
	if len(s) >= 4 && g.IsSeparator(s[3]) && (len(s) == 4 || !g.IsSeparator(s[4])) &&
		((g.IsSeparator(s[1]) && (s[2] == '?' || s[2] == '.')) ||
			(s[1] == '?' && s[2] == '?')) {
		return RootName{Kind: RootNameKindDeviceNamespace, Length: 3}
	}

	// \\server.
	if len(s) >= 3 && g.IsSeparator(s[1]) && !g.IsSeparator(s[2]) {
		serverLen := g.indexSeparator(s[3:])
		if serverLen < 0 {
			return RootName{Kind: RootNameKindNetwork, Length: len(s)}
		}
		return RootName{Kind: RootNameKindNetwork, Length: 3 + serverLen}
	}

	return RootName{Kind: RootNameKindNone}
}

// ExtractRootDirectory returns the length of the root directory of a
// pathname string, given the offset at which its root name ends. The
// root directory is the maximal run of separators at that offset.
func ExtractRootDirectory(s string, afterRootName int, g *Grammar) int {
	return g.skipSeparators(s, afterRootName) - afterRootName
}
