package path_test

import (
	"slices"
	"testing"

	"github.com/buildbarn/bb-path-grammar/pkg/filesystem/path"
	"github.com/stretchr/testify/require"
)

func collectComponents(p path.Path) []string {
	components := []string{}
	for component := range p.Components() {
		components = append(components, component.String())
	}
	return components
}

func collectComponentsBackward(p path.Path) []string {
	components := []string{}
	for component := range p.ComponentsBackward() {
		components = append(components, component.String())
	}
	return components
}

func TestSpan(t *testing.T) {
	span := path.Span{Start: 4, End: 7}
	require.Equal(t, 3, span.Len())
	require.False(t, span.IsEmpty())
	require.Equal(t, "dog", span.Slice("cat/dog/elk"))

	empty := path.Span{Start: 5, End: 5}
	require.Equal(t, 0, empty.Len())
	require.True(t, empty.IsEmpty())
	require.Equal(t, "", empty.Slice("cat/dog"))
}

func TestTokenize(t *testing.T) {
	collect := func(s string, grammar *path.Grammar) []path.Element {
		elements := []path.Element{}
		for element := range path.Tokenize(s, grammar) {
			elements = append(elements, element)
		}
		return elements
	}

	t.Run("Empty", func(t *testing.T) {
		require.Empty(t, collect("", path.UNIXGrammar))
	})

	t.Run("Single", func(t *testing.T) {
		require.Equal(t, []path.Element{
			{Span: path.Span{Start: 0, End: 3}},
		}, collect("cat", path.UNIXGrammar))
	})

	t.Run("CollapsedSeparators", func(t *testing.T) {
		require.Equal(t, []path.Element{
			{Span: path.Span{Start: 0, End: 3}, TrailingSeparator: true},
			{Span: path.Span{Start: 5, End: 8}},
		}, collect("cat//dog", path.UNIXGrammar))
	})

	t.Run("TrailingSeparator", func(t *testing.T) {
		require.Equal(t, []path.Element{
			{Span: path.Span{Start: 0, End: 3}, TrailingSeparator: true},
			{Span: path.Span{Start: 5, End: 8}, TrailingSeparator: true},
			{Span: path.Span{Start: 9, End: 9}},
		}, collect(`cat\/dog\`, path.WindowsGrammar))
	})

	t.Run("BackslashIsOrdinaryOnUNIX", func(t *testing.T) {
		require.Equal(t, []path.Element{
			{Span: path.Span{Start: 0, End: 7}},
		}, collect(`cat\dog`, path.UNIXGrammar))
	})

	t.Run("EarlyTermination", func(t *testing.T) {
		var elements []path.Element
		for element := range path.Tokenize("a/b/c", path.UNIXGrammar) {
			elements = append(elements, element)
			if len(elements) == 2 {
				break
			}
		}
		require.Equal(t, []path.Element{
			{Span: path.Span{Start: 0, End: 1}, TrailingSeparator: true},
			{Span: path.Span{Start: 2, End: 3}, TrailingSeparator: true},
		}, elements)
	})

	t.Run("Restartable", func(t *testing.T) {
		seq := path.Tokenize("a/b/", path.UNIXGrammar)
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		require.Len(t, first, 3)
		require.Equal(t, first, second)
	})
}

func TestComponents(t *testing.T) {
	for _, v := range []struct {
		grammar    *path.Grammar
		input      string
		components []string
	}{
		{path.UNIXGrammar, "", []string{}},
		{path.UNIXGrammar, "/", []string{"/"}},
		{path.UNIXGrammar, "///", []string{"///"}},
		{path.UNIXGrammar, "cat", []string{"cat"}},
		{path.UNIXGrammar, "cat/", []string{"cat", ""}},
		{path.UNIXGrammar, "cat//dog//", []string{"cat", "dog", ""}},
		{path.UNIXGrammar, "/cat/dog/elk", []string{"/", "cat", "dog", "elk"}},
		{path.UNIXGrammar, "//cat/./..", []string{"//", "cat", ".", ".."}},
		{path.UNIXGrammar, `c:\dog`, []string{`c:\dog`}},
		{path.WindowsGrammar, "c:", []string{"c:"}},
		{path.WindowsGrammar, `c:\`, []string{`c:\`}},
		{path.WindowsGrammar, `c:dog\cat`, []string{"c:", "dog", "cat"}},
		{path.WindowsGrammar, `c:\dog\cat`, []string{`c:\`, "dog", "cat"}},
		{path.WindowsGrammar, "cc:dog", []string{"cc:dog"}},
		{path.WindowsGrammar, `\\server`, []string{`\\server`}},
		{path.WindowsGrammar, `\\server\share\`, []string{`\\server\`, "share", ""}},
		{path.WindowsGrammar, `\\?\UNC\server`, []string{`\\?\`, "UNC", "server"}},
		{path.WindowsGrammar, `\\\\dog/\cat`, []string{`\\\\`, "dog", "cat"}},
	} {
		t.Run(v.grammar.Name+"/"+v.input, func(t *testing.T) {
			p := path.NewPath(v.input, v.grammar)
			require.Equal(t, v.components, collectComponents(p))

			backward := slices.Clone(v.components)
			slices.Reverse(backward)
			require.Equal(t, backward, collectComponentsBackward(p))
		})
	}
}

func TestComponentIterator(t *testing.T) {
	p := path.NewWindowsPath(`c:\dog\\cat\`)

	t.Run("Forward", func(t *testing.T) {
		it := p.Begin()
		require.True(t, it.IsBegin())
		require.Equal(t, `c:\`, it.Value().String())
		require.Equal(t, path.Span{Start: 0, End: 3}, it.Span())

		it = it.Next()
		require.False(t, it.IsBegin())
		require.Equal(t, "dog", it.Value().String())
		require.Equal(t, path.Span{Start: 3, End: 6}, it.Span())

		it = it.Next()
		require.Equal(t, "cat", it.Value().String())
		require.Equal(t, path.Span{Start: 8, End: 11}, it.Span())

		it = it.Next()
		require.False(t, it.IsEnd())
		require.Equal(t, "", it.Value().String())
		require.Equal(t, path.Span{Start: 12, End: 12}, it.Span())

		it = it.Next()
		require.True(t, it.IsEnd())
		require.True(t, it.Equal(p.End()))
		require.Equal(t, "", it.Value().String())

		// Advancing past the end is a no-op.
		require.True(t, it.Next().Equal(p.End()))
	})

	t.Run("Backward", func(t *testing.T) {
		it := p.End().Prev()
		require.Equal(t, "", it.Value().String())
		it = it.Prev()
		require.Equal(t, "cat", it.Value().String())
		it = it.Prev()
		require.Equal(t, "dog", it.Value().String())
		it = it.Prev()
		require.Equal(t, `c:\`, it.Value().String())
		require.True(t, it.Equal(p.Begin()))

		// Moving before the start is a no-op.
		require.True(t, it.Prev().Equal(p.Begin()))
	})

	t.Run("Interleaved", func(t *testing.T) {
		it := p.Begin().Next().Next()
		require.Equal(t, "cat", it.Value().String())
		require.Equal(t, "dog", it.Prev().Value().String())
		require.True(t, it.Prev().Next().Equal(it))
		require.True(t, it.Next().Prev().Equal(it))
	})

	t.Run("ValueSemantics", func(t *testing.T) {
		it := p.Begin()
		it.Next()
		require.True(t, it.Equal(p.Begin()))
	})

	t.Run("DifferentPaths", func(t *testing.T) {
		require.False(t, p.Begin().Equal(path.NewUNIXPath(p.String()).Begin()))
	})

	t.Run("EmptyPath", func(t *testing.T) {
		empty := path.NewUNIXPath("")
		require.True(t, empty.Begin().Equal(empty.End()))
		require.True(t, empty.Begin().IsBegin())
		require.True(t, empty.Begin().IsEnd())
		require.True(t, empty.End().Prev().IsEnd())
	})

	t.Run("RootOnly", func(t *testing.T) {
		root := path.NewWindowsPath(`\\server\`)
		it := root.Begin()
		require.Equal(t, `\\server\`, it.Value().String())
		require.True(t, it.Next().IsEnd())
		require.True(t, root.End().Prev().Equal(root.Begin()))
	})
}

func TestJoinComponents(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		for _, input := range []string{
			"", "/", "cat", "cat/", "/cat/dog/elk", "/cat/dog/elk/", "./..",
		} {
			p := path.NewUNIXPath(input)
			require.Equal(t, input, path.JoinComponents(p.Components(), path.UNIXGrammar).String())
		}
		for _, input := range []string{
			"c:", `c:\`, "c:dog", `c:dog\cat`, `c:\dog\cat\`, `\\server\share`,
			`\\?\UNC\server\share`, `\dog`, `dog\`,
			`x\c:\y`, `\dog\c:\cat`, `c:\x\d:`, `c:x\server`, `cat\c:\`,
		} {
			p := path.NewWindowsPath(input)
			require.Equal(t, input, path.JoinComponents(p.Components(), path.WindowsGrammar).String())
		}
	})

	t.Run("InteriorDriveLetters", func(t *testing.T) {
		// Only the leading component may be a root path. Drive
		// letters further down are ordinary components.
		p := path.NewWindowsPath(`x\c:\y`)
		require.Equal(t, []string{"x", "c:", "y"}, collectComponents(p))
		joined := path.JoinComponents(p.Components(), path.WindowsGrammar)
		require.Equal(t, `x\c:\y`, joined.String())
		require.Equal(t, path.RootNameKindNone, joined.RootNameKind())
		require.Equal(t, "y", joined.Filename().String())
	})

	t.Run("PreferredSeparator", func(t *testing.T) {
		p := path.NewWindowsPath("C:/dog//cat/")
		require.Equal(t, `C:/dog\cat\`, path.JoinComponents(p.Components(), path.WindowsGrammar).String())
	})
}

func TestCompareComponents(t *testing.T) {
	for _, v := range []struct {
		grammar  *path.Grammar
		a        string
		b        string
		expected int
	}{
		{path.UNIXGrammar, "", "", 0},
		{path.UNIXGrammar, "a/b", "a/b", 0},
		{path.UNIXGrammar, "a//b", "a/b", 0},
		{path.UNIXGrammar, "//a", "/a", 0},
		{path.UNIXGrammar, "/a", "a", 1},
		{path.UNIXGrammar, "a", "/a", -1},
		{path.UNIXGrammar, "a/b", "a/c", -1},
		{path.UNIXGrammar, "a", "a/b", -1},
		{path.UNIXGrammar, "a/", "a", 1},
		{path.UNIXGrammar, "a/", "a/b", -1},
		{path.WindowsGrammar, `a\b`, "a/b", 0},
		{path.WindowsGrammar, "c:a", "d:a", -1},
		{path.WindowsGrammar, `c:\a`, "c:a", 1},
		{path.WindowsGrammar, "C:a", "c:a", -1},
		{path.WindowsGrammar, `\\server\share`, `//server/share`, 1},
	} {
		t.Run(v.grammar.Name+"/"+v.a+"/"+v.b, func(t *testing.T) {
			a, b := path.NewPath(v.a, v.grammar), path.NewPath(v.b, v.grammar)
			require.Equal(t, v.expected, a.CompareComponents(b))
			require.Equal(t, -v.expected, b.CompareComponents(a))
		})
	}
}
