package decomposer

import (
	"context"

	"github.com/buildbarn/bb-path-grammar/pkg/filesystem/path"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Report contains all parts of a decomposed path.
type Report struct {
	Grammar       string   `json:"grammar" yaml:"grammar"`
	Path          string   `json:"path" yaml:"path"`
	RootNameKind  string   `json:"rootNameKind" yaml:"rootNameKind"`
	RootName      string   `json:"rootName" yaml:"rootName"`
	RootDirectory string   `json:"rootDirectory" yaml:"rootDirectory"`
	RootPath      string   `json:"rootPath" yaml:"rootPath"`
	RelativePath  string   `json:"relativePath" yaml:"relativePath"`
	ParentPath    string   `json:"parentPath" yaml:"parentPath"`
	Filename      string   `json:"filename" yaml:"filename"`
	Stem          string   `json:"stem" yaml:"stem"`
	Extension     string   `json:"extension" yaml:"extension"`
	IsAbsolute    bool     `json:"isAbsolute" yaml:"isAbsolute"`
	Components    []string `json:"components" yaml:"components"`
}

// NewReport decomposes a path into a Report.
func NewReport(p path.Path) *Report {
	components := []string{}
	for component := range p.Components() {
		components = append(components, component.String())
	}
	return &Report{
		Grammar:       p.Grammar().Name,
		Path:          p.String(),
		RootNameKind:  p.RootNameKind().String(),
		RootName:      p.RootName().String(),
		RootDirectory: p.RootDirectory().String(),
		RootPath:      p.RootPath().String(),
		RelativePath:  p.RelativePath().String(),
		ParentPath:    p.ParentPath().String(),
		Filename:      p.Filename().String(),
		Stem:          p.Stem().String(),
		Extension:     p.Extension().String(),
		IsAbsolute:    p.IsAbsolute(),
		Components:    components,
	}
}

// Decomposer of pathname strings, where the grammar used to interpret
// them is referenced by name.
type Decomposer interface {
	Decompose(ctx context.Context, grammarName, pathString string) (*Report, error)
}

type grammarTableDecomposer struct {
	grammars map[string]*path.Grammar
}

// NewGrammarTableDecomposer creates a Decomposer that resolves grammar
// names using a fixed table.
func NewGrammarTableDecomposer(grammars map[string]*path.Grammar) Decomposer {
	return &grammarTableDecomposer{
		grammars: grammars,
	}
}

func (d *grammarTableDecomposer) Decompose(ctx context.Context, grammarName, pathString string) (*Report, error) {
	grammar, ok := d.grammars[grammarName]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "Unknown grammar %#v", grammarName)
	}
	return NewReport(path.NewPath(pathString, grammar)), nil
}
