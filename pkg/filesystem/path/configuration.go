package path

import (
	"strings"

	pb "github.com/buildbarn/bb-path-grammar/pkg/configuration"
	"github.com/buildbarn/bb-path-grammar/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewGrammarFromConfiguration returns a grammar that is described by a
// configuration message. Builtin grammars are returned as is, while
// custom grammars are validated and named by the name argument.
func NewGrammarFromConfiguration(name string, configuration *pb.GrammarConfiguration) (*Grammar, error) {
	if configuration == nil {
		return nil, status.Error(codes.InvalidArgument, "No grammar configuration provided")
	}
	if configuration.Builtin != "" && configuration.Custom != nil {
		return nil, status.Error(codes.InvalidArgument, "Builtin and custom grammars are mutually exclusive")
	}
	if configuration.Builtin != "" {
		switch configuration.Builtin {
		case "unix":
			return UNIXGrammar, nil
		case "windows":
			return WindowsGrammar, nil
		case "local":
			return LocalGrammar, nil
		default:
			return nil, status.Errorf(codes.InvalidArgument, "Unknown builtin grammar %#v", configuration.Builtin)
		}
	}

	custom := configuration.Custom
	if custom == nil {
		return nil, status.Error(codes.InvalidArgument, "Either a builtin or custom grammar must be provided")
	}
	if custom.Separators == "" {
		return nil, status.Error(codes.InvalidArgument, "Custom grammar has no separators")
	}
	preferredSeparator := custom.Separators[0]
	if custom.PreferredSeparator != "" {
		if len(custom.PreferredSeparator) != 1 {
			return nil, status.Errorf(codes.InvalidArgument, "Preferred separator %#v is not a single character", custom.PreferredSeparator)
		}
		preferredSeparator = custom.PreferredSeparator[0]
		if strings.IndexByte(custom.Separators, preferredSeparator) < 0 {
			return nil, status.Errorf(codes.InvalidArgument, "Preferred separator %#v is not one of the separators %#v", custom.PreferredSeparator, custom.Separators)
		}
	}
	return &Grammar{
		Name:                     name,
		Separators:               custom.Separators,
		PreferredSeparator:       preferredSeparator,
		DriveLetters:             custom.DriveLetters,
		NetworkAndDeviceRoots:    custom.NetworkAndDeviceRoots,
		AbsoluteRequiresRootName: custom.AbsoluteRequiresRootName,
	}, nil
}

// NewGrammarsFromConfiguration creates a set of grammars, keyed by
// name. The builtin grammars are always present, but may be overridden.
func NewGrammarsFromConfiguration(configurations map[string]*pb.GrammarConfiguration) (map[string]*Grammar, error) {
	grammars := map[string]*Grammar{
		UNIXGrammar.Name:    UNIXGrammar,
		WindowsGrammar.Name: WindowsGrammar,
		"local":             LocalGrammar,
	}
	for name, configuration := range configurations {
		grammar, err := NewGrammarFromConfiguration(name, configuration)
		if err != nil {
			return nil, util.StatusWrapf(err, "Grammar %#v", name)
		}
		grammars[name] = grammar
	}
	return grammars, nil
}
