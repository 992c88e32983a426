package util_test

import (
	"testing"

	"github.com/buildbarn/bb-path-grammar/pkg/testutil"
	"github.com/buildbarn/bb-path-grammar/pkg/util"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type exampleConfiguration struct {
	Name  string   `json:"name"`
	Paths []string `json:"paths"`
}

func TestUnmarshalConfigurationFromJsonnet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var configuration exampleConfiguration
		require.NoError(t, util.UnmarshalConfigurationFromJsonnet(
			"example.jsonnet",
			`{ name: std.extVar("NAME"), paths: ["C:" + "\\", "/cat/dog"] }`,
			[]string{"NAME=hello"},
			&configuration))
		require.Equal(t, exampleConfiguration{
			Name:  "hello",
			Paths: []string{"C:\\", "/cat/dog"},
		}, configuration)
	})

	t.Run("InvalidEnvironmentVariable", func(t *testing.T) {
		var configuration exampleConfiguration
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Invalid environment variable: \"NAME\""),
			util.UnmarshalConfigurationFromJsonnet("example.jsonnet", "{}", []string{"NAME"}, &configuration))
	})

	t.Run("UnknownField", func(t *testing.T) {
		var configuration exampleConfiguration
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Failed to unmarshal configuration: json: unknown field \"color\""),
			util.UnmarshalConfigurationFromJsonnet("example.jsonnet", `{ color: "red" }`, nil, &configuration))
	})

	t.Run("EvaluationFailure", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromJsonnet("example.jsonnet", `{ name: error "broken" }`, nil, &configuration)
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to evaluate configuration: "), err)
	})
}

func TestUnmarshalConfigurationFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/bb_path_grammar/paths.libsonnet", []byte(`["C:", "/cat/dog"]`), 0o666))
	require.NoError(t, afero.WriteFile(fs, "/etc/bb_path_grammar/config.jsonnet", []byte(`
		local paths = import 'paths.libsonnet';
		{ name: 'imported', paths: paths + (import '/etc/bb_path_grammar/paths.libsonnet') }
	`), 0o666))

	t.Run("Success", func(t *testing.T) {
		var configuration exampleConfiguration
		require.NoError(t, util.UnmarshalConfigurationFromFile(fs, "/etc/bb_path_grammar/config.jsonnet", &configuration))
		require.Equal(t, exampleConfiguration{
			Name:  "imported",
			Paths: []string{"C:", "/cat/dog", "C:", "/cat/dog"},
		}, configuration)
	})

	t.Run("NonexistentFile", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromFile(fs, "/etc/bb_path_grammar/nonexistent.jsonnet", &configuration)
		require.Error(t, err)
		require.Contains(t, status.Convert(err).Message(), "Failed to read file contents: ")
	})

	t.Run("NonexistentImport", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/etc/bb_path_grammar/broken.jsonnet", []byte(`import 'nonexistent.libsonnet'`), 0o666))
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromFile(fs, "/etc/bb_path_grammar/broken.jsonnet", &configuration)
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to evaluate configuration: "), err)
	})
}
