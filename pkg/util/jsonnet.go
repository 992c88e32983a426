package util

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-jsonnet"
	"github.com/spf13/afero"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnmarshalConfigurationFromFile reads a Jsonnet file, evaluates it and
// unmarshals the output into a Go struct. Fields that are not declared
// by the struct cause unmarshaling to fail. Files that are imported by
// the configuration are loaded from the same filesystem, relative to
// the file importing them.
func UnmarshalConfigurationFromFile(fs afero.Fs, path string, configuration any) error {
	// Read configuration file from disk or from stdin.
	var jsonnetInput []byte
	var err error
	if path == "-" {
		jsonnetInput, err = io.ReadAll(os.Stdin)
	} else {
		jsonnetInput, err = afero.ReadFile(fs, path)
	}
	if err != nil {
		return StatusWrapf(err, "Failed to read file contents")
	}

	vm := jsonnet.MakeVM()
	vm.Importer(&filesystemImporter{
		fs:    fs,
		cache: map[string]jsonnet.Contents{},
	})
	return evaluateConfiguration(vm, path, string(jsonnetInput), os.Environ(), configuration)
}

// UnmarshalConfigurationFromJsonnet evaluates a Jsonnet snippet and
// unmarshals the output into a Go struct. Environment variables of the
// form "KEY=value" are made available through std.extVar().
func UnmarshalConfigurationFromJsonnet(filename, snippet string, environment []string, configuration any) error {
	return evaluateConfiguration(jsonnet.MakeVM(), filename, snippet, environment, configuration)
}

func evaluateConfiguration(vm *jsonnet.VM, filename, snippet string, environment []string, configuration any) error {
	for _, env := range environment {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			return status.Errorf(codes.InvalidArgument, "Invalid environment variable: %#v", env)
		}
		vm.ExtVar(parts[0], parts[1])
	}

	jsonnetOutput, err := vm.EvaluateAnonymousSnippet(filename, snippet)
	if err != nil {
		return StatusWrap(status.Error(codes.InvalidArgument, err.Error()), "Failed to evaluate configuration")
	}

	decoder := json.NewDecoder(bytes.NewBufferString(jsonnetOutput))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(configuration); err != nil {
		return StatusWrap(status.Error(codes.InvalidArgument, err.Error()), "Failed to unmarshal configuration")
	}
	return nil
}

// filesystemImporter resolves Jsonnet imports against an afero.Fs.
// Jsonnet requires that repeated imports of the same file yield
// identical contents, which is why they are cached.
type filesystemImporter struct {
	fs    afero.Fs
	cache map[string]jsonnet.Contents
}

func (i *filesystemImporter) Import(importedFrom, importedPath string) (jsonnet.Contents, string, error) {
	foundAt := importedPath
	if !filepath.IsAbs(foundAt) {
		foundAt = filepath.Join(filepath.Dir(importedFrom), importedPath)
	}
	if contents, ok := i.cache[foundAt]; ok {
		return contents, foundAt, nil
	}
	data, err := afero.ReadFile(i.fs, foundAt)
	if err != nil {
		return jsonnet.Contents{}, "", err
	}
	contents := jsonnet.MakeContents(string(data))
	i.cache[foundAt] = contents
	return contents, foundAt, nil
}
