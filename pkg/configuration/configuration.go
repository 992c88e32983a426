package configuration

import (
	"github.com/buildbarn/bb-path-grammar/pkg/util"
	"github.com/spf13/afero"
)

// GrammarConfiguration selects a path grammar. Exactly one of the
// fields must be set.
type GrammarConfiguration struct {
	// One of "unix", "windows" or "local".
	Builtin string `json:"builtin,omitempty"`
	// A custom grammar table.
	Custom *CustomGrammarConfiguration `json:"custom,omitempty"`
}

// CustomGrammarConfiguration describes a grammar table that is not
// built in.
type CustomGrammarConfiguration struct {
	// Every character in this string is a separator.
	Separators string `json:"separators"`
	// Separator used when joining components. Must be a single
	// character contained in Separators. Defaults to the first
	// separator.
	PreferredSeparator string `json:"preferredSeparator,omitempty"`
	DriveLetters       bool   `json:"driveLetters,omitempty"`
	// Whether "\\server" and "\\?\" style prefixes are root names.
	NetworkAndDeviceRoots    bool `json:"networkAndDeviceRoots,omitempty"`
	AbsoluteRequiresRootName bool `json:"absoluteRequiresRootName,omitempty"`
}

// DecompositionRequest names a path that needs to be decomposed upon
// startup, and the grammar with which it is interpreted.
type DecompositionRequest struct {
	Grammar string `json:"grammar"`
	Path    string `json:"path"`
}

// ApplicationConfiguration is the top level configuration of
// bb_path_grammar.
type ApplicationConfiguration struct {
	// Grammars that can be referenced by name. The builtin "unix",
	// "windows" and "local" grammars are available unless
	// overridden.
	Grammars map[string]*GrammarConfiguration `json:"grammars,omitempty"`
	// Paths that are decomposed and written to stdout.
	Paths []DecompositionRequest `json:"paths,omitempty"`
	// Addresses on which the HTTP API is served. If empty, the
	// program terminates after decomposing Paths.
	HTTPListenAddresses []string `json:"httpListenAddresses,omitempty"`
	// Options that apply to the process as a whole.
	Global *GlobalConfiguration `json:"global,omitempty"`
}

// GlobalConfiguration contains options for logging, tracing and
// profiling.
type GlobalConfiguration struct {
	// Files to which log messages are appended, in addition to
	// stderr.
	LogPaths []string `json:"logPaths,omitempty"`
	// Passed to runtime.SetMutexProfileFraction().
	MutexProfileFraction int `json:"mutexProfileFraction,omitempty"`
	// If set, spans are exported using OpenTelemetry.
	Tracing *TracingConfiguration `json:"tracing,omitempty"`
}

// TracingConfiguration describes how OpenTelemetry spans are sampled
// and exported.
type TracingConfiguration struct {
	Backends []TracingBackendConfiguration `json:"backends,omitempty"`
	// Attributes attached to every span, such as "service.name".
	ResourceAttributes map[string]string     `json:"resourceAttributes,omitempty"`
	Sampler            *SamplerConfiguration `json:"sampler,omitempty"`
}

// TracingBackendConfiguration pairs a span exporter with the span
// processor that feeds it. Exactly one span exporter must be set.
type TracingBackendConfiguration struct {
	OTLPSpanExporter *OTLPSpanExporterConfiguration `json:"otlpSpanExporter,omitempty"`
	// Writes spans to the log. Only intended for debugging.
	StderrSpanExporter *struct{} `json:"stderrSpanExporter,omitempty"`
	// Either "simple" or "batch".
	SpanProcessor string `json:"spanProcessor,omitempty"`
	// Maximum delay before a batch is exported, in a format
	// accepted by time.ParseDuration(). Only applies to "batch".
	BatchTimeout string `json:"batchTimeout,omitempty"`
}

// OTLPSpanExporterConfiguration contains the address of an
// OpenTelemetry collector that accepts OTLP over gRPC.
type OTLPSpanExporterConfiguration struct {
	Address string `json:"address"`
}

// SamplerConfiguration selects a sampling policy. Exactly one of the
// fields must be set.
type SamplerConfiguration struct {
	Always            *struct{}             `json:"always,omitempty"`
	Never             *struct{}             `json:"never,omitempty"`
	TraceIDRatioBased *float64              `json:"traceIdRatioBased,omitempty"`
	ParentBased       *SamplerConfiguration `json:"parentBased,omitempty"`
}

// GetApplicationConfiguration reads the configuration of
// bb_path_grammar from a Jsonnet file on the local filesystem.
func GetApplicationConfiguration(path string) (*ApplicationConfiguration, error) {
	return GetApplicationConfigurationFromFilesystem(afero.NewOsFs(), path)
}

// GetApplicationConfigurationFromFilesystem reads the configuration of
// bb_path_grammar from a Jsonnet file stored on an arbitrary
// filesystem.
func GetApplicationConfigurationFromFilesystem(fs afero.Fs, path string) (*ApplicationConfiguration, error) {
	var configuration ApplicationConfiguration
	if err := util.UnmarshalConfigurationFromFile(fs, path, &configuration); err != nil {
		return nil, util.StatusWrapf(err, "Failed to read configuration from %s", path)
	}
	return &configuration, nil
}
