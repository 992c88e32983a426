package global

import (
	"context"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	pb "github.com/buildbarn/bb-path-grammar/pkg/configuration"
	"github.com/buildbarn/bb-path-grammar/pkg/program"
	"github.com/buildbarn/bb-path-grammar/pkg/util"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// ApplyConfiguration applies configuration options to the running
// process. These options are global, in that they are not tied to any
// grammar or decomposer.
//
// If tracing is enabled, a routine is spawned in dependenciesGroup that
// flushes pending spans once all routines that depend on it have
// completed.
func ApplyConfiguration(configuration *pb.GlobalConfiguration, dependenciesGroup program.Group) error {
	if configuration == nil {
		return nil
	}

	// Logging.
	logWriters := append(make([]io.Writer, 0, len(configuration.LogPaths)+1), os.Stderr)
	for _, logPath := range configuration.LogPaths {
		w, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
		if err != nil {
			return util.StatusWrapf(err, "Failed to open log path %#v", logPath)
		}
		logWriters = append(logWriters, w)
	}
	log.SetOutput(io.MultiWriter(logWriters...))

	// Perform tracing using OpenTelemetry.
	if tracingConfiguration := configuration.Tracing; tracingConfiguration != nil {
		tracerProvider, err := NewTracerProviderFromConfiguration(tracingConfiguration)
		if err != nil {
			return util.StatusWrap(err, "Failed to create tracer provider")
		}
		otel.SetTracerProvider(tracerProvider)

		// Construct a propagator which supports both the context and
		// Zipkin B3 propagation standards.
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader)),
		))

		errorLogger := util.NewLogErrorLogger(log.Default(), "Failed to shut down tracer provider")
		dependenciesGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			<-ctx.Done()
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				errorLogger.Log(err)
			}
			return nil
		})
	}

	// Enable mutex profiling.
	runtime.SetMutexProfileFraction(configuration.MutexProfileFraction)
	return nil
}

// NewTracerProviderFromConfiguration creates an OpenTelemetry
// TracerProvider that samples and exports spans as described by a
// configuration file.
func NewTracerProviderFromConfiguration(configuration *pb.TracingConfiguration) (*sdktrace.TracerProvider, error) {
	var tracerProviderOptions []sdktrace.TracerProviderOption
	for i := range configuration.Backends {
		spanProcessor, err := newSpanProcessorFromConfiguration(&configuration.Backends[i])
		if err != nil {
			return nil, util.StatusWrapf(err, "Backend %d", i)
		}
		tracerProviderOptions = append(tracerProviderOptions, sdktrace.WithSpanProcessor(spanProcessor))
	}

	// Set resource attributes, so that this process can be
	// identified uniquely.
	resourceAttributes := make([]attribute.KeyValue, 0, len(configuration.ResourceAttributes))
	for key, value := range configuration.ResourceAttributes {
		resourceAttributes = append(resourceAttributes, attribute.String(key, value))
	}
	tracerProviderOptions = append(
		tracerProviderOptions,
		sdktrace.WithResource(resource.NewWithAttributes(semconv.SchemaURL, resourceAttributes...)))

	sampler, err := NewSamplerFromConfiguration(configuration.Sampler)
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to create sampler")
	}
	tracerProviderOptions = append(tracerProviderOptions, sdktrace.WithSampler(sampler))
	return sdktrace.NewTracerProvider(tracerProviderOptions...), nil
}

func newSpanProcessorFromConfiguration(configuration *pb.TracingBackendConfiguration) (sdktrace.SpanProcessor, error) {
	var batchSpanProcessorOptions []sdktrace.BatchSpanProcessorOption
	switch configuration.SpanProcessor {
	case "simple":
	case "batch":
		if batchTimeout := configuration.BatchTimeout; batchTimeout != "" {
			d, err := time.ParseDuration(batchTimeout)
			if err != nil {
				return nil, status.Errorf(codes.InvalidArgument, "Invalid batch span processor batch timeout: %s", err)
			}
			batchSpanProcessorOptions = append(batchSpanProcessorOptions, sdktrace.WithBatchTimeout(d))
		}
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown span processor %#v", configuration.SpanProcessor)
	}

	// Construct a SpanExporter.
	var spanExporter sdktrace.SpanExporter
	switch {
	case configuration.OTLPSpanExporter != nil && configuration.StderrSpanExporter != nil:
		return nil, status.Error(codes.InvalidArgument, "Tracing backend contains multiple span exporters")
	case configuration.OTLPSpanExporter != nil:
		// Spans are exported over a gRPC connection that does
		// not have tracing enabled. Tracing it would cause
		// exports to be traced recursively.
		address := configuration.OTLPSpanExporter.Address
		conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, util.StatusWrapf(err, "Failed to create OTLP gRPC client for %#v", address)
		}
		spanExporter, err = otlptrace.New(context.Background(), newGRPCOTLPTraceClient(conn))
		if err != nil {
			conn.Close()
			return nil, util.StatusWrap(err, "Failed to create OTLP span exporter")
		}
	case configuration.StderrSpanExporter != nil:
		spanExporter = NewStderrSpanExporter(log.Default())
	default:
		return nil, status.Error(codes.InvalidArgument, "Tracing backend does not contain a valid span exporter")
	}

	// Wrap it in a SpanProcessor.
	if configuration.SpanProcessor == "simple" {
		return sdktrace.NewSimpleSpanProcessor(spanExporter), nil
	}
	return sdktrace.NewBatchSpanProcessor(spanExporter, batchSpanProcessorOptions...), nil
}

// NewSamplerFromConfiguration creates a OpenTelemetry Sampler based on
// a configuration file.
func NewSamplerFromConfiguration(configuration *pb.SamplerConfiguration) (sdktrace.Sampler, error) {
	if configuration == nil {
		return nil, status.Error(codes.InvalidArgument, "No configuration provided")
	}
	switch {
	case configuration.Always != nil:
		return sdktrace.AlwaysSample(), nil
	case configuration.Never != nil:
		return sdktrace.NeverSample(), nil
	case configuration.TraceIDRatioBased != nil:
		return sdktrace.TraceIDRatioBased(*configuration.TraceIDRatioBased), nil
	case configuration.ParentBased != nil:
		noParent, err := NewSamplerFromConfiguration(configuration.ParentBased)
		if err != nil {
			return nil, util.StatusWrap(err, "No parent")
		}
		return sdktrace.ParentBased(noParent), nil
	default:
		return nil, status.Error(codes.InvalidArgument, "Unknown sampling policy")
	}
}
