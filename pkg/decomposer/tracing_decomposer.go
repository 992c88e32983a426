package decomposer

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type tracingDecomposer struct {
	base   Decomposer
	tracer trace.Tracer
}

// NewTracingDecomposer creates a decorator for Decomposer that creates
// an OpenTelemetry span for every path that is decomposed.
func NewTracingDecomposer(base Decomposer, tracerProvider trace.TracerProvider) Decomposer {
	return &tracingDecomposer{
		base:   base,
		tracer: tracerProvider.Tracer("github.com/buildbarn/bb-path-grammar/pkg/decomposer"),
	}
}

func (d *tracingDecomposer) Decompose(ctx context.Context, grammarName, pathString string) (*Report, error) {
	ctx, span := d.tracer.Start(ctx, "Decomposer.Decompose", trace.WithAttributes(
		attribute.String("grammar", grammarName),
		attribute.Int("path_length", len(pathString)),
	))
	defer span.End()

	report, err := d.base.Decompose(ctx, grammarName, pathString)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.String("root_name_kind", report.RootNameKind),
		attribute.Bool("is_absolute", report.IsAbsolute),
		attribute.Int("components", len(report.Components)),
	)
	return report, nil
}
