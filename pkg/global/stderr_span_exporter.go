package global

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type stderrSpanExporter struct {
	logger *log.Logger
}

// NewStderrSpanExporter creates a SpanExporter that writes a single
// line per span to a logger. This is noisy and only intended for basic
// debugging.
func NewStderrSpanExporter(logger *log.Logger) sdktrace.SpanExporter {
	return stderrSpanExporter{
		logger: logger,
	}
}

func (se stderrSpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		se.logger.Printf(
			"%s %s %s %s %s %s",
			span.StartTime().UTC().Format(time.RFC3339),
			span.EndTime().Sub(span.StartTime()).String(),
			span.Name(),
			span.Status().Code.String(),
			span.Status().Description,
			formatSpanAttributes(span))
	}
	return nil
}

func (stderrSpanExporter) Shutdown(ctx context.Context) error {
	return nil
}

func formatSpanAttributes(span sdktrace.ReadOnlySpan) string {
	var out strings.Builder
	out.WriteString("{")
	for i, attribute := range span.Attributes() {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(string(attribute.Key))
		out.WriteString("=")
		out.WriteString(fmt.Sprintf("%#v", attribute.Value.AsInterface()))
	}
	out.WriteString("}")
	return out.String()
}
