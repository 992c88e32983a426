package global

import (
	"context"

	"google.golang.org/grpc"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	coltracepb "go.opentelemetry.io/proto/otlp/collector/trace/v1"
	tracepb "go.opentelemetry.io/proto/otlp/trace/v1"
)

type grpcOTLPTraceClient struct {
	conn   *grpc.ClientConn
	client coltracepb.TraceServiceClient
}

// newGRPCOTLPTraceClient creates an OTLP trace client on top of an
// existing gRPC connection. The connection is closed when the exporter
// is shut down.
func newGRPCOTLPTraceClient(conn *grpc.ClientConn) otlptrace.Client {
	return &grpcOTLPTraceClient{
		conn:   conn,
		client: coltracepb.NewTraceServiceClient(conn),
	}
}

func (c *grpcOTLPTraceClient) Start(ctx context.Context) error {
	return nil
}

func (c *grpcOTLPTraceClient) Stop(ctx context.Context) error {
	return c.conn.Close()
}

func (c *grpcOTLPTraceClient) UploadTraces(ctx context.Context, protoSpans []*tracepb.ResourceSpans) error {
	if len(protoSpans) == 0 {
		return nil
	}
	_, err := c.client.Export(ctx, &coltracepb.ExportTraceServiceRequest{
		ResourceSpans: protoSpans,
	})
	return err
}
