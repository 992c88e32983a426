package util_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/buildbarn/bb-path-grammar/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLogErrorLogger(t *testing.T) {
	var buffer bytes.Buffer
	errorLogger := util.NewLogErrorLogger(log.New(&buffer, "", 0), "Failed to shut down tracer provider")

	errorLogger.Log(status.Error(codes.Unavailable, "Connection refused"))
	errorLogger.Log(status.Error(codes.DeadlineExceeded, "Context deadline exceeded"))
	require.Equal(
		t,
		"Failed to shut down tracer provider: rpc error: code = Unavailable desc = Connection refused\n"+
			"Failed to shut down tracer provider: rpc error: code = DeadlineExceeded desc = Context deadline exceeded\n",
		buffer.String())
}
