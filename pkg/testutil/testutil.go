package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	spb "google.golang.org/genproto/googleapis/rpc/status"
)

// RequireEqualProto asserts that the two passed protocol buffer
// messages are equal.
//
// Because maps in protocol buffers aren't serialized deterministically,
// this function falls back to doing a string comparison upon failure.
func RequireEqualProto(t *testing.T, want, got proto.Message) {
	t.Helper()
	if !proto.Equal(want, got) {
		wantStr := mustMarshalToString(t, want)
		gotStr := mustMarshalToString(t, got)
		if wantStr != gotStr {
			t.Fatalf("Not equal:\nWant:\n\n%s\n\nGot:\n\n%s", wantStr, gotStr)
		}
	}
}

// RequireEqualStatus asserts that two gRPC statuses are equal.
func RequireEqualStatus(t *testing.T, want, got error) {
	t.Helper()
	RequireEqualProto(t, status.Convert(want).Proto(), status.Convert(got).Proto())
}

// RequirePrefixedStatus asserts that two gRPC statuses are the same,
// except that the message of got may have trailing characters.
func RequirePrefixedStatus(t *testing.T, want, got error) {
	t.Helper()
	wantProto := status.Convert(want).Proto()
	gotProto := status.Convert(got).Proto()
	require.Condition(t, func() bool { return strings.HasPrefix(gotProto.GetMessage(), wantProto.GetMessage()) }, "Want message of status\n%v\nto have prefix\n%v", mustMarshalToString(t, gotProto), wantProto.GetMessage())
	gotProto.Message = wantProto.GetMessage()
	RequireEqualProto(t, wantProto, gotProto)
}

type eqStatusMatcher struct {
	want *spb.Status
}

// EqStatus is a gomock matcher for errors that convert to a gRPC status
// that is equal to the one provided.
func EqStatus(want error) gomock.Matcher {
	return eqStatusMatcher{want: status.Convert(want).Proto()}
}

func (m eqStatusMatcher) Matches(got any) bool {
	gotError, ok := got.(error)
	return ok && proto.Equal(m.want, status.Convert(gotError).Proto())
}

func (m eqStatusMatcher) String() string {
	return fmt.Sprintf("is status equal to %v", status.FromProto(m.want).Err())
}

func mustMarshalToString(t *testing.T, message proto.Message) string {
	s, err := protojson.MarshalOptions{
		Multiline: true,
	}.Marshal(message)
	if err != nil {
		t.Fatal(err)
	}
	return string(s)
}
