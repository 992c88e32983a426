package http

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusClientClosedRequest is the non-standard status code that is
// used when the client went away before a response could be sent.
const statusClientClosedRequest = 499

// HTTP status codes corresponding to gRPC status codes, as documented
// in google/rpc/code.proto. Codes that are absent map to 500.
var httpStatusCodes = map[codes.Code]int{
	codes.OK:                 http.StatusOK,
	codes.Canceled:           statusClientClosedRequest,
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.Unauthenticated:    http.StatusUnauthorized,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.Aborted:            http.StatusConflict,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Unavailable:        http.StatusServiceUnavailable,
}

// StatusCodeFromGRPCCode returns the HTTP status code that corresponds
// to a gRPC status code.
func StatusCodeFromGRPCCode(code codes.Code) int {
	if statusCode, ok := httpStatusCodes[code]; ok {
		return statusCode
	}
	return http.StatusInternalServerError
}

// StatusCodeFromError returns the HTTP status code that corresponds to
// the gRPC status code of an error. Errors that do not carry a status
// are reported as 500.
func StatusCodeFromError(err error) int {
	return StatusCodeFromGRPCCode(status.Code(err))
}
