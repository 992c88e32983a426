package decomposer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aohorodnyk/mimeheader"
	bb_http "github.com/buildbarn/bb-path-grammar/pkg/http"
	"github.com/buildbarn/bb-path-grammar/pkg/util"
	"github.com/gorilla/mux"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.yaml.in/yaml/v3"
)

const (
	mediaTypeJSON = "application/json"
	mediaTypeYAML = "application/yaml"
	mediaTypeText = "text/plain"
)

var supportedMediaTypes = []string{mediaTypeJSON, mediaTypeYAML, mediaTypeText}

type httpHandler struct {
	decomposer  Decomposer
	errorLogger util.ErrorLogger
}

// RegisterHTTPHandlers registers the endpoints of the decomposition API
// against a router. Paths are provided through the "path" query
// parameter:
//
//	GET /api/v1/grammars/{grammar}/decompose?path=C:%5Cdog
//
// Failures that are not caused by the request, such as those yielding
// server errors, are also passed to errorLogger.
func RegisterHTTPHandlers(router *mux.Router, decomposer Decomposer, errorLogger util.ErrorLogger) {
	router.Handle("/api/v1/grammars/{grammar}/decompose", &httpHandler{
		decomposer:  decomposer,
		errorLogger: errorLogger,
	}).Methods(http.MethodGet)
}

func (hh *httpHandler) writeError(w http.ResponseWriter, err error) {
	s := status.Convert(err)
	code := bb_http.StatusCodeFromError(err)
	if code >= http.StatusInternalServerError {
		hh.errorLogger.Log(err)
	}
	w.Header().Set("Content-Type", mediaTypeText+"; charset=utf-8")
	w.WriteHeader(code)
	fmt.Fprintln(w, s.Message())
}

func (hh *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mediaType := mediaTypeJSON
	if accept := r.Header.Get("Accept"); accept != "" {
		var ok bool
		_, mediaType, ok = mimeheader.ParseAcceptHeader(accept).Negotiate(supportedMediaTypes, mediaTypeJSON)
		if !ok {
			hh.writeError(w, status.Errorf(codes.InvalidArgument, "Client does not accept media types %v", supportedMediaTypes))
			return
		}
	}

	query := r.URL.Query()
	if !query.Has("path") {
		hh.writeError(w, status.Error(codes.InvalidArgument, "Missing \"path\" query parameter"))
		return
	}
	// Continue traces that were started by the client.
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	report, err := hh.decomposer.Decompose(ctx, mux.Vars(r)["grammar"], query.Get("path"))
	if err != nil {
		hh.writeError(w, err)
		return
	}

	switch mediaType {
	case mediaTypeYAML:
		w.Header().Set("Content-Type", mediaTypeYAML)
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			hh.errorLogger.Log(util.StatusWrap(err, "Failed to write YAML report"))
			return
		}
		if err := encoder.Close(); err != nil {
			hh.errorLogger.Log(util.StatusWrap(err, "Failed to write YAML report"))
		}
	case mediaTypeText:
		w.Header().Set("Content-Type", mediaTypeText+"; charset=utf-8")
		writeTextReport(w, report)
	default:
		w.Header().Set("Content-Type", mediaTypeJSON)
		if err := json.NewEncoder(w).Encode(report); err != nil {
			hh.errorLogger.Log(util.StatusWrap(err, "Failed to write JSON report"))
		}
	}
}

func writeTextReport(w http.ResponseWriter, report *Report) {
	fields := []struct {
		name  string
		value string
	}{
		{"grammar", report.Grammar},
		{"path", report.Path},
		{"root_name_kind", report.RootNameKind},
		{"root_name", report.RootName},
		{"root_directory", report.RootDirectory},
		{"root_path", report.RootPath},
		{"relative_path", report.RelativePath},
		{"parent_path", report.ParentPath},
		{"filename", report.Filename},
		{"stem", report.Stem},
		{"extension", report.Extension},
	}
	for _, field := range fields {
		fmt.Fprintf(w, "%s: %q\n", field.name, field.value)
	}
	fmt.Fprintf(w, "is_absolute: %t\n", report.IsAbsolute)
	quoted := make([]string, 0, len(report.Components))
	for _, component := range report.Components {
		quoted = append(quoted, fmt.Sprintf("%q", component))
	}
	fmt.Fprintf(w, "components: [%s]\n", strings.Join(quoted, ", "))
}
