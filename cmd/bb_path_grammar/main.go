package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/buildbarn/bb-path-grammar/pkg/configuration"
	"github.com/buildbarn/bb-path-grammar/pkg/decomposer"
	"github.com/buildbarn/bb-path-grammar/pkg/filesystem/path"
	"github.com/buildbarn/bb-path-grammar/pkg/global"
	bb_http "github.com/buildbarn/bb-path-grammar/pkg/http"
	http_server "github.com/buildbarn/bb-path-grammar/pkg/http/server"
	"github.com/buildbarn/bb-path-grammar/pkg/program"
	"github.com/buildbarn/bb-path-grammar/pkg/util"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"go.opentelemetry.io/otel"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Decomposes pathname strings into their root name, root directory,
// relative path, parent path and filename, using either the POSIX or
// the Windows grammar. Paths listed in the configuration file are
// decomposed upon startup and written to stdout as JSON, one report per
// line. If HTTP listen addresses are configured, the same functionality
// is offered over HTTP until the program is terminated.

func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if len(os.Args) != 2 {
			return status.Error(codes.InvalidArgument, "Usage: bb_path_grammar bb_path_grammar.jsonnet")
		}
		applicationConfiguration, err := configuration.GetApplicationConfiguration(os.Args[1])
		if err != nil {
			return err
		}

		if err := global.ApplyConfiguration(applicationConfiguration.Global, dependenciesGroup); err != nil {
			return util.StatusWrap(err, "Failed to apply global configuration options")
		}

		grammars, err := path.NewGrammarsFromConfiguration(applicationConfiguration.Grammars)
		if err != nil {
			return util.StatusWrap(err, "Failed to create grammars")
		}
		d := decomposer.NewMetricsDecomposer(
			decomposer.NewTracingDecomposer(
				decomposer.NewGrammarTableDecomposer(grammars),
				otel.GetTracerProvider()),
			"bb_path_grammar")

		encoder := json.NewEncoder(os.Stdout)
		for _, request := range applicationConfiguration.Paths {
			report, err := d.Decompose(ctx, request.Grammar, request.Path)
			if err != nil {
				return util.StatusWrapf(err, "Failed to decompose path %#v", request.Path)
			}
			if err := encoder.Encode(report); err != nil {
				return util.StatusWrap(err, "Failed to write report")
			}
		}

		if listenAddresses := applicationConfiguration.HTTPListenAddresses; len(listenAddresses) > 0 {
			router := mux.NewRouter()
			util.RegisterAdministrativeHTTPEndpoints(router, prometheus.DefaultGatherer)
			decomposer.RegisterHTTPHandlers(
				router,
				d,
				util.NewLogErrorLogger(log.Default(), "Failed to serve decomposition request"))
			bb_http.NewServersAndServe(
				listenAddresses,
				http_server.NewMetricsHandler(router, "Decomposer"),
				siblingsGroup)
			log.Printf("Serving decomposition API on %v", listenAddresses)
		}
		return nil
	})
}
