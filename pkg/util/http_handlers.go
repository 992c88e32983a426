package util

import (
	"log"
	"net/http"
	// The pprof package only registers its endpoints against the
	// default mux. Load it so that requests can be forwarded there.
	_ "net/http/pprof"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAdministrativeHTTPEndpoints registers endpoints for health
// checking, metrics collection and profiling next to the decomposition
// API. Metrics are obtained from gatherer.
func RegisterAdministrativeHTTPEndpoints(router *mux.Router, gatherer prometheus.Gatherer) {
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
	router.HandleFunc("/-/healthy", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet, http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
}
