package decomposer

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	decomposerPrometheusMetrics sync.Once

	decomposerPathsDecomposedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "path_grammar",
			Name:      "decomposer_paths_decomposed_total",
			Help:      "Number of paths decomposed, by grammar and kind of root name.",
		},
		[]string{"name", "grammar", "root_name_kind", "absolute"})
	decomposerPathLengthBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "path_grammar",
			Name:      "decomposer_path_length_bytes",
			Help:      "Length of paths that were decomposed, in bytes.",
			Buckets:   append([]float64{0}, prometheus.ExponentialBuckets(1, 2, 13)...),
		},
		[]string{"name"})
	decomposerFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "path_grammar",
			Name:      "decomposer_failures_total",
			Help:      "Number of decomposition requests that failed, for example due to unknown grammars.",
		},
		[]string{"name"})
)

type metricsDecomposer struct {
	base                    Decomposer
	name                    string
	decomposerFailuresTotal prometheus.Counter

	decomposerPathLengthBytes prometheus.Observer
}

// NewMetricsDecomposer creates a decorator for Decomposer that counts
// the number of decomposed paths, partitioned by the kind of root name
// that was found.
func NewMetricsDecomposer(base Decomposer, name string) Decomposer {
	decomposerPrometheusMetrics.Do(func() {
		prometheus.MustRegister(decomposerPathsDecomposedTotal)
		prometheus.MustRegister(decomposerFailuresTotal)
		prometheus.MustRegister(decomposerPathLengthBytes)
	})

	return &metricsDecomposer{
		base:                      base,
		name:                      name,
		decomposerFailuresTotal:   decomposerFailuresTotal.WithLabelValues(name),
		decomposerPathLengthBytes: decomposerPathLengthBytes.WithLabelValues(name),
	}
}

func (d *metricsDecomposer) Decompose(ctx context.Context, grammarName, pathString string) (*Report, error) {
	report, err := d.base.Decompose(ctx, grammarName, pathString)
	if err != nil {
		d.decomposerFailuresTotal.Inc()
		return nil, err
	}
	absolute := "false"
	if report.IsAbsolute {
		absolute = "true"
	}
	decomposerPathsDecomposedTotal.WithLabelValues(d.name, report.Grammar, report.RootNameKind, absolute).Inc()
	d.decomposerPathLengthBytes.Observe(float64(len(pathString)))
	return report, nil
}
