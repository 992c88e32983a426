package decomposer_test

import (
	"context"
	"testing"

	"github.com/buildbarn/bb-path-grammar/internal/mock"
	"github.com/buildbarn/bb-path-grammar/pkg/decomposer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.uber.org/mock/gomock"
)

// getMetric obtains a metric from the default registry, returning nil
// if it hasn't been created yet.
func getMetric(t *testing.T, name string, labels map[string]string) *io_prometheus_client.Metric {
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if metricHasLabels(metric, labels) {
				return metric
			}
		}
	}
	return nil
}

func getCounterValue(t *testing.T, name string, labels map[string]string) float64 {
	return getMetric(t, name, labels).GetCounter().GetValue()
}

func getHistogramSampleCount(t *testing.T, name string, labels map[string]string) uint64 {
	return getMetric(t, name, labels).GetHistogram().GetSampleCount()
}

func metricHasLabels(metric *io_prometheus_client.Metric, labels map[string]string) bool {
	matched := 0
	for _, label := range metric.GetLabel() {
		if value, ok := labels[label.GetName()]; ok {
			if value != label.GetValue() {
				return false
			}
			matched++
		}
	}
	return matched == len(labels)
}

func TestMetricsDecomposer(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	baseDecomposer := mock.NewMockDecomposer(ctrl)
	d := decomposer.NewMetricsDecomposer(baseDecomposer, "TestMetricsDecomposer")

	decomposedLabels := map[string]string{
		"name":           "TestMetricsDecomposer",
		"grammar":        "windows",
		"root_name_kind": "drive",
		"absolute":       "true",
	}
	nameLabels := map[string]string{
		"name": "TestMetricsDecomposer",
	}

	t.Run("Success", func(t *testing.T) {
		report := &decomposer.Report{
			Grammar:      "windows",
			Path:         `C:\`,
			RootNameKind: "drive",
			IsAbsolute:   true,
		}
		baseDecomposer.EXPECT().Decompose(ctx, "windows", `C:\`).Return(report, nil).Times(2)

		before := getCounterValue(t, "buildbarn_path_grammar_decomposer_paths_decomposed_total", decomposedLabels)
		beforeSamples := getHistogramSampleCount(t, "buildbarn_path_grammar_decomposer_path_length_bytes", nameLabels)
		for i := 0; i < 2; i++ {
			got, err := d.Decompose(ctx, "windows", `C:\`)
			require.NoError(t, err)
			require.Same(t, report, got)
		}
		require.Equal(t, before+2, getCounterValue(t, "buildbarn_path_grammar_decomposer_paths_decomposed_total", decomposedLabels))
		require.Equal(t, beforeSamples+2, getHistogramSampleCount(t, "buildbarn_path_grammar_decomposer_path_length_bytes", nameLabels))
	})

	t.Run("Failure", func(t *testing.T) {
		baseDecomposer.EXPECT().Decompose(ctx, "plan9", "/dev/cons").
			Return(nil, status.Error(codes.NotFound, "Unknown grammar \"plan9\""))

		before := getCounterValue(t, "buildbarn_path_grammar_decomposer_failures_total", nameLabels)
		_, err := d.Decompose(ctx, "plan9", "/dev/cons")
		require.Equal(t, codes.NotFound, status.Code(err))
		require.Equal(t, before+1, getCounterValue(t, "buildbarn_path_grammar_decomposer_failures_total", nameLabels))
	})
}
