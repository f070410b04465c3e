package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "srs_pipeline_runs_total",
		Help: "The total number of filter/smooth pipeline runs by outcome",
	}, []string{"outcome"})

	ChartBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "srs_chart_build_duration_seconds",
		Help:    "Duration of chart spec builds",
		Buckets: prometheus.DefBuckets,
	})

	CSVExports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "srs_csv_exports_total",
		Help: "The total number of CSV downloads served",
	})

	DatasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "srs_dataset_rows",
		Help: "Number of rating rows loaded at startup",
	})
)
