package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every weather CLI metric. It is separate from the default
// registry so textfile snapshots contain no Go runtime collectors.
var Registry = prometheus.NewRegistry()

var (
	RecordsLoaded = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_records_loaded_total",
			Help: "Total weather records decoded from input files",
		},
		[]string{"format"},
	)

	LoadFailures = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_load_failures_total",
			Help: "Total input files that could not be loaded",
		},
		[]string{"reason"},
	)

	ReportsRendered = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_reports_rendered_total",
			Help: "Total reports rendered, by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	LastRunTimestamp = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "weather_last_run_timestamp_seconds",
			Help: "Unix time of the last completed CLI run",
		},
	)
)

// WriteTextfile writes the current metric values to path in the Prometheus
// text exposition format (node_exporter textfile collector).
func WriteTextfile(path string) error {
	LastRunTimestamp.SetToCurrentTime()
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
