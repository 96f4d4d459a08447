package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Loader
	RowsLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_rows_loaded_total",
			Help: "Rows bulk-inserted by the loader, per table",
		},
		[]string{"table"},
	)
	RowsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pulse_rows_rejected_total",
			Help: "Rows dropped because their state key is not in the reference set",
		},
	)
	FilesParsed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pulse_files_parsed_total",
			Help: "Pulse JSON files parsed successfully",
		},
	)
	LoadRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_load_runs_total",
			Help: "Loader invocations by final status",
		},
		[]string{"status"},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RowsLoaded)
	prometheus.MustRegister(RowsRejected)
	prometheus.MustRegister(FilesParsed)
	prometheus.MustRegister(LoadRunsTotal)
}
