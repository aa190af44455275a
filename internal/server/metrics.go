package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lookupd",
		Name:      "http_requests_total",
		Help:      "The total number of HTTP requests served, by route and status code.",
	}, []string{"route", "code"})

	httpDurationHistogram = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lookupd",
		Name:      "http_request_duration_ms",
		Help:      "The latency of HTTP requests in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"route"})

	lookupResultsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lookupd",
		Name:      "lookup_results_total",
		Help:      "The total number of answered lookups, by membership.",
	}, []string{"membership"})
)

// routeLabel keeps metric cardinality bounded.
func routeLabel(path string) string {
	switch path {
	case "/lookup", "/healthz":
		return path
	}
	if _, ok := assets[path]; ok {
		return "asset"
	}
	return "other"
}
