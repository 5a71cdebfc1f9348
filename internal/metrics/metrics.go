// Package metrics exposes Prometheus collectors for the mock API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mocksocial_requests_total",
		Help: "Requests served, by route and status code",
	}, []string{"route", "status"})
	ProxyDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mocksocial_proxy_duration_seconds",
		Help:    "Upstream proxy round-trip duration",
		Buckets: prometheus.DefBuckets,
	})
	FixtureReloads = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mocksocial_fixture_reloads_total",
		Help: "Successful fixture reloads",
	})
)

func init() {
	prometheus.MustRegister(Requests, ProxyDuration, FixtureReloads)
}

// Handler returns the /metrics scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
