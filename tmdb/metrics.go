package tmdb

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the request collectors registered by WithMetrics
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of TMDB API requests by API version, method and status code.",
		}, []string{"version", "method", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "Duration of TMDB API requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"version"}),
	}
}

// meteredTransport records request counts and latency. Transport failures are
// counted with code "error".
type meteredTransport struct {
	base    http.RoundTripper
	metrics *metrics
}

func (t *meteredTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	version := apiVersion(req.URL.Path)
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	t.metrics.duration.WithLabelValues(version).Observe(time.Since(start).Seconds())
	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	t.metrics.requests.WithLabelValues(version, req.Method, code).Inc()

	return resp, err
}

// apiVersion extracts the leading version segment ("3" or "4") of a request path
func apiVersion(path string) string {
	seg, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	switch seg {
	case "3", "4":
		return seg
	default:
		return "unknown"
	}
}
