package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)

	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed.",
		},
	)

	checkoutSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_submissions_total",
			Help: "Order submissions by outcome.",
		},
		[]string{"result"},
	)

	catalogLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_lookups_total",
			Help: "Catalog cache lookups by outcome (hit, miss, error).",
		},
		[]string{"result"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func RecordCheckout(result string) {
	checkoutSubmissions.WithLabelValues(result).Inc()
}

func RecordCatalogLookup(result string) {
	catalogLookups.WithLabelValues(result).Inc()
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware must wrap the ServeMux directly: the mux records the matched
// route on the request, which is used as the path label.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		defer func() {
			path := r.Pattern
			if path == "" {
				path = "unmatched"
			}

			httpRequestsTotal.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, path).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
			httpRequestsInFlight.Dec()
		}()

		next.ServeHTTP(rw, r)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
