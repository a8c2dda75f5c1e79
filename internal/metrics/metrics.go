package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	// Outbound calls to the currency service.
	ServiceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exchangeit_service_requests_total",
		Help: "Requests sent to the currency service",
	}, []string{"outcome"})

	ServiceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "exchangeit_service_request_duration_seconds",
		Help:    "Currency service round trip time",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	// Inbound API requests.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exchangeit_http_requests_total",
		Help: "HTTP API requests by route and status",
	}, []string{"route", "status"})
)

type Transport interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// InstrumentedTransport records count and latency of every call to next.
type InstrumentedTransport struct {
	next Transport
}

func NewInstrumentedTransport(next Transport) *InstrumentedTransport {
	return &InstrumentedTransport{next: next}
}

func (t *InstrumentedTransport) FetchText(ctx context.Context, url string) (string, error) {
	start := time.Now()

	body, err := t.next.FetchText(ctx, url)

	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	ServiceRequestsTotal.WithLabelValues(outcome).Inc()
	ServiceRequestDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return body, err
}

// Middleware counts API requests by chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}
