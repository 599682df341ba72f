// Package metrics exposes Prometheus counters for the submission server.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/model"
)

const namespace = "qaspilab"

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	notifications *prometheus.CounterVec
}

// New creates a registry with process and Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Count of HTTP requests by route, method and status code.",
			},
			[]string{"route", "method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Count of idea notifications by notifier and result.",
			},
			[]string{"notifier", "result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.notifications,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware counts requests and observes their latency.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := routeLabel(r.URL.Path)
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// routeLabel keeps label cardinality bounded.
func routeLabel(path string) string {
	switch {
	case path == "/healthz", path == "/metrics", path == "/api/budgets", path == config.SubmitIdeaPath:
		return path
	case strings.HasPrefix(path, "/swagger/"):
		return "/swagger/"
	case strings.HasPrefix(path, "/api/galleries/"):
		return "/api/galleries/{name}"
	default:
		return "other"
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Notifier matches service.Notifier.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, idea *model.Idea) error
}

// InstrumentNotifier counts the outcome of every Notify call.
func (m *Metrics) InstrumentNotifier(n Notifier) Notifier {
	return &instrumentedNotifier{next: n, counter: m.notifications}
}

type instrumentedNotifier struct {
	next    Notifier
	counter *prometheus.CounterVec
}

func (n *instrumentedNotifier) Name() string {
	return n.next.Name()
}

func (n *instrumentedNotifier) Notify(ctx context.Context, idea *model.Idea) error {
	err := n.next.Notify(ctx, idea)
	result := "ok"
	if err != nil {
		result = "error"
	}
	n.counter.WithLabelValues(n.next.Name(), result).Inc()
	return err
}
