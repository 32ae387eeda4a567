package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vibechef"

// Transport label values.
const (
	TransportWebSocket = "websocket"
	TransportGRPC      = "grpc"
)

type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rpcTotal        *prometheus.CounterVec
	watchers        *prometheus.GaugeVec
	snapshotsPushed *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		rpcTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "grpc",
				Name:      "requests_total",
				Help:      "Total number of gRPC calls by method and code",
			},
			[]string{"method", "code"},
		),
		watchers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "history",
				Name:      "watchers",
				Help:      "Number of open history subscriptions",
			},
			[]string{"transport"},
		),
		snapshotsPushed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "history",
				Name:      "snapshots_pushed_total",
				Help:      "Total number of history snapshots pushed to subscribers",
			},
			[]string{"transport"},
		),
	}
}

// ObserveHTTP records one finished HTTP request. route is the matched
// pattern, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRPC(method, code string) {
	m.rpcTotal.WithLabelValues(method, code).Inc()
}

// WatcherOpened counts a new history subscription. The returned function
// must be called once when it ends.
func (m *Metrics) WatcherOpened(transport string) func() {
	gauge := m.watchers.WithLabelValues(transport)
	gauge.Inc()
	return gauge.Dec
}

func (m *Metrics) SnapshotPushed(transport string) {
	m.snapshotsPushed.WithLabelValues(transport).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
