package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics usa um registry próprio para que os testes não disputem o global.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	BookingsCreated  *prometheus.CounterVec
	BookingsRejected *prometheus.CounterVec
	BookingsDeleted  prometheus.Counter
	StoreOperations  *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings appended to the agenda.",
		}, []string{"tipo"}),
		BookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_rejected_total",
			Help: "Booking attempts refused by the daily rules.",
		}, []string{"reason"}),
		BookingsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookings_deleted_total",
			Help: "Agenda rows removed by an admin.",
		}),
		StoreOperations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "store_operation_seconds",
			Help:    "Latency of table store calls.",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"table", "op", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.BookingsCreated,
		m.BookingsRejected,
		m.BookingsDeleted,
		m.StoreOperations,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveStore satisfaz tablestore.Observer.
func (m *Metrics) ObserveStore(table, op string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.StoreOperations.WithLabelValues(table, op, status).Observe(d.Seconds())
}

func (m *Metrics) BookingCreated(tipo string) {
	m.BookingsCreated.WithLabelValues(tipo).Inc()
}

func (m *Metrics) BookingRejected(reason string) {
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) BookingsRemoved(n int) {
	m.BookingsDeleted.Add(float64(n))
}
