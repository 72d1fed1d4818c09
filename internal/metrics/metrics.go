// Package metrics exposes Prometheus instrumentation for the HTTP API and the
// donation store.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"donationtracker/internal/domain"
)

// MaxTypeLabels caps the distinct donation types exported as label values.
// Types first seen after the cap is reached are counted as OtherType.
const MaxTypeLabels = 16

// OtherType is the label value for donation types beyond MaxTypeLabels.
const OtherType = "other"

// StatsSource reports the current donation aggregates.
type StatsSource interface {
	Stats() domain.Stats
}

// Metrics bundles the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	donations       *prometheus.CounterVec
	persistFailures prometheus.Counter
	contacts        prometheus.Counter

	typesMu sync.Mutex
	types   map[string]struct{}
}

// New registers the service collectors. When source is non-nil the donation
// aggregates are exported as gauges read at scrape time.
func New(source StatsSource) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		types:    map[string]struct{}{domain.DefaultDonationType: {}},
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		donations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donations_received_total",
				Help: "Accepted donations by type",
			},
			[]string{"type"},
		),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "donations_persist_failures_total",
			Help: "Donation file writes that failed",
		}),
		contacts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Contact messages received",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.donations,
		m.persistFailures,
		m.contacts,
	)

	if source != nil {
		m.registry.MustRegister(
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "donations_amount_total",
				Help: "Sum of all donation amounts",
			}, func() float64 { return source.Stats().TotalAmount }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "donations_donors_total",
				Help: "Distinct donor emails",
			}, func() float64 { return float64(source.Stats().TotalDonors) }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "donations_goal_progress_percent",
				Help: "Progress toward the donation goal",
			}, func() float64 { return source.Stats().Progress }),
		)
	}

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records request counts and latencies labelled by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// DonationReceived counts an accepted donation.
func (m *Metrics) DonationReceived(donationType string) {
	if m == nil {
		return
	}
	m.donations.WithLabelValues(m.typeLabel(donationType)).Inc()
}

// typeLabel admits new types until MaxTypeLabels distinct values are known.
func (m *Metrics) typeLabel(donationType string) string {
	m.typesMu.Lock()
	defer m.typesMu.Unlock()
	if _, ok := m.types[donationType]; ok {
		return donationType
	}
	if len(m.types) >= MaxTypeLabels {
		return OtherType
	}
	m.types[donationType] = struct{}{}
	return donationType
}

// PersistFailed counts a failed write of the donations file.
func (m *Metrics) PersistFailed() {
	if m == nil {
		return
	}
	m.persistFailures.Inc()
}

// ContactReceived counts a contact form submission.
func (m *Metrics) ContactReceived() {
	if m == nil {
		return
	}
	m.contacts.Inc()
}
