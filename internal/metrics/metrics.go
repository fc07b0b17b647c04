// Package metrics exposes prometheus counters for decoding, storage and HTTP traffic.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/persistence/middleware"
	"github.com/afuentesan/awpak-builder/pkg/ports"
)

const namespace = "awpak"

// Metrics groups the collectors of one process. Each instance owns its registry.
type Metrics struct {
	Registry *prometheus.Registry

	decodes       *prometheus.CounterVec
	decodeEvents  *prometheus.CounterVec
	storeOps      *prometheus.CounterVec
	storeDuration *prometheus.HistogramVec
	httpRequests  *prometheus.CounterVec
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		decodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graph_decodes_total",
				Help:      "Graph documents decoded, by result.",
			},
			[]string{"result"},
		),
		decodeEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decode_events_total",
				Help:      "Non-fatal decode events (fallbacks, dropped enums, legacy tags).",
			},
			[]string{"kind", "family"},
		),
		storeOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_operations_total",
				Help:      "Graph store operations, by backend, operation and result.",
			},
			[]string{"backend", "op", "result"},
		),
		storeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "store_operation_duration_seconds",
				Help:      "Duration of graph store operations.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"backend", "op"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests served, by status code and method.",
			},
			[]string{"code", "method"},
		),
	}
	m.Registry.MustRegister(
		m.decodes,
		m.decodeEvents,
		m.storeOps,
		m.storeDuration,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observer returns a codec observer counting non-fatal decode events.
func (m *Metrics) Observer() func(codec.Event) {
	return func(ev codec.Event) {
		m.decodeEvents.WithLabelValues(string(ev.Kind), ev.Family).Inc()
	}
}

// ObserveDecode records the outcome of decoding one graph document.
func (m *Metrics) ObserveDecode(err error) {
	m.decodes.WithLabelValues(result(err)).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Instrument counts requests served by next.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(m.httpRequests, next)
}

// StoreMiddleware records every operation of the wrapped store under backend.
func (m *Metrics) StoreMiddleware(backend string) middleware.Middleware {
	return func(next ports.GraphStore) ports.GraphStore {
		return &instrumentedStore{next: next, backend: backend, m: m}
	}
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrGraphNotFound):
		return "not_found"
	default:
		return "error"
	}
}

type instrumentedStore struct {
	next    ports.GraphStore
	backend string
	m       *Metrics
}

func (s *instrumentedStore) observe(op string, start time.Time, err error) {
	s.m.storeOps.WithLabelValues(s.backend, op, result(err)).Inc()
	s.m.storeDuration.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
}

func (s *instrumentedStore) Save(ctx context.Context, name string, g *domain.Graph) error {
	start := time.Now()
	err := s.next.Save(ctx, name, g)
	s.observe("save", start, err)
	return err
}

func (s *instrumentedStore) Load(ctx context.Context, name string) (*domain.Graph, error) {
	start := time.Now()
	g, err := s.next.Load(ctx, name)
	s.observe("load", start, err)
	return g, err
}

func (s *instrumentedStore) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := s.next.Delete(ctx, name)
	s.observe("delete", start, err)
	return err
}

func (s *instrumentedStore) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := s.next.List(ctx)
	s.observe("list", start, err)
	return names, err
}
