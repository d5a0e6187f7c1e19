package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus collectors for window activity on one server.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	containersOpened prometheus.Counter
	containersClosed prometheus.Counter
	containersOpen   prometheus.Gauge
	eventsTotal      *prometheus.CounterVec
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		containersOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "anvilgui_containers_opened_total",
			Help: "Total custom containers bound to players.",
		}),
		containersClosed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "anvilgui_containers_closed_total",
			Help: "Total custom containers released back to the player inventory.",
		}),
		containersOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "anvilgui_containers_open",
			Help: "Custom containers currently bound to players.",
		}),
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "anvilgui_inventory_events_total",
			Help: "Inventory events dispatched on the bus by kind.",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.containersOpened,
		m.containersClosed,
		m.containersOpen,
		m.eventsTotal,
	)
	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) opened() {
	if m == nil {
		return
	}
	m.containersOpened.Inc()
	m.containersOpen.Inc()
}

func (m *Metrics) closed() {
	if m == nil {
		return
	}
	m.containersClosed.Inc()
	m.containersOpen.Dec()
}

func (m *Metrics) event(kind string) {
	if m == nil {
		return
	}
	m.eventsTotal.WithLabelValues(kind).Inc()
}
