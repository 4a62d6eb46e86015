// SPDX-License-Identifier: MIT

// Package observability exports registry and circuit activity as Prometheus
// metrics.
//
// A Collector satisfies both registry.Observer and network.Recorder, so one
// value can be handed to registry.WithObserver and network.WithRecorder.
// Registries that share one Prometheus registry report their index gauges
// under separate "registry" labels via Scoped.
package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridtopo/network"
	"github.com/katalvlaran/gridtopo/registry"
)

var (
	_ registry.Observer = (*Collector)(nil)
	_ network.Recorder  = (*Collector)(nil)
)

// Metric names.
const (
	metricRegistrations = "gridtopo_bus_registrations_total"
	metricShadowed      = "gridtopo_bus_shadowed_total"
	metricResets        = "gridtopo_bus_registry_resets_total"
	metricIndices       = "gridtopo_bus_registry_indices"
	metricEntities      = "gridtopo_circuit_entities"
)

// DefaultScope labels the index gauge of an unscoped Collector.
const DefaultScope = "default"

// Collector bundles the gridtopo metrics. Counters are shared by every
// scope; Indices carries one series per scope.
type Collector struct {
	gatherer prometheus.Gatherer
	scope    string

	Registrations prometheus.Counter
	Shadowed      prometheus.Counter
	Resets        prometheus.Counter
	Indices       *prometheus.GaugeVec
	Entities      *prometheus.GaugeVec
}

// NewCollector registers the metrics against reg, defaulting to the global
// Prometheus registry when nil. Metrics already registered under the same
// name are reused, so several collectors can share one registry.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	registrations, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricRegistrations,
		Help: "Total number of bus indices handed out by the bus registry.",
	}), metricRegistrations)
	if err != nil {
		return nil, err
	}
	shadowed, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricShadowed,
		Help: "Total number of registrations that overwrote an existing bus name.",
	}), metricShadowed)
	if err != nil {
		return nil, err
	}
	resets, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricResets,
		Help: "Total number of bus registry resets.",
	}), metricResets)
	if err != nil {
		return nil, err
	}
	indices, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: metricIndices,
		Help: "Number of bus indices assigned since the last registry reset.",
	}, []string{"registry"}), metricIndices)
	if err != nil {
		return nil, err
	}
	entities, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: metricEntities,
		Help: "Current number of entities per circuit and equipment kind.",
	}, []string{"circuit", "kind"}), metricEntities)
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		scope:         DefaultScope,
		Registrations: registrations,
		Shadowed:      shadowed,
		Resets:        resets,
		Indices:       indices,
		Entities:      entities,
	}, nil
}

// Scoped returns a Collector sharing c's metrics whose index gauge is
// labelled registry=scope. Hand one scoped Collector to each Registry.
// Panics on an empty scope.
func (c *Collector) Scoped(scope string) *Collector {
	if scope == "" {
		panic("observability: Scoped(\"\")")
	}
	if c == nil {
		return nil
	}
	out := *c
	out.scope = scope

	return &out
}

// ObserveRegistration satisfies registry.Observer. The registry calls it
// under its lock, so index+1 is the registry's Next() at that point.
func (c *Collector) ObserveRegistration(index int, shadowed bool) {
	if c == nil {
		return
	}
	c.Registrations.Inc()
	if shadowed {
		c.Shadowed.Inc()
	}
	c.Indices.WithLabelValues(c.scope).Set(float64(index + 1))
}

// ObserveReset satisfies registry.Observer.
func (c *Collector) ObserveReset() {
	if c == nil {
		return
	}
	c.Resets.Inc()
	c.Indices.WithLabelValues(c.scope).Set(0)
}

// SetEntityCount satisfies network.Recorder.
func (c *Collector) SetEntityCount(circuit, kind string, n int) {
	if c == nil {
		return
	}
	c.Entities.WithLabelValues(circuit, kind).Set(float64(n))
}

// Handler exposes a ready-to-use /metrics handler for the collector's registry.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
