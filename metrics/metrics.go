// SPDX-License-Identifier: MIT

// Package metrics provides Prometheus instrumentation for an lvmat session.
//
// Metrics live in a private prometheus.Registry owned by the session, never
// the global default registry, so independent sessions (and parallel tests)
// do not collide. A session has no network listener; the collected values are
// written once at shutdown in the node_exporter textfile format.
//
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvmat"

// Outcome labels for CommandsTotal.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeUnknown = "unknown"
)

// Direction labels for CodecBytesTotal.
const (
	DirectionRead  = "read"
	DirectionWrite = "write"
)

// Metrics holds every collector of a session.
type Metrics struct {
	// Registry gathers all collectors below.
	Registry *prometheus.Registry

	// CommandsTotal counts dispatched lines by verb and outcome.
	// Labels: verb (create, add, ... or "unknown"), outcome (ok, error, unknown)
	CommandsTotal *prometheus.CounterVec

	// EvictionsTotal counts matrices released from registry slots.
	EvictionsTotal prometheus.Counter

	// ResidentMatrices tracks occupied registry slots.
	ResidentMatrices prometheus.Gauge

	// CodecBytesTotal counts bytes moved through the binary codec.
	// Labels: direction (read, write)
	CodecBytesTotal *prometheus.CounterVec
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Dispatched command lines by verb and outcome",
			},
			[]string{"verb", "outcome"},
		),
		EvictionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions_total",
			Help:      "Matrices released from registry slots",
		}),
		ResidentMatrices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "resident_matrices",
			Help:      "Occupied registry slots",
		}),
		CodecBytesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "bytes_total",
				Help:      "Bytes read or written in the binary matrix format",
			},
			[]string{"direction"},
		),
	}
	m.Registry.MustRegister(m.CommandsTotal, m.EvictionsTotal, m.ResidentMatrices, m.CodecBytesTotal)

	return m
}

// ObserveCommand records one dispatched line.
func (m *Metrics) ObserveCommand(verb, outcome string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(verb, outcome).Inc()
}

// ObserveEviction records one released slot.
func (m *Metrics) ObserveEviction() {
	if m == nil {
		return
	}
	m.EvictionsTotal.Inc()
}

// SetResident records the number of occupied slots.
func (m *Metrics) SetResident(n int) {
	if m == nil {
		return
	}
	m.ResidentMatrices.Set(float64(n))
}

// ObserveCodecBytes records n bytes moved in direction.
func (m *Metrics) ObserveCodecBytes(direction string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.CodecBytesTotal.WithLabelValues(direction).Add(float64(n))
}

// WriteTextfile writes the current values to path in the text exposition
// format, replacing the file atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
