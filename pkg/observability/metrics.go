package observability

import (
	"fmt"
	"io"

	"github.com/aretw0/sllist/pkg/list"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Outcome label values.
const (
	OutcomeCreated   = "created"
	OutcomeLinked    = "linked"
	OutcomeRemoved   = "removed"
	OutcomeNoop      = "noop"
	OutcomeTraversed = "traversed"
)

// Metrics counts list operations and tracks the current length.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	length     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sllist_operations_total",
				Help: "Total number of list operations by outcome",
			},
			[]string{"op", "outcome"},
		),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sllist_length",
			Help: "Number of nodes after the last operation",
		}),
	}
	m.registry.MustRegister(m.operations, m.length)
	return m
}

// Registry returns the registry holding the list collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Operations returns the counter for an op/outcome pair.
func (m *Metrics) Operations(op list.Op, outcome string) prometheus.Counter {
	return m.operations.WithLabelValues(string(op), outcome)
}

// Length returns the length gauge.
func (m *Metrics) Length() prometheus.Gauge {
	return m.length
}

// Hooks returns callbacks that record every list event.
func (m *Metrics) Hooks() list.Hooks {
	return list.Hooks{
		OnCreate: m.observe,
		OnAppend: m.observe,
		OnDelete: m.observe,
		OnView:   m.observe,
	}
}

func (m *Metrics) observe(e list.Event) {
	m.Operations(e.Op, outcomeOf(e)).Inc()
	m.length.Set(float64(e.Len))
}

func outcomeOf(e list.Event) string {
	switch {
	case e.Op == list.OpCreate:
		return OutcomeCreated
	case e.Op == list.OpView:
		return OutcomeTraversed
	case e.Op == list.OpAppend:
		return OutcomeLinked
	case e.Changed:
		return OutcomeRemoved
	}
	return OutcomeNoop
}

// WriteText writes every gathered metric family in the text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry().Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
