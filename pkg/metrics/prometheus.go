// Package metrics provides Prometheus metrics for the skillr rating engine.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the rating metrics and the registry they live on.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	enabled        bool
	constLabels    map[string]string
	registry       *prometheus.Registry

	// Rating traffic
	ratingUpdates      *prometheus.CounterVec
	probabilityQueries prometheus.Counter
	updateLatency      prometheus.Histogram

	// Model behaviour
	informationGain    prometheus.Histogram
	outcomeProbability prometheus.Histogram
	scaleRatio         prometheus.Histogram
	validationFailures *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager = NewManager() //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Default returns the process-wide Manager.
func Default() *Manager { return globalManager }

// NewManager creates a metrics manager on its own registry unless
// WithPrometheusRegistry says otherwise.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "skillr",
		subsystem:      "engine",
		latencyBuckets: []float64{0.5, 1, 2, 5, 10, 25, 50, 100, 250, 1000},
		enabled:        true,
		constLabels:    map[string]string{},
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.constLabels)

	m.ratingUpdates = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "rating_updates_total",
			Help:        "Total number of rated matches by outcome (competitor 1's side)",
			ConstLabels: labels,
		},
		[]string{"outcome"},
	)

	m.probabilityQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "probability_queries_total",
		Help:        "Total number of win/draw/loss probability queries",
		ConstLabels: labels,
	})

	m.updateLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "update_latency_microseconds",
		Help:        "Time spent rating one match in microseconds",
		Buckets:     m.latencyBuckets,
		ConstLabels: labels,
	})

	m.informationGain = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "information_gain_nats",
		Help:        "Surprise of the realized outcome per competitor, -ln(p)",
		Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 0.75, 1, 1.5, 2, 3, 5, 8},
		ConstLabels: labels,
	})

	m.outcomeProbability = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "outcome_probability",
		Help:        "Probability the model gave the realized outcome, per competitor",
		Buckets:     prometheus.LinearBuckets(0.1, 0.1, 9),
		ConstLabels: labels,
	})

	m.scaleRatio = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "scale_ratio",
		Help:        "Updated scale divided by the previous scale, per competitor",
		Buckets:     []float64{0.5, 0.75, 0.9, 0.95, 0.99, 1, 1.01, 1.05},
		ConstLabels: labels,
	})

	m.validationFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "validation_failures_total",
			Help:        "Total number of rejected inputs or results by reason",
			ConstLabels: labels,
		},
		[]string{"reason"},
	)
}

// RecordRatingUpdate counts one rated match and its latency.
func (m *Manager) RecordRatingUpdate(outcome string, latencyMicros float64) {
	if !m.enabled {
		return
	}
	m.ratingUpdates.WithLabelValues(outcome).Inc()
	m.updateLatency.Observe(latencyMicros)
}

// RecordCompetitorStep records how one competitor's belief moved.
func (m *Manager) RecordCompetitorStep(probability, informationGain, scaleRatio float64) {
	if !m.enabled {
		return
	}
	m.outcomeProbability.Observe(probability)
	m.informationGain.Observe(informationGain)
	m.scaleRatio.Observe(scaleRatio)
}

// RecordProbabilityQuery counts one probability query.
func (m *Manager) RecordProbabilityQuery() {
	if !m.enabled {
		return
	}
	m.probabilityQueries.Inc()
}

// RecordValidationFailure counts a rejected input or result.
func (m *Manager) RecordValidationFailure(reason string) {
	if !m.enabled {
		return
	}
	m.validationFailures.WithLabelValues(reason).Inc()
}

// Registry returns the registry the metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Sample is one flattened metric value. Histograms yield a count and a sum
// sample.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot gathers the registry into samples sorted by name and labels.
func (m *Manager) Snapshot() ([]Sample, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGatherFailed, err)
	}

	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			pairs := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
			}
			labels := strings.Join(pairs, ",")

			switch {
			case metric.GetCounter() != nil:
				out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: metric.GetCounter().GetValue()})
			case metric.GetGauge() != nil:
				out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: metric.GetGauge().GetValue()})
			case metric.GetHistogram() != nil:
				h := metric.GetHistogram()
				out = append(out,
					Sample{Name: mf.GetName() + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: mf.GetName() + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}
