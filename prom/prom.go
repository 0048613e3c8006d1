// Package prom exports cache stats as Prometheus metrics.
package prom

import (
	"context"
	"sync"

	"github.com/bool64/stats"
	"github.com/prometheus/client_golang/prometheus"
)

var _ stats.Tracker = &Tracker{}

// Tracker implements stats.Tracker and exports Prometheus counters/gauges.
//
// Metric vectors are created lazily on first use, label names are taken from
// the first call for a given metric name. Safe for concurrent use.
type Tracker struct {
	reg         prometheus.Registerer
	ns, sub     string
	constLabels prometheus.Labels

	mu       sync.Mutex
	counters map[string]*prometheus.CounterVec
	gauges   map[string]*prometheus.GaugeVec
}

// NewTracker constructs a Prometheus stats tracker.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func NewTracker(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Tracker {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &Tracker{
		reg:         reg,
		ns:          ns,
		sub:         sub,
		constLabels: constLabels,
		counters:    make(map[string]*prometheus.CounterVec),
		gauges:      make(map[string]*prometheus.GaugeVec),
	}
}

// Add increments a counter.
func (t *Tracker) Add(_ context.Context, name string, increment float64, labelsAndValues ...string) {
	names, values := splitLabels(labelsAndValues)

	t.counter(name, names).WithLabelValues(values...).Add(increment)
}

// Set sets a gauge to an absolute value.
func (t *Tracker) Set(_ context.Context, name string, absolute float64, labelsAndValues ...string) {
	names, values := splitLabels(labelsAndValues)

	t.gauge(name, names).WithLabelValues(values...).Set(absolute)
}

func (t *Tracker) counter(name string, labelNames []string) *prometheus.CounterVec {
	t.mu.Lock()
	defer t.mu.Unlock()

	if vec, ok := t.counters[name]; ok {
		return vec
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   t.ns,
		Subsystem:   t.sub,
		Name:        name,
		Help:        name,
		ConstLabels: t.constLabels,
	}, labelNames)

	t.counters[name] = t.register(vec).(*prometheus.CounterVec)

	return t.counters[name]
}

func (t *Tracker) gauge(name string, labelNames []string) *prometheus.GaugeVec {
	t.mu.Lock()
	defer t.mu.Unlock()

	if vec, ok := t.gauges[name]; ok {
		return vec
	}

	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   t.ns,
		Subsystem:   t.sub,
		Name:        name,
		Help:        name,
		ConstLabels: t.constLabels,
	}, labelNames)

	t.gauges[name] = t.register(vec).(*prometheus.GaugeVec)

	return t.gauges[name]
}

func (t *Tracker) register(c prometheus.Collector) prometheus.Collector {
	err := t.reg.Register(c)
	if err == nil {
		return c
	}

	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		return are.ExistingCollector
	}

	panic(err)
}

func splitLabels(labelsAndValues []string) (names, values []string) {
	for i := 0; i+1 < len(labelsAndValues); i += 2 {
		names = append(names, labelsAndValues[i])
		values = append(values, labelsAndValues[i+1])
	}

	return names, values
}
