// Package metrics exposes navigation activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
)

// Collector records machine transitions on a private registry.
type Collector struct {
	registry      *prometheus.Registry
	transitions   *prometheus.CounterVec
	slideIndex    prometheus.Gauge
	sectionVisits *prometheus.CounterVec

	mu  sync.Mutex
	seq uint64 // newest transition reflected in the gauge
}

// New creates a collector with its metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "presenter_transitions_total",
				Help: "Navigation operations by name and whether they changed state",
			},
			[]string{"op", "changed"},
		),
		slideIndex: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "presenter_slide_index",
			Help: "Zero-based position of the current slide",
		}),
		sectionVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "presenter_section_visits_total",
				Help: "Times the presentation entered a section",
			},
			[]string{"section"},
		),
	}
	c.registry.MustRegister(c.transitions, c.slideIndex, c.sectionVisits)
	return c
}

// Observe is a navigation.Observer. Transitions already covered by the
// seeded view only count as operations.
func (c *Collector) Observe(t navigation.Transition) {
	c.transitions.WithLabelValues(string(t.Op), strconv.FormatBool(t.Changed)).Inc()

	c.mu.Lock()
	defer c.mu.Unlock()
	if t.Seq <= c.seq {
		return
	}
	c.seq = t.Seq
	c.slideIndex.Set(float64(t.After.SlideIndex))
	if t.After.SectionID != t.Before.SectionID {
		c.sectionVisits.WithLabelValues(string(t.After.SectionID)).Inc()
	}
}

// Attach subscribes to the machine and seeds the gauge from its current
// view.
func (c *Collector) Attach(m *navigation.Machine) (cancel func()) {
	cancel = m.Observe(c.Observe)

	view, seq := m.Snapshot()
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq >= c.seq {
		c.seq = seq
		c.slideIndex.Set(float64(view.SlideIndex))
		c.sectionVisits.WithLabelValues(string(view.SectionID)).Inc()
	}
	return cancel
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
