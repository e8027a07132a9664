// Package metrics exposes Prometheus instrumentation for copy actions and
// open page views.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "payment_info"

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	copies    *prometheus.CounterVec
	openViews prometheus.Gauge
	pageViews prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		copies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "copies_total",
				Help:      "Clipboard copy attempts by network and result.",
			},
			[]string{"network", "result"},
		),
		openViews: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_views",
			Help:      "Page views currently holding copy state.",
		}),
		pageViews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Rendered payment pages.",
		}),
	}

	for _, c := range []prometheus.Collector{m.copies, m.openViews, m.pageViews} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) CopyResult(network string, ok bool) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if !ok {
		result = ResultFailure
	}
	m.copies.WithLabelValues(network, result).Inc()
}

func (m *Metrics) ViewOpened() {
	if m == nil {
		return
	}
	m.openViews.Inc()
}

func (m *Metrics) ViewClosed() {
	if m == nil {
		return
	}
	m.openViews.Dec()
}

func (m *Metrics) PageRendered() {
	if m == nil {
		return
	}
	m.pageViews.Inc()
}
