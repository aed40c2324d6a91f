package live

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts apply activity. A nil *Metrics records nothing.
type Metrics struct {
	applies     *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
	constructs  *prometheus.CounterVec
}

// NewMetrics creates the live counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		applies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "live_apply_total",
				Help: "Objects applied, by apply source.",
			},
			[]string{"from"},
		),
		diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "live_diagnostics_total",
				Help: "Recovered apply problems, by kind.",
			},
			[]string{"kind"},
		),
		constructs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "live_construct_total",
				Help: "Objects constructed, by construction style.",
			},
			[]string{"style"},
		),
	}
	for _, c := range []prometheus.Collector{m.applies, m.diagnostics, m.constructs} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeApply(from ApplyFrom) {
	if m == nil {
		return
	}
	m.applies.WithLabelValues(from.Kind().String()).Inc()
}

func (m *Metrics) observeDiagnostic(kind DiagnosticKind) {
	if m == nil {
		return
	}
	m.diagnostics.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) observeConstruct(style string) {
	if m == nil {
		return
	}
	m.constructs.WithLabelValues(style).Inc()
}
