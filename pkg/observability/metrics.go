package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of one process.
type Metrics struct {
	registry *prometheus.Registry

	StepVisits   *prometheus.CounterVec
	Validations  *prometheus.CounterVec
	MenuRequests *prometheus.HistogramVec
}

// NewMetrics registers the orderbot collectors on reg.
// A nil reg gets a fresh registry, which keeps tests isolated.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: reg,
		StepVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orderbot_step_visits_total",
				Help: "Total number of step executions",
			},
			[]string{"step_id"},
		),
		Validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orderbot_validations_total",
				Help: "Collected values checked, by field and outcome",
			},
			[]string{"field", "outcome"},
		),
		MenuRequests: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "orderbot_menu_request_duration_seconds",
				Help:    "Duration of menu fetches",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.StepVisits, m.Validations, m.MenuRequests)
	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that feed the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
			m.StepVisits.WithLabelValues(string(e.StepID)).Inc()
		},
		OnValidation: func(ctx context.Context, e *domain.ValidationEvent) {
			m.Validations.WithLabelValues(string(e.Field), outcome(e.Accepted)).Inc()
		},
	}
}

// InstrumentMenu wraps svc so every ListItems call is timed.
func (m *Metrics) InstrumentMenu(svc ports.MenuService) ports.MenuService {
	return &instrumentedMenu{next: svc, observe: m.MenuRequests}
}

type instrumentedMenu struct {
	next    ports.MenuService
	observe *prometheus.HistogramVec
}

func (i *instrumentedMenu) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	start := time.Now()
	items, err := i.next.ListItems(ctx)
	i.observe.WithLabelValues(outcome(err == nil)).Observe(time.Since(start).Seconds())
	return items, err
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
