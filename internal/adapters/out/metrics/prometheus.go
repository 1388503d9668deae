package metrics

import (
	"giftexchange/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "giftexchange"

// Prometheus records draw activity in collectors registered on a Registerer.
type Prometheus struct {
	draws         *prometheus.CounterVec
	attempts      prometheus.Histogram
	notifications *prometheus.CounterVec
}

var _ ports.DrawMetrics = (*Prometheus)(nil)

// NewPrometheus creates and registers the collectors. A nil reg means
// prometheus.DefaultRegisterer. Registering twice on the same registry fails.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p := &Prometheus{
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws_total",
			Help:      "Engine runs by engine and outcome.",
		}, []string{"engine", "outcome"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assignment_attempts",
			Help:      "Attempts the recipient engine needed per draw.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Group notifications by status.",
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{p.draws, p.attempts, p.notifications} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) ObserveDraw(engine, outcome string) {
	p.draws.WithLabelValues(engine, outcome).Inc()
}

// ObserveAssignmentAttempts ignores zero, which means the engine never ran.
func (p *Prometheus) ObserveAssignmentAttempts(attempts int) {
	if attempts <= 0 {
		return
	}
	p.attempts.Observe(float64(attempts))
}

func (p *Prometheus) ObserveNotification(status ports.NotificationStatus) {
	p.notifications.WithLabelValues(string(status)).Inc()
}
