package waitlist

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultCreated   = "created"
	resultDuplicate = "duplicate"
	resultInvalid   = "invalid"
	resultError     = "error"

	resultSuccess = "success"
	resultFailure = "failure"
	resultSkipped = "skipped"
)

type Metrics struct {
	signups       *prometheus.CounterVec
	subscriptions *prometheus.CounterVec
}

// NewMetrics registers the waitlist counters on reg. A nil reg yields
// unregistered counters. Registering twice on the same registry reuses the
// existing collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	signups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lixi_waitlist_signups_total",
			Help: "Waitlist sign-up attempts by outcome.",
		},
		[]string{"result"},
	)
	subscriptions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lixi_mailing_list_subscriptions_total",
			Help: "Mailing list subscribe calls by outcome.",
		},
		[]string{"result"},
	)

	return &Metrics{
		signups:       register(reg, signups),
		subscriptions: register(reg, subscriptions),
	}
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if reg == nil {
		return c
	}

	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *Metrics) signup(result string) {
	if m == nil {
		return
	}
	m.signups.WithLabelValues(result).Inc()
}

func (m *Metrics) subscription(result string) {
	if m == nil {
		return
	}
	m.subscriptions.WithLabelValues(result).Inc()
}
