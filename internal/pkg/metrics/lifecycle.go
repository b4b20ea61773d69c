package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const TransitionResultOK = "ok"

var LifecycleTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lifecycle_transitions_total",
		Help: "Total number of requested status transitions by result",
	},
	[]string{"entity", "from", "to", "result"},
)

type Transitions struct{}

func NewTransitions() *Transitions {
	return &Transitions{}
}

// ObserveTransition учитывает запрос перехода. result - "ok" либо код ошибки.
func (Transitions) ObserveTransition(entity, from, to, result string) {
	LifecycleTransitionsTotal.WithLabelValues(entity, from, to, result).Inc()
}
