package interactions

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var interactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "discord_interactions",
	Name:      "requests_total",
	Help:      "Interaction requests handled, by interaction kind and response status.",
}, []string{"kind", "status"})
