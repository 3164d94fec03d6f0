package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"svw.info/megakolmio/internal/ports"
)

var (
	searchNodes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "megakolmio",
		Subsystem: "solver",
		Name:      "nodes_total",
		Help:      "Board states visited by the search",
	})

	searchPruned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "megakolmio",
		Subsystem: "solver",
		Name:      "pruned_total",
		Help:      "Partial boards rejected by the consistency check",
	})

	searchSolutions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "megakolmio",
		Subsystem: "solver",
		Name:      "solutions_total",
		Help:      "Complete matching boards found",
	})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "megakolmio",
		Subsystem: "solver",
		Name:      "search_duration_seconds",
		Help:      "Wall time of one search",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
	})
)

func observe(st ports.Stats) {
	searchNodes.Add(float64(st.Nodes))
	searchPruned.Add(float64(st.Pruned))
	searchSolutions.Add(float64(st.Solutions))
	searchDuration.Observe(st.Duration.Seconds())
}
