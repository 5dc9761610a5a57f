package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts codec traffic at the API boundary. A nil registerer skips
// registration, which tests use to avoid default-registry collisions.
type Metrics struct {
	decksEncoded    prometheus.Counter
	decksImported   prometheus.Counter
	importsRejected *prometheus.CounterVec
	cardsNotFound   prometheus.Counter
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	const namespace = "kcgdeck"

	m := &Metrics{
		decksEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decks_encoded_total",
			Help:      "Number of decks encoded to a deck code",
		}),
		decksImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decks_imported_total",
			Help:      "Number of deck codes successfully imported",
		}),
		importsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imports_rejected_total",
			Help:      "Number of deck code imports rejected, by reason",
		}, []string{"reason"}),
		cardsNotFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_cards_not_found_total",
			Help:      "Number of imported card ids missing from the catalog",
		}),
	}

	if registerer != nil {
		registerer.MustRegister(
			m.decksEncoded,
			m.decksImported,
			m.importsRejected,
			m.cardsNotFound,
		)
	}
	return m
}
