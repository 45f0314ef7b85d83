package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business metrics, incremented by the event collector
var (
	TradesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradesCreated,
			Help: HelpTextTradesCreated,
		},
		[]string{LabelHardcore},
	)

	TradesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesDeleted,
			Help: HelpTextTradesDeleted,
		},
	)

	OffersMade = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOffersMade,
			Help: HelpTextOffersMade,
		},
	)

	OffersWithdrawn = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOffersWithdrawn,
			Help: HelpTextOffersWithdrawn,
		},
	)

	WinnersChosen = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWinnersChosen,
			Help: HelpTextWinnersChosen,
		},
	)

	TradesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesCompleted,
			Help: HelpTextTradesCompleted,
		},
	)

	FeedbackLeft = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFeedbackLeft,
			Help: HelpTextFeedbackLeft,
		},
	)
)
