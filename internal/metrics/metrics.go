package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
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
			Buckets: HTTPLatencyBuckets,
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

// Bot Metrics
var (
	CommandsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsHandled,
			Help: HelpTextCommandsHandled,
		},
		[]string{LabelCommand},
	)

	MessagesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMessagesProcessed,
			Help: HelpTextMessagesProcessed,
		},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	GiveawaysStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGiveawaysStarted,
			Help: HelpTextGiveawaysStarted,
		},
	)

	GiveawaysEnded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGiveawaysEnded,
			Help: HelpTextGiveawaysEnded,
		},
	)

	GiveawayRerolls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGiveawayRerolls,
			Help: HelpTextGiveawayRerolls,
		},
	)

	AwakeningPulls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAwakeningPulls,
			Help: HelpTextAwakeningPulls,
		},
		[]string{LabelPool},
	)

	StorageErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStorageErrors,
			Help: HelpTextStorageErrors,
		},
	)
)
