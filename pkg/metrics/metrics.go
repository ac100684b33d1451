package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssistantQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_total",
			Help: "Total number of assistant queries by intent and response model tag",
		},
		[]string{"intent", "model"},
	)

	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_model_call_duration_seconds",
			Help:    "Duration of language model calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
		[]string{"outcome"},
	)

	ModelTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_model_tokens_total",
			Help: "Tokens reported by the language model",
		},
		[]string{"kind"},
	)

	MailDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_deliveries_total",
			Help: "Mail delivery attempts by transport and outcome",
		},
		[]string{"transport", "outcome"},
	)

	CalendarEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calendar_events_total",
			Help: "Calendar event creation attempts by outcome",
		},
		[]string{"outcome"},
	)
)
