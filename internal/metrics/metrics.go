package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "golf_coach_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "golf_coach_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		},
		[]string{"method", "endpoint"},
	)

	RoutingDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "golf_coach_routing_decisions_total",
			Help: "Routing decisions by destination and parse source",
		},
		[]string{"destination", "source"},
	)

	Answers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "golf_coach_answers_total",
			Help: "Answered questions by destination and outcome",
		},
		[]string{"destination", "outcome"},
	)

	GatewayLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "golf_coach_gateway_latency_seconds",
			Help:    "Model gateway latency in seconds by call stage",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"stage"},
	)
)

// Answer outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Gateway call stages.
const (
	StageRoute  = "route"
	StageAnswer = "answer"
)
