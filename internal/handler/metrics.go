package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supplier_orders",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of successfully processed order events",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supplier_orders",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed order event handling attempts",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supplier_orders",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of order events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supplier_orders",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

var (
	syncsTriggered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supplier_orders",
			Subsystem: "sync",
			Name:      "triggered_total",
			Help:      "Total number of explicitly triggered store syncs",
		},
	)

	syncsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supplier_orders",
			Subsystem: "sync",
			Name:      "failed_total",
			Help:      "Total number of store syncs that failed outright",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,

		syncsTriggered,
		syncsFailed,
	)
}
