package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCompleted    = "completed"
	outcomeRejected     = "rejected"
	outcomeHealthFailed = "health_failed"
)

var messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ingest_messages_total",
	Help: "Ingestion outcome per processed message.",
}, []string{"outcome"})
