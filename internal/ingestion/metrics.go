package ingestion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingestedTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "basket_ingested_transactions_total",
		Help: "Transactions accepted by the ingestion API",
	}, []string{"source"})

	ingestedItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "basket_ingested_items_total",
		Help: "New (transaction, item) pairs written to storage",
	}, []string{"source"})

	ingestionRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "basket_ingestion_rejected_total",
		Help: "Ingestion requests rejected before reaching storage",
	}, []string{"reason"})
)
