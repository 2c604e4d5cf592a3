package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ParcelsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profast_parcels_created_total",
		Help: "Total number of parcels successfully created.",
	})

	PaymentsConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profast_payments_confirmed_total",
		Help: "Total number of payments successfully confirmed.",
	})

	PaymentIntentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profast_payment_intents_created_total",
		Help: "Total number of payment intents created at the gateway.",
	})

	TrackingEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profast_tracking_events_total",
		Help: "Total number of tracking events recorded.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profast_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
