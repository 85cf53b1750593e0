package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome is the terminal state of a single request.
type Outcome string

const (
	OutcomeIgnored           Outcome = "ignored"
	OutcomeRejectedNoArg     Outcome = "rejected_no_arg"
	OutcomeRejectedNotMember Outcome = "rejected_not_member"
	OutcomeRejectedNotFound  Outcome = "rejected_not_found"
	OutcomeStoreUnavailable  Outcome = "store_unavailable"
	OutcomeDeliveryFailed    Outcome = "delivery_failed"
	OutcomeDelivered         Outcome = "delivered"
)

var outcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "file_delivery_outcomes_total",
	Help: "Number of processed updates by terminal outcome.",
}, []string{"outcome"})
