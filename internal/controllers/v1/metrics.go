package v1

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ShoppingListGenerations counts shopping list generation runs by their outcome.
//
// The outcome is the status of the generated list or the reason it could not be generated.
var ShoppingListGenerations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shopping_list_generations_total",
		Help: "How many shopping list generations were processed, partitioned by outcome.",
	},
	[]string{"outcome"},
)

const (
	outcomeNoPlan      = "no_plan"
	outcomeNotEligible = "not_eligible"
	outcomeError       = "error"
)
