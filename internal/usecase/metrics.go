package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "luxe_cart_mutations_total",
			Help: "Cart mutations by operation",
		},
		[]string{"op"},
	)

	ordersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "luxe_orders_placed_total",
			Help: "Simulated orders placed",
		},
	)

	assistantRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "luxe_assistant_requests_total",
			Help: "Assistant collaborator calls by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)
