package models_test

import (
	"testing"

	"lumeno/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{models.OrderPending, models.OrderConfirmed, true},
		{models.OrderPending, models.OrderCancelled, true},
		{models.OrderPending, models.OrderShipped, false},
		{models.OrderPending, models.OrderDelivered, false},
		{models.OrderConfirmed, models.OrderShipped, true},
		{models.OrderConfirmed, models.OrderCancelled, true},
		{models.OrderConfirmed, models.OrderDelivered, false},
		{models.OrderShipped, models.OrderDelivered, true},
		{models.OrderShipped, models.OrderCancelled, false},
		{models.OrderDelivered, models.OrderConfirmed, false},
		{models.OrderDelivered, models.OrderPending, false},
		{models.OrderCancelled, models.OrderPending, false},
		{models.OrderCancelled, models.OrderConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, models.OrderPending.Valid())
	assert.True(t, models.OrderCancelled.Valid())
	assert.False(t, models.OrderStatus("processing").Valid())
	assert.False(t, models.OrderStatus("").Valid())
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, models.OrderDelivered.Terminal())
	assert.True(t, models.OrderCancelled.Terminal())
	assert.False(t, models.OrderPending.Terminal())
	assert.False(t, models.OrderShipped.Terminal())
	// Unknown statuses are not terminal, they are invalid.
	assert.False(t, models.OrderStatus("processing").Terminal())
}
