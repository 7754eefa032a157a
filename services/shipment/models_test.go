package shipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionForwardOnly(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending, StatusPickedUp))
	assert.NoError(t, CanTransition(StatusPending, StatusInTransit))
	assert.NoError(t, CanTransition(StatusPickedUp, StatusOutForDelivery))
	assert.NoError(t, CanTransition(StatusOutForDelivery, StatusDelivered))

	assert.ErrorIs(t, CanTransition(StatusInTransit, StatusPickedUp), ErrBackwardTransition)
	assert.ErrorIs(t, CanTransition(StatusDelivered, StatusInTransit), ErrShipmentTerminal)
	assert.ErrorIs(t, CanTransition(StatusPending, StatusPending), ErrBackwardTransition)
}

func TestCanTransitionCancellation(t *testing.T) {
	// Cancellable from any non-terminal state.
	for _, from := range []string{StatusPending, StatusPickedUp, StatusInTransit, StatusOutForDelivery} {
		assert.NoError(t, CanTransition(from, StatusCancelled), "from %s", from)
	}

	assert.ErrorIs(t, CanTransition(StatusDelivered, StatusCancelled), ErrShipmentTerminal)
	assert.ErrorIs(t, CanTransition(StatusCancelled, StatusPickedUp), ErrShipmentTerminal)
	assert.ErrorIs(t, CanTransition(StatusCancelled, StatusCancelled), ErrShipmentTerminal)
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.ErrorIs(t, CanTransition(StatusPending, "LOST"), ErrInvalidStatus)
	assert.ErrorIs(t, CanTransition("LOST", StatusDelivered), ErrInvalidStatus)
}
