package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForwardPath(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusProcessing))
	assert.True(t, StatusProcessing.CanTransitionTo(StatusShipped))
	assert.True(t, StatusShipped.CanTransitionTo(StatusDelivered))
}

func TestStatusForwardSkipsAllowed(t *testing.T) {
	// An admin may jump ahead, e.g. confirm and process in one step.
	assert.True(t, StatusPending.CanTransitionTo(StatusProcessing))
	assert.True(t, StatusProcessing.CanTransitionTo(StatusDelivered))
}

func TestStatusBackwardRejected(t *testing.T) {
	assert.False(t, StatusProcessing.CanTransitionTo(StatusPending))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPending))
	assert.False(t, StatusShipped.CanTransitionTo(StatusProcessing))
	assert.False(t, StatusDelivered.CanTransitionTo(StatusPending))
}

func TestStatusSelfTransitionRejected(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.False(t, s.CanTransitionTo(s), "self transition from %s", s)
	}
}

func TestCancellationReachability(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusProcessing.CanTransitionTo(StatusCancelled))

	// Once shipped, the order can no longer be cancelled.
	assert.False(t, StatusShipped.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusDelivered.CanTransitionTo(StatusCancelled))
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	all := []OrderStatus{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
	for _, terminal := range []OrderStatus{StatusDelivered, StatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s must be rejected", terminal, next)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, ok := ParseOrderStatus("shipped")
	assert.True(t, ok)
	assert.Equal(t, StatusShipped, status)

	_, ok = ParseOrderStatus("cancelled")
	assert.True(t, ok)

	_, ok = ParseOrderStatus("on-hold")
	assert.False(t, ok)

	_, ok = ParseOrderStatus("")
	assert.False(t, ok)
}
