package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservedTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		ok   bool
	}{
		{"draft to confirmed", StatusDraft, StatusConfirmed, true},
		{"draft to cancelled", StatusDraft, StatusCancelled, true},
		{"draft to out for rental", StatusDraft, StatusOutForRental, false},
		{"confirmed to out for rental", StatusConfirmed, StatusOutForRental, true},
		{"confirmed to returned", StatusConfirmed, StatusReturned, false},
		{"out for rental to returned", StatusOutForRental, StatusReturned, true},
		{"out for rental to completed", StatusOutForRental, StatusCompleted, true},
		{"returned to completed", StatusReturned, StatusCompleted, true},
		{"returned to confirmed", StatusReturned, StatusConfirmed, false},
		{"completed goes nowhere", StatusCompleted, StatusConfirmed, false},
		{"cancelled goes nowhere", StatusCancelled, StatusConfirmed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, ObservedTransition(tt.from, tt.to))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusDraft.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, StatusOutForRental.Terminal())
	assert.False(t, StatusReturned.Terminal())
}

func TestValidPayMode(t *testing.T) {
	for _, mode := range []string{PayModeCash, PayModeUPI, PayModeCard, PayModeBankTransfer} {
		assert.True(t, ValidPayMode(mode), mode)
	}
	assert.False(t, ValidPayMode(""))
	assert.False(t, ValidPayMode("cash"))
	assert.False(t, ValidPayMode("Cheque"))
}
