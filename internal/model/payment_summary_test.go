package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemainingBalanceDue(t *testing.T) {
	t.Run("outstanding balance", func(t *testing.T) {
		s := PaymentSummary{BalanceAmountDue: 5000, BalanceAmountCollected: 2000}
		assert.Equal(t, 3000.0, s.RemainingBalanceDue())
		assert.True(t, s.BalanceIsDue())
	})

	t.Run("fully collected", func(t *testing.T) {
		s := PaymentSummary{BalanceAmountDue: 5000, BalanceAmountCollected: 5000}
		assert.Equal(t, 0.0, s.RemainingBalanceDue())
		assert.False(t, s.BalanceIsDue())
	})

	t.Run("overcollection clamps to zero", func(t *testing.T) {
		s := PaymentSummary{BalanceAmountDue: 5000, BalanceAmountCollected: 6000}
		assert.Equal(t, 0.0, s.RemainingBalanceDue())
		assert.False(t, s.BalanceIsDue())
	})
}
