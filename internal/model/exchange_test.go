package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExchangeQuoteLabel(t *testing.T) {
	t.Run("customer owes when new items cost more", func(t *testing.T) {
		q := ExchangeQuote{RemovedValue: 1000, NewValue: 1500, Difference: 500}
		assert.Equal(t, ExchangeCustomerOwes, q.Label())
		assert.Equal(t, 500.0, q.Abs())
	})

	t.Run("refund when new items cost less", func(t *testing.T) {
		q := ExchangeQuote{RemovedValue: 1500, NewValue: 1000, Difference: -500}
		assert.Equal(t, ExchangeRefundCustomer, q.Label())
		assert.Equal(t, 500.0, q.Abs())
	})

	t.Run("zero difference reads as owed", func(t *testing.T) {
		q := ExchangeQuote{RemovedValue: 1000, NewValue: 1000, Difference: 0}
		assert.Equal(t, ExchangeCustomerOwes, q.Label())
		assert.Equal(t, 0.0, q.Abs())
	})
}
