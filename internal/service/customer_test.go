package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalworks/rental-portal/internal/model"
	"github.com/rentalworks/rental-portal/internal/session"
)

func TestCustomerSelect(t *testing.T) {
	t.Run("switching customer drops the cart snapshot", func(t *testing.T) {
		store := session.NewMemoryStore()
		svc := NewCustomerService(newStubBackend(), store)
		sess := cartSession(t, store)
		require.NoError(t, store.SaveCart(context.Background(), sess.ID, &model.Cart{ItemCount: 2}))

		other := &model.Customer{Name: "CUST-002", CustomerName: "Ravi"}
		require.NoError(t, svc.Select(context.Background(), sess, other))

		reloaded, err := store.Load(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "CUST-002", reloaded.Customer.Name)
		assert.Nil(t, reloaded.Cart)
	})

	t.Run("deselect clears customer and cart", func(t *testing.T) {
		store := session.NewMemoryStore()
		svc := NewCustomerService(newStubBackend(), store)
		sess := cartSession(t, store)

		require.NoError(t, svc.Select(context.Background(), sess, nil))
		reloaded, err := store.Load(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.Customer)
		assert.Nil(t, reloaded.Cart)
	})
}

func TestCustomerCreate(t *testing.T) {
	t.Run("selects the new customer", func(t *testing.T) {
		store := session.NewMemoryStore()
		rpc := newStubBackend()
		rpc.respond["create_customer"] = map[string]any{
			"customer": map[string]any{"name": "CUST-010", "customer_name": "Meera", "mobile_number": "8888888888"},
		}
		svc := NewCustomerService(rpc, store)
		sess := staffSession(t, store)

		cust, err := svc.Create(context.Background(), sess, CustomerInput{CustomerName: "Meera", MobileNumber: "8888888888"})
		require.NoError(t, err)
		assert.Equal(t, "CUST-010", cust.Name)

		reloaded, err := store.Load(context.Background(), sess.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.Customer)
		assert.Equal(t, "CUST-010", reloaded.Customer.Name)
	})

	t.Run("name and mobile are required", func(t *testing.T) {
		svc := NewCustomerService(newStubBackend(), session.NewMemoryStore())
		_, err := svc.Create(context.Background(), &session.Session{}, CustomerInput{CustomerName: "Meera"})
		assert.ErrorIs(t, err, ErrBadInput)
	})
}
