package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalworks/rental-portal/internal/model"
	"github.com/rentalworks/rental-portal/internal/session"
)

func cartSession(t *testing.T, store session.Store) *session.Session {
	t.Helper()
	sess := staffSession(t, store)
	cust := &model.Customer{Name: "CUST-001", CustomerName: "Anita", MobileNumber: "9999999999"}
	require.NoError(t, store.SaveCustomer(context.Background(), sess.ID, cust))
	sess.Customer = cust
	return sess
}

func TestCartAdd(t *testing.T) {
	t.Run("requires a selected customer", func(t *testing.T) {
		store := session.NewMemoryStore()
		svc := NewCartService(newStubBackend(), store)
		sess := staffSession(t, store)

		_, err := svc.Add(context.Background(), sess, AddItemInput{ItemCode: "LEHENGA-001", RentalStartDate: "2026-09-10", RentalEndDate: "2026-09-12"})
		assert.ErrorIs(t, err, ErrNoCustomer)
	})

	t.Run("validates required fields", func(t *testing.T) {
		store := session.NewMemoryStore()
		rpc := newStubBackend()
		svc := NewCartService(rpc, store)
		sess := cartSession(t, store)

		_, err := svc.Add(context.Background(), sess, AddItemInput{ItemCode: "LEHENGA-001"})
		assert.ErrorIs(t, err, ErrBadInput)
		assert.Zero(t, rpc.count("add_to_cart"))
	})

	t.Run("mutates then refetches and persists snapshot", func(t *testing.T) {
		store := session.NewMemoryStore()
		rpc := newStubBackend()
		rpc.respond["get_cart_items"] = map[string]any{
			"items":      []any{map[string]any{"cart_item_id": "CI-1", "item_code": "LEHENGA-001", "total_amount": 3000}},
			"total":      3000,
			"item_count": 1,
		}
		svc := NewCartService(rpc, store)
		sess := cartSession(t, store)

		cart, err := svc.Add(context.Background(), sess, AddItemInput{
			ItemCode:        "LEHENGA-001",
			RentalStartDate: "2026-09-10",
			RentalEndDate:   "2026-09-12",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, rpc.count("add_to_cart"))
		assert.Equal(t, 1, rpc.count("get_cart_items"))
		assert.Equal(t, 1, cart.ItemCount)

		reloaded, err := store.Load(context.Background(), sess.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.Cart)
		assert.Equal(t, 3000.0, reloaded.Cart.Total)
	})
}

func TestCartRemove(t *testing.T) {
	t.Run("snapshot reflects backend state after removal", func(t *testing.T) {
		store := session.NewMemoryStore()
		rpc := newStubBackend()
		rpc.respond["get_cart_items"] = map[string]any{"items": []any{}, "total": 0, "item_count": 0}
		svc := NewCartService(rpc, store)
		sess := cartSession(t, store)
		require.NoError(t, store.SaveCart(context.Background(), sess.ID, &model.Cart{ItemCount: 1, Total: 3000}))

		cart, err := svc.Remove(context.Background(), sess, "CI-1")
		require.NoError(t, err)
		assert.Zero(t, cart.ItemCount)

		reloaded, err := store.Load(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Zero(t, reloaded.Cart.ItemCount)
	})

	t.Run("requires a cart item id", func(t *testing.T) {
		store := session.NewMemoryStore()
		svc := NewCartService(newStubBackend(), store)
		sess := cartSession(t, store)
		_, err := svc.Remove(context.Background(), sess, "")
		assert.ErrorIs(t, err, ErrBadInput)
	})
}

func TestCartItems(t *testing.T) {
	t.Run("no customer yields empty cart without backend call", func(t *testing.T) {
		store := session.NewMemoryStore()
		rpc := newStubBackend()
		svc := NewCartService(rpc, store)
		sess := staffSession(t, store)

		cart, err := svc.Items(context.Background(), sess)
		require.NoError(t, err)
		assert.True(t, cart.Empty())
		assert.Zero(t, rpc.count("get_cart_items"))
	})
}
