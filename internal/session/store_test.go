package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalworks/rental-portal/internal/model"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id yields ErrNoSession", func(t *testing.T) {
		s := NewMemoryStore()
		_, err := s.Load(ctx, "nope")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("round trips user, customer and cart", func(t *testing.T) {
		s := NewMemoryStore()
		u := User{Email: "a@example.com", FullName: "A", Roles: []string{"Rental Staff"}}
		require.NoError(t, s.SaveUser(ctx, "s1", u, "sid-1"))
		require.NoError(t, s.SaveCustomer(ctx, "s1", &model.Customer{Name: "CUST-1"}))
		require.NoError(t, s.SaveCart(ctx, "s1", &model.Cart{ItemCount: 2, Total: 1800}))

		sess, err := s.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "sid-1", sess.SID)
		assert.Equal(t, "a@example.com", sess.User.Email)
		assert.Equal(t, "CUST-1", sess.Customer.Name)
		assert.Equal(t, 2, sess.Cart.ItemCount)
	})

	t.Run("nil customer and cart clear the slots", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.SaveUser(ctx, "s1", User{Email: "a@example.com"}, "sid"))
		require.NoError(t, s.SaveCustomer(ctx, "s1", &model.Customer{Name: "CUST-1"}))
		require.NoError(t, s.SaveCustomer(ctx, "s1", nil))
		require.NoError(t, s.SaveCart(ctx, "s1", nil))

		sess, err := s.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, sess.Customer)
		assert.Nil(t, sess.Cart)
	})

	t.Run("clear removes everything at once", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.SaveUser(ctx, "s1", User{Email: "a@example.com"}, "sid"))
		require.NoError(t, s.SaveCart(ctx, "s1", &model.Cart{ItemCount: 1}))
		require.NoError(t, s.Clear(ctx, "s1"))
		_, err := s.Load(ctx, "s1")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("load copies do not alias stored state", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.SaveUser(ctx, "s1", User{Email: "a@example.com"}, "sid"))
		require.NoError(t, s.SaveCart(ctx, "s1", &model.Cart{ItemCount: 1}))

		sess, err := s.Load(ctx, "s1")
		require.NoError(t, err)
		sess.Cart.ItemCount = 99

		again, err := s.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 1, again.Cart.ItemCount)
	})
}

func TestUserHasRole(t *testing.T) {
	u := &User{Roles: []string{"Rental Staff", "System Manager"}}
	assert.True(t, u.HasRole("Rental Staff"))
	assert.False(t, u.HasRole("Rental Owner"))
	var nilUser *User
	assert.False(t, nilUser.HasRole("Rental Staff"))
}
