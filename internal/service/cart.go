package service

import (
	"context"
	"fmt"

	"github.com/rentalworks/rental-portal/internal/model"
	"github.com/rentalworks/rental-portal/internal/session"
)

// CartService manages the selected customer's cart.  The backend owns the
// cart; after every mutation the service re-fetches the snapshot and
// writes it through the session store, so the cached cart only ever
// contains state the backend has confirmed.  Nothing is incremented
// optimistically.
type CartService struct {
	rpc   Backend
	store session.Store
}

func NewCartService(rpc Backend, store session.Store) *CartService {
	return &CartService{rpc: rpc, store: store}
}

// AddItemInput carries one "add to cart" request.  The rental window is
// usually derived from the function date by the caller; the backend
// validates the dates either way.
type AddItemInput struct {
	ItemCode        string `json:"item_code"`
	RentalStartDate string `json:"rental_start_date"`
	RentalEndDate   string `json:"rental_end_date"`
	FunctionDate    string `json:"function_date,omitempty"`
	Quantity        int    `json:"quantity"`
}

// Items fetches the current cart and writes the snapshot through the
// session store.  An empty cart is a normal answer, not an error, and
// triggers no mutating call.
func (s *CartService) Items(ctx context.Context, sess *session.Session) (*model.Cart, error) {
	if sess.Customer == nil {
		// Nothing selected: show the empty state without touching the backend.
		return &model.Cart{}, nil
	}
	return s.refresh(ctx, sess)
}

// Add puts an item into the cart and returns the refreshed snapshot.
func (s *CartService) Add(ctx context.Context, sess *session.Session, in AddItemInput) (*model.Cart, error) {
	if sess.Customer == nil {
		return nil, ErrNoCustomer
	}
	if in.ItemCode == "" || in.RentalStartDate == "" || in.RentalEndDate == "" {
		return nil, fmt.Errorf("%w: item code and rental dates are required", ErrBadInput)
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	err := s.rpc.Call(ctx, sess.SID, "add_to_cart", map[string]any{
		"item_code":         in.ItemCode,
		"customer_id":       sess.Customer.Name,
		"rental_start_date": in.RentalStartDate,
		"rental_end_date":   in.RentalEndDate,
		"function_date":     in.FunctionDate,
		"quantity":          in.Quantity,
	}, nil)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, sess)
}

// Remove deletes one cart line and returns the refreshed snapshot.  The
// line is gone only if the refetch no longer reports it.
func (s *CartService) Remove(ctx context.Context, sess *session.Session, cartItemID string) (*model.Cart, error) {
	if sess.Customer == nil {
		return nil, ErrNoCustomer
	}
	if cartItemID == "" {
		return nil, fmt.Errorf("%w: cart item id is required", ErrBadInput)
	}
	err := s.rpc.Call(ctx, sess.SID, "remove_from_cart", map[string]any{
		"cart_item_id": cartItemID,
		"customer_id":  sess.Customer.Name,
	}, nil)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, sess)
}

// Clear empties the cart and returns the refreshed snapshot.
func (s *CartService) Clear(ctx context.Context, sess *session.Session) (*model.Cart, error) {
	if sess.Customer == nil {
		return nil, ErrNoCustomer
	}
	err := s.rpc.Call(ctx, sess.SID, "clear_cart", map[string]any{
		"customer_id": sess.Customer.Name,
	}, nil)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, sess)
}

// refresh fetches the cart from the backend and persists the snapshot.
func (s *CartService) refresh(ctx context.Context, sess *session.Session) (*model.Cart, error) {
	var cart model.Cart
	err := s.rpc.Call(ctx, sess.SID, "get_cart_items", map[string]any{
		"customer_id": sess.Customer.Name,
	}, &cart)
	if err != nil {
		return nil, err
	}
	sess.Cart = &cart
	if err := s.store.SaveCart(ctx, sess.ID, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
