package service

import (
	"context"
	"fmt"

	"github.com/rentalworks/rental-portal/internal/model"
	"github.com/rentalworks/rental-portal/internal/session"
)

// CustomerService manages customer records and the per-session customer
// selection staff operate under.  Selecting a customer is a portal-side
// convenience; the backend only ever sees the selected customer's id on
// the calls that need one.
type CustomerService struct {
	rpc   Backend
	store session.Store
}

func NewCustomerService(rpc Backend, store session.Store) *CustomerService {
	return &CustomerService{rpc: rpc, store: store}
}

// CustomerInput carries a create or update request.
type CustomerInput struct {
	CustomerName string `json:"customer_name"`
	MobileNumber string `json:"mobile_number"`
	EmailID      string `json:"email_id,omitempty"`
}

// Search finds customers by name or mobile number.
func (s *CustomerService) Search(ctx context.Context, sess *session.Session, query string) ([]model.Customer, error) {
	var resp struct {
		Customers []model.Customer `json:"customers"`
	}
	err := s.rpc.Call(ctx, sess.SID, "search_customers",
		map[string]any{"search_query": query}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Customers, nil
}

// Create registers a new customer, selects it for the session and
// returns the fresh record.
func (s *CustomerService) Create(ctx context.Context, sess *session.Session, in CustomerInput) (*model.Customer, error) {
	if in.CustomerName == "" || in.MobileNumber == "" {
		return nil, fmt.Errorf("%w: customer name and mobile number are required", ErrBadInput)
	}
	var resp struct {
		Customer *model.Customer `json:"customer"`
	}
	err := s.rpc.Call(ctx, sess.SID, "create_customer", map[string]any{
		"customer_name": in.CustomerName,
		"mobile_number": in.MobileNumber,
		"email_id":      in.EmailID,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Customer == nil {
		return nil, fmt.Errorf("%w: backend returned no customer record", ErrBadInput)
	}
	if err := s.Select(ctx, sess, resp.Customer); err != nil {
		return nil, err
	}
	return resp.Customer, nil
}

// Update edits an existing customer and re-fetches the record.  When the
// edited customer is the selected one, the selection is refreshed too.
func (s *CustomerService) Update(ctx context.Context, sess *session.Session, customerID string, in CustomerInput) (*model.Customer, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrBadInput)
	}
	err := s.rpc.Call(ctx, sess.SID, "update_customer", map[string]any{
		"customer_id":   customerID,
		"customer_name": in.CustomerName,
		"mobile_number": in.MobileNumber,
		"email_id":      in.EmailID,
	}, nil)
	if err != nil {
		return nil, err
	}
	cust, err := s.Details(ctx, sess, customerID)
	if err != nil {
		return nil, err
	}
	if sess.Customer != nil && sess.Customer.Name == customerID {
		if err := s.Select(ctx, sess, cust); err != nil {
			return nil, err
		}
	}
	return cust, nil
}

// Details fetches one customer record.
func (s *CustomerService) Details(ctx context.Context, sess *session.Session, customerID string) (*model.Customer, error) {
	var resp struct {
		Customer *model.Customer `json:"customer"`
	}
	err := s.rpc.Call(ctx, sess.SID, "get_customer_details",
		map[string]any{"customer_id": customerID}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Customer == nil {
		return nil, fmt.Errorf("%w: customer %s not found", ErrBadInput, customerID)
	}
	return resp.Customer, nil
}

// Select pins a customer to the session; nil clears the selection.  The
// cart snapshot belongs to the previous selection and is dropped with it.
func (s *CustomerService) Select(ctx context.Context, sess *session.Session, c *model.Customer) error {
	changed := sess.Customer == nil || c == nil || sess.Customer.Name != c.Name
	sess.Customer = c
	if err := s.store.SaveCustomer(ctx, sess.ID, c); err != nil {
		return err
	}
	if changed {
		sess.Cart = nil
		return s.store.SaveCart(ctx, sess.ID, nil)
	}
	return nil
}
