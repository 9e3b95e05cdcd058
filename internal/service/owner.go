package service

import (
	"context"
	"fmt"

	"github.com/rentalworks/rental-portal/internal/model"
	"github.com/rentalworks/rental-portal/internal/session"
)

// OwnerService backs the third-party owner surface: the commission
// dashboard and item onboarding.  An admin may pass an explicit owner id
// to view any owner's dashboard; owners themselves are resolved by the
// backend from their login.
type OwnerService struct {
	rpc Backend
}

func NewOwnerService(rpc Backend) *OwnerService {
	return &OwnerService{rpc: rpc}
}

// Dashboard fetches an owner's stats, items, sales and commission
// history in one call.  ownerID is optional for admins and ignored by
// the backend for regular owners.
func (s *OwnerService) Dashboard(ctx context.Context, sess *session.Session, ownerID string) (*model.OwnerDashboard, error) {
	var dash model.OwnerDashboard
	err := s.rpc.Call(ctx, sess.SID, "get_owner_dashboard_data",
		map[string]any{"owner_id": ownerID}, &dash)
	if err != nil {
		return nil, err
	}
	return &dash, nil
}

// Owners lists all owner profiles for the admin's owner picker.
func (s *OwnerService) Owners(ctx context.Context, sess *session.Session) ([]model.OwnerSummary, error) {
	var resp struct {
		Owners []model.OwnerSummary `json:"owners"`
	}
	err := s.rpc.Call(ctx, sess.SID, "get_all_owners", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Owners, nil
}

// ItemCreationContext fetches the pickers (item groups, suppliers) the
// item-creation form needs.
func (s *OwnerService) ItemCreationContext(ctx context.Context, sess *session.Session) (*model.ItemCreationContext, error) {
	var cctx model.ItemCreationContext
	err := s.rpc.Call(ctx, sess.SID, "get_item_creation_context", nil, &cctx)
	if err != nil {
		return nil, err
	}
	return &cctx, nil
}

// CreateItemInput bundles a new item with its optional inline supplier
// and uploaded images.
type CreateItemInput struct {
	Item        model.ItemDraft       `json:"item"`
	NewSupplier *model.NewSupplier    `json:"new_supplier,omitempty"`
	Images      []model.UploadedImage `json:"images,omitempty"`
}

// CreateItem registers a new rental item and returns its item code.  The
// nested structures travel as embedded JSON strings, matching how the
// backend parses form payloads.
func (s *OwnerService) CreateItem(ctx context.Context, sess *session.Session, in CreateItemInput) (string, error) {
	if in.Item.ItemName == "" || in.Item.ItemGroup == "" {
		return "", fmt.Errorf("%w: item name and item group are required", ErrBadInput)
	}
	if in.Item.RentalRatePerDay <= 0 {
		return "", fmt.Errorf("%w: rental rate must be positive", ErrBadInput)
	}
	args := map[string]any{
		"item_data": jsonString(in.Item),
	}
	if in.NewSupplier != nil {
		args["new_supplier"] = jsonString(in.NewSupplier)
	}
	if len(in.Images) > 0 {
		args["images"] = jsonString(in.Images)
	}
	var resp struct {
		ItemCode string `json:"item_code"`
	}
	if err := s.rpc.Call(ctx, sess.SID, "create_rental_item", args, &resp); err != nil {
		return "", err
	}
	return resp.ItemCode, nil
}
