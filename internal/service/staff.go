package service

import (
	"context"

	"github.com/rentalworks/rental-portal/internal/model"
	"github.com/rentalworks/rental-portal/internal/session"
)

// StaffService backs the staff dashboard: workload counters and the
// cross-customer booking list.  Counters arrive pre-aggregated; the
// portal never derives them from booking rows itself.
type StaffService struct {
	rpc Backend
}

func NewStaffService(rpc Backend) *StaffService {
	return &StaffService{rpc: rpc}
}

// DashboardStats fetches the pending-work counters.
func (s *StaffService) DashboardStats(ctx context.Context, sess *session.Session) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	err := s.rpc.Call(ctx, sess.SID, "get_staff_dashboard_stats", nil, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// BookingsQuery filters the staff booking list.
type BookingsQuery struct {
	Status string
	Owner  string
	Search string
}

// Bookings lists bookings across all customers, optionally filtered by
// status, third-party owner, or a search term.
func (s *StaffService) Bookings(ctx context.Context, sess *session.Session, q BookingsQuery) ([]model.Booking, error) {
	var resp struct {
		Bookings []model.Booking `json:"bookings"`
	}
	err := s.rpc.Call(ctx, sess.SID, "get_staff_all_bookings", map[string]any{
		"status":       q.Status,
		"owner":        q.Owner,
		"search_query": q.Search,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}
