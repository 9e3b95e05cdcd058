package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/rentalworks/rental-portal/internal/model"
)

// CatalogService serves the browse surface: item listings, detail pages,
// availability checks, banners and categories.  Everything here is
// guest-readable, so calls go out with whatever sid the session carries,
// empty included.
//
// Banners change rarely and sit on every page, so they are additionally
// held in memory and refreshed on a timer instead of per request.
type CatalogService struct {
	rpc Backend

	mu      sync.RWMutex
	banners []model.Banner
	fetched time.Time
}

func NewCatalogService(rpc Backend) *CatalogService {
	return &CatalogService{rpc: rpc}
}

// ItemsQuery narrows and orders an item listing.
type ItemsQuery struct {
	Search   string
	Category string
	SortBy   string
	Page     int
	PageSize int
}

// Items lists catalog items.  Older backend builds answer with a bare
// array instead of the paged object; model.ItemsPage absorbs both.
func (s *CatalogService) Items(ctx context.Context, sid string, q ItemsQuery) (*model.ItemsPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 20
	}
	var page model.ItemsPage
	err := s.rpc.Call(ctx, sid, "get_rental_items", map[string]any{
		"search_query": q.Search,
		"category":     q.Category,
		"sort_by":      q.SortBy,
		"page":         q.Page,
		"page_size":    q.PageSize,
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ItemDetail fetches one item with its full description and image set.
func (s *CatalogService) ItemDetail(ctx context.Context, sid, itemCode string) (*model.Item, error) {
	var item model.Item
	err := s.rpc.Call(ctx, sid, "get_item_details",
		map[string]any{"item_code": itemCode}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Availability checks whether an item is free over a date range.
func (s *CatalogService) Availability(ctx context.Context, sid, itemCode, start, end string) (*model.Availability, error) {
	var av model.Availability
	err := s.rpc.Call(ctx, sid, "check_item_availability", map[string]any{
		"item_code":  itemCode,
		"start_date": start,
		"end_date":   end,
	}, &av)
	if err != nil {
		return nil, err
	}
	return &av, nil
}

// Images lists an item's gallery.
func (s *CatalogService) Images(ctx context.Context, sid, itemCode string) ([]model.ItemImage, error) {
	var resp struct {
		Images []model.ItemImage `json:"images"`
	}
	err := s.rpc.Call(ctx, sid, "get_item_images",
		map[string]any{"item_code": itemCode}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Images, nil
}

// Banners returns the home-page banners.  The in-memory copy is served
// when present; a cold start falls through to the backend.
func (s *CatalogService) Banners(ctx context.Context, sid string) ([]model.Banner, error) {
	s.mu.RLock()
	if s.banners != nil {
		out := s.banners
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()
	return s.fetchBanners(ctx, sid)
}

// Categories lists the browse categories.
func (s *CatalogService) Categories(ctx context.Context, sid string) ([]model.Category, error) {
	var resp struct {
		Categories []model.Category `json:"categories"`
	}
	err := s.rpc.Call(ctx, sid, "get_portal_categories", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// StartBannerRefresher keeps the banner cache warm, refetching every
// interval until ctx is cancelled.  Failures keep the previous copy.
func (s *CatalogService) StartBannerRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		if _, err := s.fetchBanners(ctx, ""); err != nil {
			log.Printf("catalog: initial banner fetch failed: %v", err)
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.fetchBanners(ctx, ""); err != nil {
					log.Printf("catalog: banner refresh failed: %v", err)
				}
			}
		}
	}()
}

func (s *CatalogService) fetchBanners(ctx context.Context, sid string) ([]model.Banner, error) {
	var resp struct {
		Banners []model.Banner `json:"banners"`
	}
	err := s.rpc.Call(ctx, sid, "get_portal_banners", nil, &resp)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.banners = resp.Banners
	s.fetched = time.Now()
	s.mu.Unlock()
	return resp.Banners, nil
}
