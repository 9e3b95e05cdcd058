package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogBanners(t *testing.T) {
	t.Run("serves warm cache without a second fetch", func(t *testing.T) {
		rpc := newStubBackend()
		rpc.respond["get_portal_banners"] = map[string]any{
			"banners": []any{map[string]any{"name": "B-1", "title": "Wedding Season", "image": "/files/b1.jpg"}},
		}
		svc := NewCatalogService(rpc)

		first, err := svc.Banners(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, first, 1)

		second, err := svc.Banners(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, rpc.count("get_portal_banners"))
	})
}

func TestCatalogItems(t *testing.T) {
	t.Run("defaults paging", func(t *testing.T) {
		rpc := newStubBackend()
		rpc.respond["get_rental_items"] = map[string]any{"items": []any{}, "total_count": 0, "has_more": false}
		svc := NewCatalogService(rpc)

		_, err := svc.Items(context.Background(), "", ItemsQuery{})
		require.NoError(t, err)
		args := rpc.lastArgs["get_rental_items"].(map[string]any)
		assert.Equal(t, 1, args["page"])
		assert.Equal(t, 20, args["page_size"])
	})
}
