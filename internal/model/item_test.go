package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsPageUnmarshal(t *testing.T) {
	t.Run("paged object", func(t *testing.T) {
		var p ItemsPage
		err := json.Unmarshal([]byte(`{"items":[{"item_code":"LEHENGA-001","item_name":"Bridal Lehenga","rental_rate_per_day":1500}],"total_count":42,"has_more":true}`), &p)
		require.NoError(t, err)
		require.Len(t, p.Items, 1)
		assert.Equal(t, "LEHENGA-001", p.Items[0].ItemCode)
		assert.Equal(t, 42, p.TotalCount)
		assert.True(t, p.HasMore)
	})

	t.Run("bare array fallback", func(t *testing.T) {
		var p ItemsPage
		err := json.Unmarshal([]byte(`[{"item_code":"SHERWANI-002","rental_rate_per_day":900},{"item_code":"SHERWANI-003","rental_rate_per_day":1100}]`), &p)
		require.NoError(t, err)
		require.Len(t, p.Items, 2)
		assert.Equal(t, 2, p.TotalCount)
		assert.False(t, p.HasMore)
	})

	t.Run("empty object", func(t *testing.T) {
		var p ItemsPage
		err := json.Unmarshal([]byte(`{}`), &p)
		require.NoError(t, err)
		assert.Empty(t, p.Items)
		assert.Zero(t, p.TotalCount)
	})
}
