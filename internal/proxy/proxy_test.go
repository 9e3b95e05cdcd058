package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProxyEcho(backend string) *echo.Echo {
	e := echo.New()
	New(backend, 0).Register(e)
	return e
}

func TestForwarding(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/method/frappe.client.get_list", r.URL.Path)
		assert.Equal(t, "doctype=Item", r.URL.RawQuery)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"limit":5}`, string(body))
		assert.Equal(t, "sid=abc", r.Header.Get("Cookie"))
		w.Header().Set("X-Backend", "yes")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":[]}`))
	}))
	defer backend.Close()

	e := newProxyEcho(backend.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/method/frappe.client.get_list?doctype=Item", strings.NewReader(`{"limit":5}`))
	req.Header.Set("Cookie", "sid=abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "yes", rec.Header().Get("X-Backend"))
	assert.JSONEq(t, `{"message":[]}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	t.Run("preflight answered locally", func(t *testing.T) {
		e := newProxyEcho("http://127.0.0.1:1") // backend must not be needed
		req := httptest.NewRequest(http.MethodOptions, "/api/method/login", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Frappe-CSRF-Token")
		assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("origin mirrored on proxied responses", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("img"))
		}))
		defer backend.Close()

		e := newProxyEcho(backend.URL)
		req := httptest.NewRequest(http.MethodGet, "/files/banner.jpg", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "img", rec.Body.String())
	})
}

func TestBackendDown(t *testing.T) {
	e := newProxyEcho("http://127.0.0.1:1")
	req := httptest.NewRequest(http.MethodGet, "/files/banner.jpg", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "backend unreachable")
}
