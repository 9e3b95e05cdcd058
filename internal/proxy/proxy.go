// Package proxy forwards raw backend traffic that bypasses the portal's
// own API: the backend's /api/* RPC surface for clients that speak it
// directly, and /files/* for uploaded images.  The proxy adds the CORS
// headers browsers need and otherwise passes requests through untouched,
// cookies included.
package proxy

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Forwarder proxies one upstream origin.
type Forwarder struct {
	base string
	http *http.Client
}

// New builds a Forwarder for the backend origin.  File downloads can be
// slow, so the timeout is generous; zero falls back to one minute.
func New(base string, timeout time.Duration) *Forwarder {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Forwarder{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Register mounts the pass-through routes.
func (f *Forwarder) Register(e *echo.Echo) {
	e.Any("/api/*", f.Handle)
	e.Any("/files/*", f.Handle)
}

// Handle forwards the request to the backend and relays the response.
// Preflight requests are answered locally.
func (f *Forwarder) Handle(c echo.Context) error {
	req := c.Request()
	setCORS(c)

	if req.Method == http.MethodOptions {
		return c.NoContent(http.StatusNoContent)
	}

	target := f.base + req.URL.Path
	if req.URL.RawQuery != "" {
		target += "?" + req.URL.RawQuery
	}
	out, err := http.NewRequestWithContext(req.Context(), req.Method, target, req.Body)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "proxy request failed"})
	}
	copyHeaders(out.Header, req.Header)
	// The backend must see its own host, not the portal's.
	out.Host = ""
	out.Header.Del("Host")

	resp, err := f.http.Do(out)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "backend unreachable"})
	}
	defer resp.Body.Close()

	h := c.Response().Header()
	for k, vals := range resp.Header {
		// CORS headers are the proxy's to set.
		if strings.HasPrefix(http.CanonicalHeaderKey(k), "Access-Control-") {
			continue
		}
		for _, v := range vals {
			h.Add(k, v)
		}
	}
	c.Response().WriteHeader(resp.StatusCode)
	_, err = io.Copy(c.Response(), resp.Body)
	return err
}

// setCORS mirrors the request origin so credentialed requests work from
// any frontend deployment.
func setCORS(c echo.Context) {
	origin := c.Request().Header.Get("Origin")
	if origin == "" {
		origin = "*"
	}
	h := c.Response().Header()
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Frappe-CSRF-Token")
	h.Set("Access-Control-Allow-Credentials", "true")
	h.Set("Access-Control-Max-Age", "86400")
	if origin != "*" {
		h.Add("Vary", "Origin")
	}
}

func copyHeaders(dst, src http.Header) {
	for k, vals := range src {
		switch http.CanonicalHeaderKey(k) {
		case "Connection", "Keep-Alive", "Transfer-Encoding", "Upgrade":
			continue
		}
		for _, v := range vals {
			dst.Add(k, v)
		}
	}
}
