package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultNamespace is the dotted prefix of the backend's whitelisted
// portal methods.  Business calls go to
// POST {base}/api/method/{namespace}.{method}.
const DefaultNamespace = "rental_management.api.customer_portal"

// Fixed framework endpoints outside the portal namespace.
const (
	loginPath  = "/api/method/login"
	logoutPath = "/api/method/logout"
)

// Client calls the rental backend.  It is safe for concurrent use.  The
// upstream session is cookie based: callers pass the sid captured at login
// with every authenticated call, and the client never attaches token
// headers.
type Client struct {
	base string
	ns   string
	http *http.Client
}

// New builds a Client for the given backend origin (scheme://host[:port]).
// The timeout bounds every call; a zero timeout falls back to 15 seconds
// so a hung backend cannot wedge a request forever.
func New(base, namespace string, timeout time.Duration) *Client {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base: base,
		ns:   namespace,
		http: &http.Client{Timeout: timeout},
	}
}

// Identity is the backend's view of the current session, as returned by
// the get_current_user method.
type Identity struct {
	IsLoggedIn bool     `json:"is_logged_in"`
	User       string   `json:"user"`
	Email      string   `json:"email"`
	FullName   string   `json:"full_name"`
	Roles      []string `json:"roles"`
}

// Call invokes a whitelisted portal method with a JSON body of named
// arguments.  sid may be empty for guest-accessible methods.  The response
// envelope is decoded once (see decodeEnvelope); a success=false answer
// becomes an *APIError carrying the backend's message verbatim.  When out
// is non-nil the normalized payload is unmarshaled into it; a payload that
// does not fit is left as the zero value rather than treated as fatal.
func (c *Client) Call(ctx context.Context, sid, method string, args any, out any) error {
	url := c.base + "/api/method/" + c.ns + "." + method
	status, body, err := c.post(ctx, url, sid, args)
	if err != nil {
		return err
	}

	payload, success, msg := decodeEnvelope(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrSessionExpired
	case status >= 400:
		return &APIError{Method: method, Status: status, Message: msg}
	case success != nil && !*success:
		return &APIError{Method: method, Message: msg}
	}

	if out != nil && len(payload) > 0 {
		// Best effort: an unexpected shape yields the zero value, not a crash.
		_ = json.Unmarshal(payload, out)
	}
	return nil
}

// Login authenticates against the backend's fixed login endpoint and
// returns the sid session cookie together with the user's full name.
func (c *Client) Login(ctx context.Context, usr, pwd string) (sid, fullName string, err error) {
	url := c.base + loginPath
	body := map[string]string{"usr": usr, "pwd": pwd}

	req, err := c.newRequest(ctx, url, "", body)
	if err != nil {
		return "", "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	var ack struct {
		Message  string `json:"message"`
		FullName string `json:"full_name"`
	}
	_ = json.Unmarshal(raw, &ack)

	if resp.StatusCode != http.StatusOK || ack.Message != "Logged In" {
		msg := ack.Message
		if msg == "" {
			msg = "login failed"
		}
		return "", "", &APIError{Method: "login", Status: resp.StatusCode, Message: msg}
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "sid" {
			sid = ck.Value
		}
	}
	if sid == "" {
		return "", "", &APIError{Method: "login", Message: "no session cookie in login response"}
	}
	return sid, ack.FullName, nil
}

// Logout terminates the backend session for the given sid.
func (c *Client) Logout(ctx context.Context, sid string) error {
	status, _, err := c.post(ctx, c.base+logoutPath, sid, nil)
	if err != nil {
		return err
	}
	if status >= 400 && status != http.StatusUnauthorized && status != http.StatusForbidden {
		return &APIError{Method: "logout", Status: status}
	}
	return nil
}

// CurrentUser fetches the backend's view of the session.  A 401/403 maps
// to ErrSessionExpired like any other call.
func (c *Client) CurrentUser(ctx context.Context, sid string) (*Identity, error) {
	var id Identity
	if err := c.Call(ctx, sid, "get_current_user", nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// post sends one JSON POST and reads the whole response body.  Transport
// failures wrap ErrUnreachable; HTTP status handling is left to callers.
func (c *Client) post(ctx context.Context, url, sid string, args any) (int, []byte, error) {
	req, err := c.newRequest(ctx, url, sid, args)
	if err != nil {
		return 0, nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) newRequest(ctx context.Context, url, sid string, args any) (*http.Request, error) {
	if args == nil {
		args = map[string]any{}
	}
	payload, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	return req, nil
}
