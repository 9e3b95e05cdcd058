package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/config"
	"github.com/rentalworks/rental-portal/internal/service"
	"github.com/rentalworks/rental-portal/internal/utils"
)

// AuthHandler bundles dependencies for the login lifecycle.
type AuthHandler struct {
	Base
	Cfg  config.Config
	Auth *service.AuthService
}

func NewAuthHandler(base Base, cfg config.Config, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Base: base, Cfg: cfg, Auth: auth}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Roles    []string  `json:"roles,omitempty"`
	Expires  time.Time `json:"expires"`
}

// Login authenticates against the rental backend and sets the portal
// session cookie.  The backend's rejection message travels back verbatim.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	sess, err := h.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, err)
	}

	token, exp, err := utils.NewSessionToken(h.Cfg.SessionSecret, sess.ID, sess.User.Email, sess.User.Roles, h.Cfg.SessionTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	c.SetCookie(&http.Cookie{
		Name:     h.Cfg.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cfg.Env == "production",
	})

	return c.JSON(http.StatusOK, loginResp{
		Email:    sess.User.Email,
		FullName: sess.User.FullName,
		Roles:    sess.User.Roles,
		Expires:  exp,
	})
}

// Logout ends the backend session, wipes the stored session state and
// expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.Auth.Logout(c.Request().Context(), sess); err != nil {
		return h.fail(c, err)
	}
	h.expireCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"status": "logged out"})
}

// Me reports the current identity, re-validated against the backend.
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	id, err := h.Auth.Check(c.Request().Context(), sess)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"email":     id.Email,
		"full_name": id.FullName,
		"roles":     id.Roles,
		"customer":  sess.Customer,
	})
}
