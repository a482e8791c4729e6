package handlers

import (
	"errors"
	"net/http"
	"time"

	"parcelpoint/internal/apperr"
	"parcelpoint/internal/auth"
	"parcelpoint/internal/logx"
)

// AuthHandler serves the admin session endpoints.
type AuthHandler struct {
	gate       sessionGate
	logger     logx.Logger
	sessionTTL time.Duration
}

// NewAuthHandler wires the access gate into HTTP handlers.
func NewAuthHandler(logger logx.Logger, gate sessionGate, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{gate: gate, logger: logger, sessionTTL: sessionTTL}
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	token, err := h.gate.IssueSession(req.Password)
	switch {
	case err == nil:
		http.SetCookie(w, &http.Cookie{
			Name:     auth.SessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(h.sessionTTL / time.Second),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(h.logger, w, r, http.StatusOK, okResponse{OK: true})
	case errors.Is(err, apperr.ErrDenied):
		writeError(h.logger, w, r, http.StatusUnauthorized, "wrong password")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Logout handles POST /api/admin/logout. It always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.SessionCookie); err == nil {
		h.gate.Revoke(c.Value)
	}

	// overwrite with an expired cookie
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(h.logger, w, r, http.StatusOK, okResponse{OK: true})
}

// Session handles GET /api/admin/session and reports whether the caller holds
// a live admin session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	active := false
	if c, err := r.Cookie(auth.SessionCookie); err == nil {
		active = h.gate.IsAdmin(c.Value)
	}
	writeJSON(h.logger, w, r, http.StatusOK, okResponse{OK: active})
}
