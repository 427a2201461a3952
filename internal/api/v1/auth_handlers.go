package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kyra-labs/internship-dashboard/internal/auth"
	"github.com/kyra-labs/internship-dashboard/internal/config"
	"github.com/kyra-labs/internship-dashboard/internal/service"
	"github.com/kyra-labs/internship-dashboard/internal/session"
	"github.com/kyra-labs/internship-dashboard/internal/utils"
	"github.com/kyra-labs/internship-dashboard/internal/view"
)

type AuthHandler struct {
	cfg      *config.Config
	sessions *service.SessionService
}

type sessionResp struct {
	Session session.Session `json:"session"`
	View    view.View       `json:"view"`
}

func NewAuthHandler(cfg *config.Config, sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{cfg: cfg, sessions: sessions}
}

// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req session.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request", nil, err.Error())
		return
	}
	res, err := h.sessions.Login(r.Context(), req)
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, view.MsgInvalidCredentials, sessionResp{res.Session, res.View}, err.Error())
		return
	case errors.Is(err, session.ErrUnknownRole):
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, view.MsgUnknownRole, sessionResp{res.Session, res.View}, err.Error())
		return
	case err != nil:
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "session error", nil, err.Error())
		return
	}

	// a fresh login replaces whatever session the cookie carried
	if _, oldID := auth.GetSessionFromCtx(r.Context()); oldID != "" {
		_, _, _ = h.sessions.Logout(r.Context(), session.Anonymous(), oldID)
	}

	auth.SetSessionCookie(w, h.cfg.CookieName, res.Token, res.ExpiresAt, h.cfg.CookieSecure)
	utils.WriteJSONResponse(w, http.StatusOK, true, res.View.Message, sessionResp{res.Session, res.View}, nil)
}

// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	current, id := auth.GetSessionFromCtx(r.Context())
	next, v, err := h.sessions.Logout(r.Context(), current, id)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "revoke error", nil, err.Error())
		return
	}
	auth.ClearSessionCookie(w, h.cfg.CookieName, h.cfg.CookieSecure)
	utils.WriteJSONResponse(w, http.StatusOK, true, view.MsgLoggedOut, sessionResp{next, v}, nil)
}

// GET /session
func (h *AuthHandler) Current(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.GetSessionFromCtx(r.Context())
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", s, nil)
}
