package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kyra-labs/internship-dashboard/internal/auth"
	"github.com/kyra-labs/internship-dashboard/internal/session"
	"github.com/kyra-labs/internship-dashboard/internal/view"
)

// LoginResult is what a login attempt produces. Token, ID and ExpiresAt are
// set only when the login succeeded.
type LoginResult struct {
	Session   session.Session
	View      view.View
	Token     string
	ID        string
	ExpiresAt time.Time
}

// SessionService applies login and logout and keeps the token registry in step.
type SessionService struct {
	issuer *auth.Issuer
	log    *slog.Logger
}

func NewSessionService(iss *auth.Issuer, log *slog.Logger) *SessionService {
	if log == nil {
		log = slog.Default()
	}
	return &SessionService{issuer: iss, log: log}
}

// Login evaluates the credentials. Domain errors (session.ErrInvalidCredentials,
// session.ErrUnknownRole) come back together with the login view to show.
func (s *SessionService) Login(ctx context.Context, c session.Credentials) (LoginResult, error) {
	next, v, err := view.Login(c)
	res := LoginResult{Session: next, View: v}
	if err != nil {
		s.log.Info("login rejected", slog.String("reason", err.Error()))
		return res, err
	}
	token, id, expiresAt, err := s.issuer.Issue(ctx, next)
	if err != nil {
		return LoginResult{Session: session.Anonymous(), View: view.LoginScreen("", "")}, fmt.Errorf("issue session: %w", err)
	}
	res.Token, res.ID, res.ExpiresAt = token, id, expiresAt
	s.log.Info("logged in", slog.String("role", string(next.Role)), slog.String("session_id", id))
	return res, nil
}

// Logout revokes id (if any) and returns the logged out session with its view.
// Calling it for an already logged out session is harmless.
func (s *SessionService) Logout(ctx context.Context, current session.Session, id string) (session.Session, view.View, error) {
	if err := s.issuer.Revoke(ctx, id); err != nil {
		return current, view.View{}, fmt.Errorf("revoke session: %w", err)
	}
	if !current.Authenticated {
		return session.Logout(), view.LoginScreen("", view.MsgLoggedOut), nil
	}
	next, v := view.Navigate(current, view.NavLogout)
	s.log.Info("logged out", slog.String("role", string(current.Role)), slog.String("session_id", id))
	return next, v, nil
}
