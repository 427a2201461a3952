package auth

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"

	"github.com/kyra-labs/internship-dashboard/internal/models"
	"github.com/kyra-labs/internship-dashboard/internal/session"
	"github.com/kyra-labs/internship-dashboard/internal/utils"
)

var (
	ErrInvalidToken   = errors.New("invalid session token")
	ErrSessionRevoked = errors.New("session revoked or expired")
	ErrAnonymous      = errors.New("cannot issue a token for a logged out session")
)

const signingKeyInfo = "kyra-session-token"

type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs session tokens and checks them against a Registry so a logged
// out token stops working before it expires.
type Issuer struct {
	key      []byte
	ttl      time.Duration
	registry Registry
	now      func() time.Time
}

func NewIssuer(secret string, ttl time.Duration, registry Registry) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth: empty session secret")
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(signingKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("auth: derive signing key: %w", err)
	}
	return &Issuer{key: key, ttl: ttl, registry: registry, now: time.Now}, nil
}

// Issue signs a token for an authenticated session and registers its id.
func (i *Issuer) Issue(ctx context.Context, s session.Session) (token, id string, expiresAt time.Time, err error) {
	if !s.Authenticated {
		return "", "", time.Time{}, ErrAnonymous
	}
	now := i.now()
	id = utils.GenerateID()
	expiresAt = now.Add(i.ttl)
	claims := Claims{
		Role: s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if err := i.registry.SaveSession(ctx, id, s.Role, expiresAt); err != nil {
		return "", "", time.Time{}, fmt.Errorf("auth: register session: %w", err)
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("auth: sign token: %w", err)
	}
	return token, id, expiresAt, nil
}

// Resolve turns a token back into the session it was issued for.
func (i *Issuer) Resolve(ctx context.Context, token string) (session.Session, string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return i.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return session.Anonymous(), "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.Role.Valid() || claims.ID == "" {
		return session.Anonymous(), "", ErrInvalidToken
	}
	active, err := i.registry.IsSessionActive(ctx, claims.ID)
	if err != nil {
		return session.Anonymous(), "", fmt.Errorf("auth: check session: %w", err)
	}
	if !active {
		return session.Anonymous(), "", ErrSessionRevoked
	}
	return session.Session{Authenticated: true, Role: claims.Role}, claims.ID, nil
}

// Revoke ends the session with the given id.
func (i *Issuer) Revoke(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return i.registry.RevokeSession(ctx, id)
}
