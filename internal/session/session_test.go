package session

import (
	"errors"
	"testing"

	"github.com/kyra-labs/internship-dashboard/internal/models"
)

func TestLoginAcceptsEveryRole(t *testing.T) {
	for _, role := range models.Roles {
		h := NewHolder()
		if err := h.Login("a@b.c", "x", role); err != nil {
			t.Fatalf("login as %s: %v", role, err)
		}
		got := h.Current()
		if !got.Authenticated || got.Role != role {
			t.Fatalf("expected authenticated %s, got %+v", role, got)
		}
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	cases := []Credentials{
		{Email: "", Password: "x", Role: models.RoleStudent},
		{Email: "a@b.c", Password: "", Role: models.RoleStudent},
		{Email: "", Password: "", Role: "Nobody"},
	}
	for _, c := range cases {
		s, err := Login(c)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%+v: expected ErrInvalidCredentials, got %v", c, err)
		}
		if s.Authenticated {
			t.Fatalf("%+v: session must stay logged out", c)
		}
	}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	for _, role := range []models.Role{"", "Admin", "student"} {
		_, err := Login(Credentials{Email: "a@b.c", Password: "x", Role: role})
		if !errors.Is(err, ErrUnknownRole) {
			t.Fatalf("role %q: expected ErrUnknownRole, got %v", role, err)
		}
	}
}

func TestFailedLoginKeepsHolderState(t *testing.T) {
	h := NewHolder()
	if err := h.Login("a@b.c", "x", models.RoleMentor); err != nil {
		t.Fatal(err)
	}
	if err := h.Login("", "x", models.RoleMSME); err == nil {
		t.Fatalf("expected error")
	}
	if got := h.Current(); got.Role != models.RoleMentor || !got.Authenticated {
		t.Fatalf("failed login changed state: %+v", got)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	h := NewHolder()
	if err := h.Login("a@b.c", "x", models.RoleCollege); err != nil {
		t.Fatal(err)
	}
	h.Logout()
	first := h.Current()
	h.Logout()
	if h.Current() != first || first != Anonymous() {
		t.Fatalf("expected anonymous session after logout, got %+v", h.Current())
	}
	if first.Role != "" {
		t.Fatalf("role must be cleared on logout")
	}
}
