// Package session models the per-user authentication state of the dashboard.
//
// A Session is a plain value: handlers receive one, apply Login or Logout and
// hand the result back to whatever carries it (a cookie token on the web, a
// Holder in the terminal client). Nothing here is global.
package session

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/kyra-labs/internship-dashboard/internal/models"
)

var (
	// ErrInvalidCredentials is returned when the email or the password is empty.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnknownRole is returned when the selected role is not one of models.Roles.
	ErrUnknownRole = errors.New("unknown role")
)

// Session is the authentication state of one user.
// Role is meaningful only while Authenticated is true.
type Session struct {
	Authenticated bool        `json:"authenticated"`
	Role          models.Role `json:"role,omitempty"`
}

// Credentials is what the login form submits. Nothing is verified beyond
// presence: any non-empty email and password are accepted.
type Credentials struct {
	Email    string      `json:"email" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"required,oneof=Student College Mentor MSME Government"`
}

var validate = validator.New()

// Anonymous is the initial, logged out session.
func Anonymous() Session {
	return Session{}
}

// Login turns valid credentials into an authenticated session for the chosen role.
func Login(c Credentials) (Session, error) {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Anonymous(), err
		}
		for _, fe := range verrs {
			if fe.Field() == "Email" || fe.Field() == "Password" {
				return Anonymous(), ErrInvalidCredentials
			}
		}
		return Anonymous(), ErrUnknownRole
	}
	return Session{Authenticated: true, Role: c.Role}, nil
}

// Logout returns the logged out session regardless of the current one.
func Logout() Session {
	return Anonymous()
}

// Holder keeps a single session in memory for one interactive user.
// It is not safe for concurrent use.
type Holder struct {
	current Session
}

func NewHolder() *Holder {
	return &Holder{current: Anonymous()}
}

// Login authenticates the holder. On error the previous state is kept.
func (h *Holder) Login(email, password string, role models.Role) error {
	s, err := Login(Credentials{Email: email, Password: password, Role: role})
	if err != nil {
		return err
	}
	h.current = s
	return nil
}

func (h *Holder) Logout() {
	h.current = Logout()
}

// Current returns a snapshot of the held session.
func (h *Holder) Current() Session {
	return h.current
}
