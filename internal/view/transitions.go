package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/kyra-labs/internship-dashboard/internal/models"
	"github.com/kyra-labs/internship-dashboard/internal/registration"
	"github.com/kyra-labs/internship-dashboard/internal/session"
	"github.com/kyra-labs/internship-dashboard/internal/utils"
)

// State is the screen the machine is on.
type State string

const (
	StateLoggedOut State = "logged_out"
	StateDashboard State = "dashboard"
	StateRegister  State = "register"
	StateFAQ       State = "faq"
)

// StateOf maps a view to the machine state it belongs to.
func StateOf(v View) State {
	switch v.Kind {
	case KindDashboard:
		return StateDashboard
	case KindRegistration:
		return StateRegister
	case KindFAQ:
		return StateFAQ
	default:
		return StateLoggedOut
	}
}

// Login evaluates the login form. On failure the returned session is logged
// out and the view is the login screen carrying the error.
func Login(c session.Credentials) (session.Session, View, error) {
	next, err := session.Login(c)
	return next, loginResult(next, err), err
}

func loginResult(s session.Session, err error) View {
	switch {
	case errors.Is(err, session.ErrUnknownRole):
		return LoginScreen(MsgUnknownRole, "")
	case err != nil:
		return LoginScreen(MsgInvalidCredentials, "")
	}
	v := DashboardScreen(s.Role)
	v.Message = fmt.Sprintf("Welcome %s!", s.Role)
	return v
}

// Navigate applies a sidebar selection. While logged out every selection
// yields the login screen; Logout returns the logged out session.
func Navigate(s session.Session, nav Nav) (session.Session, View) {
	if !s.Authenticated {
		return session.Anonymous(), LoginScreen("", "")
	}
	switch nav {
	case NavRegister:
		return s, RegistrationScreen(s.Role)
	case NavFAQ:
		v, _ := FAQScreen("")
		return s, v
	case NavLogout:
		return session.Logout(), LoginScreen("", MsgLoggedOut)
	default:
		return s, DashboardScreen(s.Role)
	}
}

// SelectQuestion shows the answer to question. It reports false for a
// question that is not in the FAQ.
func SelectQuestion(s session.Session, question string) (View, bool) {
	if !s.Authenticated {
		return LoginScreen("", ""), true
	}
	return FAQScreen(question)
}

// Acknowledge is the registration screen after a submit.
func Acknowledge(s session.Session, r registration.Receipt) View {
	if !s.Authenticated {
		return LoginScreen("", "")
	}
	v := RegistrationScreen(s.Role)
	v.Message = r.Message
	v.Registration.Submitted = true
	v.Registration.SubmissionID = r.ID
	return v
}

// Submitter records registration submissions.
type Submitter interface {
	Submit(ctx context.Context, sub registration.Submission) registration.Receipt
}

// Machine drives the navigation state machine for one interactive user.
// It is not safe for concurrent use.
type Machine struct {
	holder    *session.Holder
	submitter Submitter
	sessionID string
	current   View
}

func NewMachine(submitter Submitter) *Machine {
	return &Machine{
		holder:    session.NewHolder(),
		submitter: submitter,
		current:   LoginScreen("", ""),
	}
}

func (m *Machine) State() State             { return StateOf(m.current) }
func (m *Machine) Session() session.Session { return m.holder.Current() }
func (m *Machine) View() View               { return m.current }

// SubmitLogin is only honoured on the login screen.
func (m *Machine) SubmitLogin(email, password string, role models.Role) View {
	if m.State() != StateLoggedOut {
		return m.current
	}
	err := m.holder.Login(email, password, role)
	if err == nil {
		m.sessionID = utils.GenerateID()
	}
	m.current = loginResult(m.holder.Current(), err)
	return m.current
}

func (m *Machine) SelectNav(nav Nav) View {
	next, v := Navigate(m.holder.Current(), nav)
	if !next.Authenticated {
		m.holder.Logout()
		m.sessionID = ""
	}
	m.current = v
	return m.current
}

// SelectFAQQuestion keeps the current screen and reports an error when the
// question is unknown.
func (m *Machine) SelectFAQQuestion(question string) View {
	v, ok := SelectQuestion(m.holder.Current(), question)
	if !ok {
		v = m.current
		v.Error = fmt.Sprintf("unknown question %q", question)
		return v
	}
	m.current = v
	return m.current
}

func (m *Machine) SubmitRegistration(ctx context.Context, fields map[string]string) View {
	cur := m.holder.Current()
	if !cur.Authenticated {
		m.current = LoginScreen("", "")
		return m.current
	}
	receipt := m.submitter.Submit(ctx, registration.Submission{
		SessionID: m.sessionID,
		Role:      cur.Role,
		Fields:    fields,
	})
	m.current = Acknowledge(cur, receipt)
	return m.current
}
