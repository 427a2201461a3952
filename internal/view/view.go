// Package view implements the navigation state machine of the dashboard and
// the declarative descriptors a presentation layer renders.
//
// The transition functions (Login, Navigate, SelectQuestion) are pure:
// they take the current session.Session and return the next one together with
// the View to show. Machine wraps them for a single interactive user.
package view

import (
	"fmt"
	"strings"

	"github.com/kyra-labs/internship-dashboard/internal/models"
	"github.com/kyra-labs/internship-dashboard/internal/policy"
)

const (
	AppTitle   = "Ky'ra Internship Dashboard"
	LoginTitle = AppTitle + " Login"
	FAQTitle   = "Frequently Asked Questions"

	MsgInvalidCredentials = "Please enter valid credentials."
	MsgLoggedOut          = "You have been logged out."
	MsgUnknownRole        = "Please select one of the listed roles."
)

type Kind string

const (
	KindLogin        Kind = "login"
	KindDashboard    Kind = "dashboard"
	KindRegistration Kind = "registration"
	KindFAQ          Kind = "faq"
)

// Nav is an item of the sidebar navigation.
type Nav string

const (
	NavDashboard Nav = "Dashboard"
	NavRegister  Nav = "Register"
	NavFAQ       Nav = "FAQ"
	NavLogout    Nav = "Logout"
)

// NavItems is the sidebar in display order.
var NavItems = []Nav{NavDashboard, NavRegister, NavFAQ, NavLogout}

// ParseNav matches an item case-insensitively, so "faq" and "FAQ" are the same.
func ParseNav(s string) (Nav, bool) {
	for _, n := range NavItems {
		if strings.EqualFold(s, string(n)) {
			return n, true
		}
	}
	return "", false
}

// View describes one screen. Only the section matching Kind is set.
type View struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Nav     []Nav  `json:"nav,omitempty"`

	Login        *LoginView        `json:"login,omitempty"`
	Dashboard    *DashboardView    `json:"dashboard,omitempty"`
	Registration *RegistrationView `json:"registration,omitempty"`
	FAQ          *FAQView          `json:"faq,omitempty"`
}

type LoginView struct {
	Roles []models.Role `json:"roles"`
}

type DashboardView struct {
	Role      models.Role          `json:"role"`
	Subheader string               `json:"subheader"`
	Widget    policy.Widget        `json:"widget"`
	Index     string               `json:"index,omitempty"`
	Series    []policy.SamplePoint `json:"series,omitempty"`
	Columns   []string             `json:"columns,omitempty"`
	Slices    []policy.PieSlice    `json:"slices,omitempty"`
}

type RegistrationView struct {
	Role         models.Role    `json:"role"`
	FormID       string         `json:"form_id"`
	Fields       []policy.Field `json:"fields"`
	Submitted    bool           `json:"submitted"`
	SubmissionID string         `json:"submission_id,omitempty"`
}

type FAQView struct {
	Questions []string `json:"questions"`
	Selected  string   `json:"selected"`
	Answer    string   `json:"answer"`
}

// LoginScreen builds the login view with an optional error and notice.
func LoginScreen(errMsg, message string) View {
	return View{
		Kind:    KindLogin,
		Title:   LoginTitle,
		Message: message,
		Error:   errMsg,
		Login:   &LoginView{Roles: append([]models.Role(nil), models.Roles...)},
	}
}

// DashboardScreen builds role's dashboard. Every widget except the pie chart
// plots the shared sample series.
func DashboardScreen(role models.Role) View {
	p, ok := policy.For(role)
	if !ok {
		return LoginScreen(MsgInvalidCredentials, "")
	}
	d := &DashboardView{Role: role, Subheader: p.Subheader, Widget: p.Widget}
	switch p.Widget {
	case policy.WidgetPieChart:
		d.Slices = policy.GovernmentSchemes()
	case policy.WidgetTable:
		d.Columns = append([]string(nil), policy.TableColumns...)
		d.Series = policy.SampleSeries()
	default:
		d.Index = "Month"
		d.Series = policy.SampleSeries()
	}
	return View{
		Kind:      KindDashboard,
		Title:     fmt.Sprintf("%s Dashboard", role),
		Nav:       navItems(),
		Dashboard: d,
	}
}

// RegistrationScreen builds role's registration form.
func RegistrationScreen(role models.Role) View {
	p, ok := policy.For(role)
	if !ok {
		return LoginScreen(MsgInvalidCredentials, "")
	}
	return View{
		Kind:  KindRegistration,
		Title: fmt.Sprintf("%s Registration Form", role),
		Nav:   navItems(),
		Registration: &RegistrationView{
			Role:   role,
			FormID: policy.FormID(role),
			Fields: p.Fields,
		},
	}
}

// FAQScreen shows question's answer. An empty question selects the first one.
// Unknown questions report false.
func FAQScreen(question string) (View, bool) {
	questions := policy.Questions()
	if question == "" {
		question = questions[0]
	}
	answer, ok := policy.Answer(question)
	if !ok {
		return View{}, false
	}
	return View{
		Kind:  KindFAQ,
		Title: FAQTitle,
		Nav:   navItems(),
		FAQ: &FAQView{
			Questions: questions,
			Selected:  question,
			Answer:    answer,
		},
	}, true
}

func navItems() []Nav {
	return append([]Nav(nil), NavItems...)
}
