package view

import (
	"context"
	"reflect"
	"testing"

	"github.com/kyra-labs/internship-dashboard/internal/models"
	"github.com/kyra-labs/internship-dashboard/internal/policy"
	"github.com/kyra-labs/internship-dashboard/internal/registration"
	"github.com/kyra-labs/internship-dashboard/internal/session"
)

type recordingSubmitter struct {
	subs []registration.Submission
}

func (r *recordingSubmitter) Submit(_ context.Context, sub registration.Submission) registration.Receipt {
	r.subs = append(r.subs, sub)
	return registration.Receipt{ID: "REG00TEST1", Message: registration.MsgSubmitted}
}

func loggedIn(role models.Role) session.Session {
	return session.Session{Authenticated: true, Role: role}
}

func TestDashboardWidgetPerRole(t *testing.T) {
	want := map[models.Role]policy.Widget{
		models.RoleStudent:    policy.WidgetLineChart,
		models.RoleCollege:    policy.WidgetBarChart,
		models.RoleMentor:     policy.WidgetAreaChart,
		models.RoleMSME:       policy.WidgetTable,
		models.RoleGovernment: policy.WidgetPieChart,
	}
	for role, widget := range want {
		v := DashboardScreen(role)
		if v.Kind != KindDashboard || v.Dashboard == nil {
			t.Fatalf("%s: expected dashboard view, got %+v", role, v)
		}
		if v.Dashboard.Widget != widget {
			t.Fatalf("%s: expected %s, got %s", role, widget, v.Dashboard.Widget)
		}
		if v.Title != string(role)+" Dashboard" {
			t.Fatalf("%s: unexpected title %q", role, v.Title)
		}
	}
}

func TestDashboardData(t *testing.T) {
	line := DashboardScreen(models.RoleStudent).Dashboard
	if line.Index != "Month" || len(line.Series) != 3 || line.Slices != nil {
		t.Fatalf("unexpected line chart data %+v", line)
	}
	table := DashboardScreen(models.RoleMSME).Dashboard
	if !reflect.DeepEqual(table.Columns, []string{"Month", "Internships"}) || len(table.Series) != 3 {
		t.Fatalf("unexpected table data %+v", table)
	}
	pie := DashboardScreen(models.RoleGovernment).Dashboard
	if len(pie.Slices) != 3 || pie.Series != nil {
		t.Fatalf("unexpected pie data %+v", pie)
	}
	if pie.Subheader != "Government Schemes Overview" {
		t.Fatalf("unexpected subheader %q", pie.Subheader)
	}
}

func TestMSMERegistrationFields(t *testing.T) {
	v := RegistrationScreen(models.RoleMSME)
	if v.Title != "MSME Registration Form" || v.Registration.FormID != "msme_form" {
		t.Fatalf("unexpected registration view %+v", v)
	}
	var keys []string
	for _, f := range v.Registration.Fields {
		keys = append(keys, f.Key)
	}
	want := []string{"name", "email", "phone", "company", "industry"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
}

func TestLoginTransition(t *testing.T) {
	s, v, err := Login(session.Credentials{Email: "a@b.c", Password: "x", Role: models.RoleMentor})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !s.Authenticated || v.Kind != KindDashboard || v.Message != "Welcome Mentor!" {
		t.Fatalf("unexpected result %+v %+v", s, v)
	}

	s, v, err = Login(session.Credentials{Email: "", Password: "x", Role: models.RoleMentor})
	if err == nil || s.Authenticated {
		t.Fatalf("expected failed login")
	}
	if v.Kind != KindLogin || v.Error != MsgInvalidCredentials {
		t.Fatalf("expected login view with error, got %+v", v)
	}

	_, v, _ = Login(session.Credentials{Email: "a@b.c", Password: "x", Role: "Admin"})
	if v.Error != MsgUnknownRole {
		t.Fatalf("expected unknown role message, got %q", v.Error)
	}
}

func TestNavigateWhileLoggedOutShowsLogin(t *testing.T) {
	for _, nav := range NavItems {
		s, v := Navigate(session.Anonymous(), nav)
		if s.Authenticated || v.Kind != KindLogin {
			t.Fatalf("%s: expected login view, got %+v", nav, v)
		}
	}
}

func TestNavigate(t *testing.T) {
	s := loggedIn(models.RoleCollege)
	if _, v := Navigate(s, NavRegister); v.Kind != KindRegistration {
		t.Fatalf("expected registration, got %s", v.Kind)
	}
	if _, v := Navigate(s, NavFAQ); v.Kind != KindFAQ || v.FAQ.Selected != "How to register?" {
		t.Fatalf("expected faq with first question selected, got %+v", v)
	}
	if _, v := Navigate(s, NavDashboard); v.Kind != KindDashboard {
		t.Fatalf("expected dashboard, got %s", v.Kind)
	}
	next, v := Navigate(s, NavLogout)
	if next.Authenticated || next.Role != "" || v.Kind != KindLogin || v.Message != MsgLoggedOut {
		t.Fatalf("unexpected logout result %+v %+v", next, v)
	}
}

func TestSelectQuestion(t *testing.T) {
	v, ok := SelectQuestion(loggedIn(models.RoleStudent), "How to register?")
	if !ok {
		t.Fatalf("expected question to be found")
	}
	if v.FAQ.Answer != "Go to the 'Register' tab and fill out the form based on your role." {
		t.Fatalf("unexpected answer %q", v.FAQ.Answer)
	}
	if _, ok := SelectQuestion(loggedIn(models.RoleStudent), "What is this?"); ok {
		t.Fatalf("expected unknown question")
	}
	if v, _ := SelectQuestion(session.Anonymous(), "How to register?"); v.Kind != KindLogin {
		t.Fatalf("expected login while logged out")
	}
}

func TestParseNav(t *testing.T) {
	if n, ok := ParseNav("faq"); !ok || n != NavFAQ {
		t.Fatalf("expected FAQ, got %q %v", n, ok)
	}
	if _, ok := ParseNav("settings"); ok {
		t.Fatalf("expected unknown nav")
	}
}

func TestMachineFlow(t *testing.T) {
	sub := &recordingSubmitter{}
	m := NewMachine(sub)
	if m.State() != StateLoggedOut {
		t.Fatalf("expected initial state logged out, got %s", m.State())
	}

	if v := m.SelectNav(NavDashboard); v.Kind != KindLogin {
		t.Fatalf("expected login view while logged out, got %s", v.Kind)
	}

	v := m.SubmitLogin("", "secret", models.RoleMSME)
	if m.State() != StateLoggedOut || v.Error != MsgInvalidCredentials {
		t.Fatalf("expected failed login, got %s %+v", m.State(), v)
	}

	m.SubmitLogin("owner@example.com", "secret", models.RoleMSME)
	if m.State() != StateDashboard {
		t.Fatalf("expected dashboard, got %s", m.State())
	}

	m.SelectNav(NavRegister)
	if m.State() != StateRegister {
		t.Fatalf("expected register, got %s", m.State())
	}
	v = m.SubmitRegistration(context.Background(), map[string]string{})
	if v.Message != registration.MsgSubmitted || !v.Registration.Submitted {
		t.Fatalf("blank submission must be acknowledged, got %+v", v)
	}
	if len(sub.subs) != 1 || sub.subs[0].Role != models.RoleMSME || sub.subs[0].SessionID == "" {
		t.Fatalf("unexpected submissions %+v", sub.subs)
	}

	m.SelectNav(NavFAQ)
	if v := m.SelectFAQQuestion("Where do I provide feedback?"); v.FAQ.Answer != "Mentors can provide feedback via their dashboard section." {
		t.Fatalf("unexpected answer %+v", v.FAQ)
	}
	if v := m.SelectFAQQuestion("nope"); v.Error == "" || m.View().Error != "" {
		t.Fatalf("unknown question should report an error without changing the screen")
	}

	m.SelectNav(NavLogout)
	if m.State() != StateLoggedOut || m.Session().Authenticated {
		t.Fatalf("expected logged out after logout, got %s %+v", m.State(), m.Session())
	}
	m.SelectNav(NavLogout)
	if m.Session() != session.Anonymous() {
		t.Fatalf("second logout must be a no-op")
	}
}

func TestMachineIgnoresLoginWhenAuthenticated(t *testing.T) {
	m := NewMachine(&recordingSubmitter{})
	m.SubmitLogin("a@b.c", "x", models.RoleStudent)
	m.SubmitLogin("a@b.c", "x", models.RoleGovernment)
	if m.Session().Role != models.RoleStudent {
		t.Fatalf("login on a non-login screen must be ignored, role is %s", m.Session().Role)
	}
}
