package policy

import (
	"reflect"
	"testing"

	"github.com/kyra-labs/internship-dashboard/internal/models"
)

func TestEveryRoleHasAPolicy(t *testing.T) {
	for _, role := range models.Roles {
		p, ok := For(role)
		if !ok {
			t.Fatalf("no policy for %s", role)
		}
		if p.Role != role {
			t.Fatalf("policy for %s reports role %s", role, p.Role)
		}
		if p.Subheader == "" || p.Widget == "" {
			t.Fatalf("incomplete policy for %s: %+v", role, p)
		}
	}
	if _, ok := For("Admin"); ok {
		t.Fatalf("unexpected policy for unknown role")
	}
}

func TestWidgetPerRole(t *testing.T) {
	want := map[models.Role]Widget{
		models.RoleStudent:    WidgetLineChart,
		models.RoleCollege:    WidgetBarChart,
		models.RoleMentor:     WidgetAreaChart,
		models.RoleMSME:       WidgetTable,
		models.RoleGovernment: WidgetPieChart,
	}
	for role, widget := range want {
		p, _ := For(role)
		if p.Widget != widget {
			t.Fatalf("%s: expected %s, got %s", role, widget, p.Widget)
		}
	}
}

func TestFieldKeys(t *testing.T) {
	cases := map[models.Role][]string{
		models.RoleStudent:    {"name", "email", "phone", "college", "course", "semester"},
		models.RoleCollege:    {"name", "email", "phone", "college_name", "coordinator"},
		models.RoleMentor:     {"name", "email", "phone", "domain"},
		models.RoleMSME:       {"name", "email", "phone", "company", "industry"},
		models.RoleGovernment: {"name", "email", "phone", "department", "designation"},
	}
	for role, keys := range cases {
		if got := FieldKeys(role); !reflect.DeepEqual(got, keys) {
			t.Fatalf("%s: expected %v, got %v", role, keys, got)
		}
	}
	if FieldKeys("Admin") != nil {
		t.Fatalf("expected no fields for unknown role")
	}
}

func TestForReturnsACopy(t *testing.T) {
	p, _ := For(models.RoleMSME)
	p.Fields[0].Label = "changed"
	again, _ := For(models.RoleMSME)
	if again.Fields[0].Label != "Name" {
		t.Fatalf("policy table was mutated through For: %q", again.Fields[0].Label)
	}
}

func TestFormID(t *testing.T) {
	if got := FormID(models.RoleMSME); got != "msme_form" {
		t.Fatalf("expected msme_form, got %s", got)
	}
	if got := FormID(models.RoleStudent); got != "student_form" {
		t.Fatalf("expected student_form, got %s", got)
	}
}

func TestSampleSeries(t *testing.T) {
	want := []SamplePoint{{"Jan", 1}, {"Feb", 2}, {"Mar", 3}}
	got := SampleSeries()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	got[0].Internships = 99
	if SampleSeries()[0].Internships != 1 {
		t.Fatalf("sample series must be immutable")
	}
}

func TestGovernmentSchemes(t *testing.T) {
	want := []PieSlice{
		{Label: "Skilling", Weight: 30, Percent: "30.0%"},
		{Label: "MSME", Weight: 40, Percent: "40.0%"},
		{Label: "Women Empowerment", Weight: 30, Percent: "30.0%"},
	}
	if got := GovernmentSchemes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFAQ(t *testing.T) {
	answer, ok := Answer("How to register?")
	if !ok {
		t.Fatalf("expected an answer")
	}
	if answer != "Go to the 'Register' tab and fill out the form based on your role." {
		t.Fatalf("unexpected answer %q", answer)
	}
	if _, ok := Answer("how to register?"); ok {
		t.Fatalf("lookup must be exact")
	}
	qs := Questions()
	if len(qs) != 4 || qs[0] != "How to register?" || qs[3] != "Where do I provide feedback?" {
		t.Fatalf("unexpected question order %v", qs)
	}
	if len(FAQs()) != 4 {
		t.Fatalf("expected four entries")
	}
}
