// Package policy holds the fixed role tables that decide which dashboard widget
// and which registration fields each role gets, plus the static sample data and
// FAQ content every view is built from.
package policy

import (
	"strings"

	"github.com/kyra-labs/internship-dashboard/internal/models"
)

type Widget string

const (
	WidgetLineChart Widget = "line_chart"
	WidgetBarChart  Widget = "bar_chart"
	WidgetAreaChart Widget = "area_chart"
	WidgetTable     Widget = "table"
	WidgetPieChart  Widget = "pie_chart"
)

// Field is one free-text input of a registration form.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Policy is everything role-specific about the dashboard and registration views.
type Policy struct {
	Role      models.Role `json:"role"`
	Widget    Widget      `json:"widget"`
	Subheader string      `json:"subheader"`
	Fields    []Field     `json:"fields"`
}

var contactFields = []Field{
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "phone", Label: "Phone"},
}

func withContact(extra ...Field) []Field {
	out := make([]Field, 0, len(contactFields)+len(extra))
	out = append(out, contactFields...)
	return append(out, extra...)
}

var policies = map[models.Role]Policy{
	models.RoleStudent: {
		Role:      models.RoleStudent,
		Widget:    WidgetLineChart,
		Subheader: "Internship Progress",
		Fields: withContact(
			Field{Key: "college", Label: "College"},
			Field{Key: "course", Label: "Course"},
			Field{Key: "semester", Label: "Semester"},
		),
	},
	models.RoleCollege: {
		Role:      models.RoleCollege,
		Widget:    WidgetBarChart,
		Subheader: "Students Overview",
		Fields: withContact(
			Field{Key: "college_name", Label: "College Name"},
			Field{Key: "coordinator", Label: "Coordinator Name"},
		),
	},
	models.RoleMentor: {
		Role:      models.RoleMentor,
		Widget:    WidgetAreaChart,
		Subheader: "Mentor Feedback Overview",
		Fields: withContact(
			Field{Key: "domain", Label: "Domain Expertise"},
		),
	},
	models.RoleMSME: {
		Role:      models.RoleMSME,
		Widget:    WidgetTable,
		Subheader: "Posted Internships",
		Fields: withContact(
			Field{Key: "company", Label: "Company Name"},
			Field{Key: "industry", Label: "Industry Type"},
		),
	},
	models.RoleGovernment: {
		Role:      models.RoleGovernment,
		Widget:    WidgetPieChart,
		Subheader: "Government Schemes Overview",
		Fields: withContact(
			Field{Key: "department", Label: "Department"},
			Field{Key: "designation", Label: "Designation"},
		),
	},
}

// For returns the policy of role. The returned Fields slice is a copy.
func For(role models.Role) (Policy, bool) {
	p, ok := policies[role]
	if !ok {
		return Policy{}, false
	}
	p.Fields = append([]Field(nil), p.Fields...)
	return p, true
}

// FieldKeys returns the registration field keys of role in form order.
func FieldKeys(role models.Role) []string {
	p, ok := policies[role]
	if !ok {
		return nil
	}
	keys := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		keys[i] = f.Key
	}
	return keys
}

// FormID is the identifier of role's registration form, e.g. "msme_form".
func FormID(role models.Role) string {
	return strings.ToLower(string(role)) + "_form"
}
