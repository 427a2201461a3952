package tui

import (
	"strings"
	"testing"

	"github.com/kyra-labs/internship-dashboard/internal/models"
	"github.com/kyra-labs/internship-dashboard/internal/view"
)

func TestRenderWidgetPerRole(t *testing.T) {
	cases := map[models.Role][]string{
		models.RoleStudent:    {"●", "Jan", "Mar"},
		models.RoleCollege:    {"Jan  │", "██████ 1"},
		models.RoleMentor:     {"███", "Jan"},
		models.RoleMSME:       {"Month", "Internships", "Mar"},
		models.RoleGovernment: {"Skilling", "30.0%", "MSME"},
	}
	for role, wants := range cases {
		out := renderWidget(view.DashboardScreen(role).Dashboard)
		for _, want := range wants {
			if !strings.Contains(out, want) {
				t.Fatalf("%s: expected %q in\n%s", role, want, out)
			}
		}
	}
}

func TestLineChartHasNoFill(t *testing.T) {
	out := renderWidget(view.DashboardScreen(models.RoleStudent).Dashboard)
	if strings.Contains(out, "█") {
		t.Fatalf("line chart should only mark values:\n%s", out)
	}
	if strings.Count(out, "●") != 3 {
		t.Fatalf("expected one marker per month:\n%s", out)
	}
}
