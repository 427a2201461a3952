package tui

import (
	"fmt"
	"strings"

	"github.com/kyra-labs/internship-dashboard/internal/policy"
	"github.com/kyra-labs/internship-dashboard/internal/view"
)

const barScale = 6

// renderWidget draws a dashboard widget as plain text.
func renderWidget(d *view.DashboardView) string {
	switch d.Widget {
	case policy.WidgetBarChart:
		return barChart(d.Series)
	case policy.WidgetLineChart:
		return columnChart(d.Series, false)
	case policy.WidgetAreaChart:
		return columnChart(d.Series, true)
	case policy.WidgetTable:
		return table(d.Columns, d.Series)
	case policy.WidgetPieChart:
		return pieLegend(d.Slices)
	}
	return ""
}

func barChart(series []policy.SamplePoint) string {
	var b strings.Builder
	for _, p := range series {
		fmt.Fprintf(&b, "%-4s │%s %d\n", p.Month, strings.Repeat("█", p.Internships*barScale), p.Internships)
	}
	return strings.TrimRight(b.String(), "\n")
}

// columnChart plots one column per month. Line charts mark only the value,
// area charts fill everything below it.
func columnChart(series []policy.SamplePoint, filled bool) string {
	top := 0
	for _, p := range series {
		if p.Internships > top {
			top = p.Internships
		}
	}
	var b strings.Builder
	for level := top; level >= 1; level-- {
		fmt.Fprintf(&b, "%2d │", level)
		for _, p := range series {
			cell := "    "
			switch {
			case p.Internships == level:
				cell = "  ● "
				if filled {
					cell = " ███"
				}
			case filled && p.Internships > level:
				cell = " ███"
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	b.WriteString("   └" + strings.Repeat("────", len(series)) + "\n    ")
	for _, p := range series {
		fmt.Fprintf(&b, " %-3s", p.Month)
	}
	return b.String()
}

func table(columns []string, series []policy.SamplePoint) string {
	var b strings.Builder
	for _, c := range columns {
		fmt.Fprintf(&b, "%-12s", c)
	}
	b.WriteString("\n" + strings.Repeat("─", 12*len(columns)) + "\n")
	for _, p := range series {
		fmt.Fprintf(&b, "%-12s%-12d\n", p.Month, p.Internships)
	}
	return strings.TrimRight(b.String(), "\n")
}

func pieLegend(slices []policy.PieSlice) string {
	var b strings.Builder
	for _, s := range slices {
		fmt.Fprintf(&b, "%-18s %s %s\n", s.Label, strings.Repeat("■", s.Weight/5), s.Percent)
	}
	return strings.TrimRight(b.String(), "\n")
}
