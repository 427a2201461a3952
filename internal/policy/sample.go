package policy

import "fmt"

// SamplePoint is one row of the demo series shared by every chart.
type SamplePoint struct {
	Month       string `json:"month"`
	Internships int    `json:"internships"`
}

// PieSlice is one weighted category of the government schemes chart.
type PieSlice struct {
	Label   string `json:"label"`
	Weight  int    `json:"weight"`
	Percent string `json:"percent"`
}

var sampleSeries = [...]SamplePoint{
	{Month: "Jan", Internships: 1},
	{Month: "Feb", Internships: 2},
	{Month: "Mar", Internships: 3},
}

var schemeWeights = [...]struct {
	label  string
	weight int
}{
	{"Skilling", 30},
	{"MSME", 40},
	{"Women Empowerment", 30},
}

// TableColumns are the column headers of the tabular widget.
var TableColumns = []string{"Month", "Internships"}

// SampleSeries returns a fresh copy of the demo series.
func SampleSeries() []SamplePoint {
	out := make([]SamplePoint, len(sampleSeries))
	copy(out, sampleSeries[:])
	return out
}

// GovernmentSchemes returns the pie slices with percentage labels
// formatted to one decimal place.
func GovernmentSchemes() []PieSlice {
	total := 0
	for _, s := range schemeWeights {
		total += s.weight
	}
	out := make([]PieSlice, len(schemeWeights))
	for i, s := range schemeWeights {
		out[i] = PieSlice{
			Label:   s.label,
			Weight:  s.weight,
			Percent: fmt.Sprintf("%.1f%%", float64(s.weight)*100/float64(total)),
		}
	}
	return out
}
