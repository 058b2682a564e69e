package present

import "fmt"

// GoalsPlaceholder renders in place of an unknown projected total. Absence
// and a projected total of zero must stay distinguishable.
const GoalsPlaceholder = "—"

// FormatOdds renders a win probability for display. In percent mode the
// value is scaled by 100 and suffixed with a percent sign; either way the
// result carries exactly two decimals using fmt's fixed-point rounding.
func FormatOdds(value float64, percentMode bool) string {
	if percentMode {
		return fmt.Sprintf("%.2f%%", value*100)
	}
	return fmt.Sprintf("%.2f", value)
}

// FormatGoals renders a projected goals total, or the placeholder when the
// upstream snapshot carried no projection.
func FormatGoals(value *float64) string {
	if value == nil {
		return GoalsPlaceholder
	}
	return fmt.Sprintf("%.2f", *value)
}
