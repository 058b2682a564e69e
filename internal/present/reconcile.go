package present

import (
	"math"

	"hockey-odds-service/internal/domain"
)

// SignedItem is a breakdown item oriented for display: positive magnitudes
// favour the home side, negative the away side, zero is neutral.
type SignedItem struct {
	domain.BreakdownItem
	Signed float64 `json:"signed"`
}

// Sign maps a breakdown item to its signed form for the given pairing.
// A team that is neither side (or empty) counts as neutral.
func Sign(item domain.BreakdownItem, home, away string) SignedItem {
	signed := 0.0
	switch item.Team {
	case home:
		signed = item.Points
	case away:
		signed = -item.Points
	}
	return SignedItem{BreakdownItem: item, Signed: signed}
}

// Reconcile produces the display breakdown for a matchup. Multiple "form"
// rows can contradict or double-count each other (upstream emits one per
// side), so only the dominant one survives, appended after the non-form rows.
// When two or more form rows tie on absolute magnitude the form signal is
// ambiguous and every form row is dropped. Non-form rows are never reordered.
func Reconcile(items []domain.BreakdownItem, home, away string) []SignedItem {
	result := make([]SignedItem, 0, len(items))
	var formItems []SignedItem

	for _, item := range items {
		signed := Sign(item, home, away)
		if item.Factor == domain.FactorForm {
			formItems = append(formItems, signed)
			continue
		}
		result = append(result, signed)
	}

	if len(formItems) == 0 {
		return result
	}

	maxAbs := 0.0
	for _, f := range formItems {
		if abs := math.Abs(f.Signed); abs > maxAbs {
			maxAbs = abs
		}
	}

	// Exact equality on purpose: upstream points are pre-rounded scores.
	dominant := SignedItem{}
	count := 0
	for _, f := range formItems {
		if math.Abs(f.Signed) == maxAbs {
			dominant = f
			count++
		}
	}
	if count == 1 {
		result = append(result, dominant)
	}
	return result
}
