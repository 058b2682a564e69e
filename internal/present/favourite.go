package present

import "math"

// minDisplayScale keeps the breakdown chart from collapsing to a zero-width
// range when every contribution is small or the list is empty.
const minDisplayScale = 3

// ResolveFavourite returns the favoured side. Ties go to the home team by
// convention.
func ResolveFavourite(home, away string, probHome, probAway float64) string {
	if probHome >= probAway {
		return home
	}
	return away
}

// DisplayScale returns the symmetric axis bound for rendering signed
// breakdown magnitudes: the largest absolute contribution, floored at 3.
func DisplayScale(items []SignedItem) float64 {
	scale := float64(minDisplayScale)
	for _, item := range items {
		if abs := math.Abs(item.Signed); abs > scale {
			scale = abs
		}
	}
	return scale
}
