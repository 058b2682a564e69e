package present

import (
	"fmt"
	"strings"

	"hockey-odds-service/internal/domain"
)

// Toss-up and heavy-favourite thresholds, inclusive on both ends.
const (
	tossUpLow          = 0.40
	tossUpHigh         = 0.60
	heavyFavouriteProb = 0.90
)

// Bucket names a display grouping of matchups. Buckets are independent
// predicates over the same query-filtered sequence, not a partition; with
// malformed probabilities a matchup may land in both or neither.
type Bucket string

const (
	BucketAll             Bucket = "all"
	BucketTossUps         Bucket = "tossups"
	BucketHeavyFavourites Bucket = "favourites"
)

// ParseBucket resolves a query-string bucket name. Empty means all.
func ParseBucket(raw string) (Bucket, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(BucketAll):
		return BucketAll, nil
	case string(BucketTossUps), "toss-ups":
		return BucketTossUps, nil
	case string(BucketHeavyFavourites), "heavy-favourites":
		return BucketHeavyFavourites, nil
	default:
		return "", fmt.Errorf("unknown bucket %q", raw)
	}
}

// FilterByQuery retains matchups whose home or away team contains the query,
// case-insensitively. A query that trims to empty returns the input slice
// unchanged. The filter is stable: surviving matchups keep their order.
func FilterByQuery(matchups []domain.Matchup, query string) []domain.Matchup {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return matchups
	}
	out := make([]domain.Matchup, 0, len(matchups))
	for _, m := range matchups {
		if strings.Contains(strings.ToLower(m.HomeTeam), q) || strings.Contains(strings.ToLower(m.AwayTeam), q) {
			out = append(out, m)
		}
	}
	return out
}

// IsTossUp reports whether both win probabilities sit inside [0.40, 0.60].
// Both bounds are checked independently rather than relying on the pair
// being complementary.
func IsTossUp(m domain.Matchup) bool {
	return inTossUpRange(m.Probability.Home) && inTossUpRange(m.Probability.Away)
}

func inTossUpRange(p float64) bool {
	return p >= tossUpLow && p <= tossUpHigh
}

// IsHeavyFavourite reports whether either side is at or above 0.90.
func IsHeavyFavourite(m domain.Matchup) bool {
	return m.Probability.Home >= heavyFavouriteProb || m.Probability.Away >= heavyFavouriteProb
}

// FilterBucket applies the bucket predicate as an independent pass over the
// (already query-filtered) matchups, preserving order.
func FilterBucket(matchups []domain.Matchup, bucket Bucket) []domain.Matchup {
	switch bucket {
	case BucketTossUps:
		return filterMatchups(matchups, IsTossUp)
	case BucketHeavyFavourites:
		return filterMatchups(matchups, IsHeavyFavourite)
	default:
		return matchups
	}
}

func filterMatchups(matchups []domain.Matchup, keep func(domain.Matchup) bool) []domain.Matchup {
	out := make([]domain.Matchup, 0, len(matchups))
	for _, m := range matchups {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
