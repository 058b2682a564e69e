package domain

// Factor tags used by the upstream scoring engine. The set is closed on the
// upstream side; unknown tags are passed through unmapped rather than rejected.
const (
	FactorPointsPct    = "points_pct"
	FactorHomeAway     = "home_away"
	FactorInjuries     = "injuries"
	FactorGoals        = "goals"
	FactorGoalsBalance = "goals_balance"
	FactorForm         = "form"
	FactorGoalie       = "goalie"
	FactorH2HRecent    = "h2h_recent"
)

// Probability is the complementary win-probability pair for a matchup.
// The engine assumes home+away == 1 but never enforces it.
type Probability struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// Score carries the upstream scoring-engine point totals. Passed through untouched.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
	Diff int `json:"diff"`
}

// BreakdownItem is one scoring factor's contribution to a matchup.
// Team is empty when the factor is neutral.
type BreakdownItem struct {
	Factor string  `json:"factor"`
	Team   string  `json:"team,omitempty"`
	Points float64 `json:"points"`
	Reason string  `json:"reason"`
}

// Matchup is one scheduled game in a snapshot. ProjectedTotalGoals is nil
// when unknown, which is distinct from a projected total of zero. Breakdown
// is only populated for the single-game view.
type Matchup struct {
	GameID              GameID          `json:"gameId"`
	Date                string          `json:"date"`
	HomeTeam            string          `json:"homeTeam"`
	AwayTeam            string          `json:"awayTeam"`
	Score               *Score          `json:"score,omitempty"`
	Probability         Probability     `json:"probability"`
	ProjectedTotalGoals *float64        `json:"projectedTotalGoals,omitempty"`
	Breakdown           []BreakdownItem `json:"breakdown,omitempty"`
}

// Snapshot is the payload returned by the upstream /today endpoint.
// Each fetch produces a fresh snapshot that replaces the prior one wholesale.
type Snapshot struct {
	Date     string    `json:"date"`
	Matchups []Matchup `json:"matchups"`
}

// Matchup finds a game by id with a linear scan over the snapshot.
// IDs compare as strings, so "101" and 101 resolve to the same record.
func (s Snapshot) Matchup(id string) (Matchup, bool) {
	want := NormalizeGameID(id)
	for _, m := range s.Matchups {
		if string(m.GameID) == want {
			return m, true
		}
	}
	return Matchup{}, false
}
