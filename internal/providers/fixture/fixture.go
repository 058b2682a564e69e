package fixture

import (
	"context"
	"time"

	"hockey-odds-service/internal/domain"
	"hockey-odds-service/internal/timeutil"
)

// Provider returns a static prediction snapshot useful for local testing and
// bootstrapping without the upstream service.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchPredictions returns a deterministic snapshot of example matchups.
func (p *Provider) FetchPredictions(ctx context.Context, date string) (domain.Snapshot, error) {
	_ = ctx

	day := timeutil.FormatDate(p.now().UTC())
	if date != "" {
		if _, err := timeutil.ParseDate(date); err == nil {
			day = date
		}
	}

	tossUpTotal := 6.25
	blowoutTotal := 5.5

	matchups := []domain.Matchup{
		{
			GameID:              "1001",
			Date:                day,
			HomeTeam:            "BOS",
			AwayTeam:            "MTL",
			Score:               &domain.Score{Home: 4, Away: 3, Diff: 1},
			Probability:         domain.Probability{Home: 0.5622, Away: 0.4378},
			ProjectedTotalGoals: &tossUpTotal,
			Breakdown: []domain.BreakdownItem{
				{Factor: domain.FactorPointsPct, Team: "BOS", Points: 5, Reason: "Higher points%"},
				{Factor: domain.FactorHomeAway, Team: "BOS", Points: 1, Reason: "Both winning splits; home slight edge"},
				{Factor: domain.FactorInjuries, Team: "MTL", Points: 3, Reason: "Missing top-50 scorer(s): 1"},
				{Factor: domain.FactorForm, Team: "BOS", Points: 2, Reason: "Last 10 + streak effect"},
				{Factor: domain.FactorForm, Team: "MTL", Points: 1, Reason: "Last 10 + streak effect"},
				{Factor: domain.FactorGoalie, Team: "BOS", Points: 2, Reason: "Stronger team goalie (by SV% & usage)"},
			},
		},
		{
			GameID:              "1002",
			Date:                day,
			HomeTeam:            "COL",
			AwayTeam:            "SJS",
			Score:               &domain.Score{Home: 12, Away: 0, Diff: 12},
			Probability:         domain.Probability{Home: 0.9526, Away: 0.0474},
			ProjectedTotalGoals: &blowoutTotal,
			Breakdown: []domain.BreakdownItem{
				{Factor: domain.FactorPointsPct, Team: "COL", Points: 5, Reason: "Higher points%"},
				{Factor: domain.FactorGoalsBalance, Team: "COL", Points: 2, Reason: "Top-15 goals for AND top-15 goals against"},
				{Factor: domain.FactorH2HRecent, Team: "COL", Points: 3, Reason: "Better H2H in last 5 games"},
				{Factor: domain.FactorGoalie, Team: "COL", Points: 2, Reason: "Stronger team goalie (by SV% & usage)"},
			},
		},
		{
			GameID:      "1003",
			Date:        day,
			HomeTeam:    "TOR",
			AwayTeam:    "NYR",
			Probability: domain.Probability{Home: 0.5, Away: 0.5},
			Breakdown: []domain.BreakdownItem{
				{Factor: domain.FactorPointsPct, Team: "", Points: 0, Reason: "Equal points%"},
				{Factor: domain.FactorForm, Team: "TOR", Points: 2, Reason: "Last 10 + streak effect"},
				{Factor: domain.FactorForm, Team: "NYR", Points: 2, Reason: "Last 10 + streak effect"},
			},
		},
	}

	return domain.Snapshot{Date: day, Matchups: matchups}, nil
}
