package oddsapi

import (
	"strings"

	"hockey-odds-service/internal/domain"
)

func mapSnapshot(resp todayResponse) domain.Snapshot {
	matchups := make([]domain.Matchup, 0, len(resp.Matchups))
	for _, m := range resp.Matchups {
		matchups = append(matchups, mapMatchup(m))
	}
	return domain.Snapshot{
		Date:     resp.Date,
		Matchups: matchups,
	}
}

func mapMatchup(m matchupResponse) domain.Matchup {
	return domain.Matchup{
		GameID:   m.GameID,
		Date:     m.Date,
		HomeTeam: strings.TrimSpace(m.HomeTeam),
		AwayTeam: strings.TrimSpace(m.AwayTeam),
		Score:    mapScore(m.Score),
		Probability: domain.Probability{
			Home: m.Probability.Home,
			Away: m.Probability.Away,
		},
		ProjectedTotalGoals: m.ProjectedTotalGoals,
		Breakdown:           mapBreakdown(m.Breakdown),
	}
}

func mapScore(s *scoreResponse) *domain.Score {
	if s == nil {
		return nil
	}
	return &domain.Score{Home: s.Home, Away: s.Away, Diff: s.Diff}
}

func mapBreakdown(items []breakdownResponse) []domain.BreakdownItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.BreakdownItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.BreakdownItem{
			Factor: item.Factor,
			Team:   strings.TrimSpace(item.Team),
			Points: item.Points,
			Reason: item.Reason,
		})
	}
	return out
}
