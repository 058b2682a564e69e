package oddsapi

import "hockey-odds-service/internal/domain"

// todayResponse mirrors the upstream /today payload. GameID arrives as a
// string or a number depending on upstream version, so the flexible domain
// decoder handles it directly.
type todayResponse struct {
	Date     string            `json:"date"`
	Matchups []matchupResponse `json:"matchups"`
}

type matchupResponse struct {
	GameID              domain.GameID       `json:"gameId"`
	Date                string              `json:"date"`
	HomeTeam            string              `json:"homeTeam"`
	AwayTeam            string              `json:"awayTeam"`
	Score               *scoreResponse      `json:"score"`
	Probability         probabilityResponse `json:"probability"`
	ProjectedTotalGoals *float64            `json:"projectedTotalGoals"`
	Breakdown           []breakdownResponse `json:"breakdown"`
}

type probabilityResponse struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

type scoreResponse struct {
	Home int `json:"home"`
	Away int `json:"away"`
	Diff int `json:"diff"`
}

type breakdownResponse struct {
	Factor string  `json:"factor"`
	Team   string  `json:"team"`
	Points float64 `json:"points"`
	Reason string  `json:"reason"`
}
