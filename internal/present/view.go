package present

import "hockey-odds-service/internal/domain"

// ListRow is one matchup in the list view, formatted for display. Favourite
// names the side the renderer should bold.
type ListRow struct {
	GameID         string `json:"gameId"`
	HomeTeam       string `json:"homeTeam"`
	AwayTeam       string `json:"awayTeam"`
	HomeOdds       string `json:"homeOdds"`
	AwayOdds       string `json:"awayOdds"`
	Favourite      string `json:"favourite"`
	ProjectedTotal string `json:"projectedTotal"`
}

// ListView is the payload for the matchup list view.
type ListView struct {
	Date     string    `json:"date"`
	Bucket   Bucket    `json:"bucket"`
	Query    string    `json:"query,omitempty"`
	Matchups []ListRow `json:"matchups"`
}

// DetailView is the payload for the single-game view.
type DetailView struct {
	GameID         string       `json:"gameId"`
	Date           string       `json:"date"`
	HomeTeam       string       `json:"homeTeam"`
	AwayTeam       string       `json:"awayTeam"`
	HomeLogo       string       `json:"homeLogo,omitempty"`
	AwayLogo       string       `json:"awayLogo,omitempty"`
	Favourite      string       `json:"favourite"`
	HomeOdds       string       `json:"homeOdds"`
	AwayOdds       string       `json:"awayOdds"`
	ProjectedTotal string       `json:"projectedTotal"`
	Breakdown      []SignedItem `json:"breakdown"`
	Scale          float64      `json:"scale"`
}

// NewListView classifies, filters and formats a snapshot for the list view.
// The query filter runs first; the bucket predicate is an independent pass
// over the filtered sequence.
func NewListView(snap domain.Snapshot, query string, bucket Bucket, percentMode bool) ListView {
	filtered := FilterBucket(FilterByQuery(snap.Matchups, query), bucket)

	rows := make([]ListRow, 0, len(filtered))
	for _, m := range filtered {
		rows = append(rows, ListRow{
			GameID:         m.GameID.String(),
			HomeTeam:       m.HomeTeam,
			AwayTeam:       m.AwayTeam,
			HomeOdds:       FormatOdds(m.Probability.Home, percentMode),
			AwayOdds:       FormatOdds(m.Probability.Away, percentMode),
			Favourite:      ResolveFavourite(m.HomeTeam, m.AwayTeam, m.Probability.Home, m.Probability.Away),
			ProjectedTotal: FormatGoals(m.ProjectedTotalGoals),
		})
	}

	return ListView{
		Date:     snap.Date,
		Bucket:   bucket,
		Query:    query,
		Matchups: rows,
	}
}

// NewDetailView reconciles and formats a single matchup for the game view.
// A nil logos func leaves the logo URLs empty.
func NewDetailView(m domain.Matchup, percentMode bool, logos LogoFunc) DetailView {
	breakdown := Reconcile(m.Breakdown, m.HomeTeam, m.AwayTeam)

	view := DetailView{
		GameID:         m.GameID.String(),
		Date:           m.Date,
		HomeTeam:       m.HomeTeam,
		AwayTeam:       m.AwayTeam,
		Favourite:      ResolveFavourite(m.HomeTeam, m.AwayTeam, m.Probability.Home, m.Probability.Away),
		HomeOdds:       FormatOdds(m.Probability.Home, percentMode),
		AwayOdds:       FormatOdds(m.Probability.Away, percentMode),
		ProjectedTotal: FormatGoals(m.ProjectedTotalGoals),
		Breakdown:      breakdown,
		Scale:          DisplayScale(breakdown),
	}
	if logos != nil {
		view.HomeLogo = logos(m.HomeTeam)
		view.AwayLogo = logos(m.AwayTeam)
	}
	return view
}
