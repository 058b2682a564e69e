package oddsapi

import (
	"testing"

	"hockey-odds-service/internal/domain"
)

func TestMapMatchupTrimsTeams(t *testing.T) {
	m := mapMatchup(matchupResponse{
		GameID:   domain.GameID("101"),
		HomeTeam: " BOS ",
		AwayTeam: "MTL",
		Breakdown: []breakdownResponse{
			{Factor: "goalie", Team: " BOS ", Points: 2, Reason: "Stronger team goalie"},
		},
	})
	if m.HomeTeam != "BOS" {
		t.Fatalf("expected trimmed home team, got %q", m.HomeTeam)
	}
	if m.Breakdown[0].Team != "BOS" {
		t.Fatalf("expected trimmed breakdown team, got %q", m.Breakdown[0].Team)
	}
}

func TestMapMatchupOptionalFields(t *testing.T) {
	m := mapMatchup(matchupResponse{GameID: domain.GameID("101")})
	if m.Score != nil {
		t.Fatal("absent score should stay nil")
	}
	if m.ProjectedTotalGoals != nil {
		t.Fatal("absent projected total should stay nil")
	}
	if m.Breakdown != nil {
		t.Fatal("absent breakdown should stay nil")
	}
}

func TestMapMatchupUnknownFactorPassesThrough(t *testing.T) {
	m := mapMatchup(matchupResponse{
		GameID:    domain.GameID("101"),
		Breakdown: []breakdownResponse{{Factor: "special_teams", Team: "BOS", Points: 1, Reason: "PP edge"}},
	})
	if m.Breakdown[0].Factor != "special_teams" {
		t.Fatalf("unknown factor must pass through, got %q", m.Breakdown[0].Factor)
	}
}

func TestMapSnapshotPreservesOrder(t *testing.T) {
	snap := mapSnapshot(todayResponse{
		Date: "2024-01-02",
		Matchups: []matchupResponse{
			{GameID: domain.GameID("1")},
			{GameID: domain.GameID("2")},
		},
	})
	if len(snap.Matchups) != 2 || snap.Matchups[0].GameID != "1" || snap.Matchups[1].GameID != "2" {
		t.Fatalf("order disturbed: %+v", snap.Matchups)
	}
}
