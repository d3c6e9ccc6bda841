package espn

import (
	"testing"

	"github.com/fortuna/scorefeed/internal/dataset"
)

func intPtr(n int) *int { return &n }

func hockeyParticipant(id, name string, goals, assists *int) HockeyParticipant {
	p := HockeyParticipant{YTDGoals: goals, YTDAssists: assists}
	p.Athlete.ID = id
	p.Athlete.DisplayName = name
	return p
}

func testHockeySummary(plays ...HockeyPlay) HockeyEventSummary {
	summary := HockeyEventSummary{Plays: plays}
	summary.Header.Competitions = []CompetitionResponse{testCompetition()}
	summary.Format.Regulation.Periods = 3
	summary.Format.Regulation.Clock = 1200
	return summary
}

func TestParseShots(t *testing.T) {
	goal := HockeyPlay{
		ID:           "4011595173",
		HomeScore:    1,
		AwayScore:    0,
		Text:         "Artemi Panarin Goal (Vincent Trocheck assists)",
		ShootingPlay: true,
		ScoringPlay:  true,
		Clock:        ClockResponse{DisplayValue: "15:30"},
		Period:       PeriodResponse{Number: 3},
		Participants: []HockeyParticipant{
			hockeyParticipant("3891952", "Artemi Panarin", intPtr(23), nil),
			hockeyParticipant("3069411", "Vincent Trocheck", nil, intPtr(31)),
		},
	}
	miss := goal
	miss.ScoringPlay = false

	playerMap := map[string]dataset.MatchPlayer{
		"3891952": {ID: "3891952", Name: "Artemi Panarin", Team: "NYR"},
	}

	got := parseShots(testHockeySummary(goal, miss), playerMap)
	if len(got) != 2 {
		t.Fatalf("got %d shots, want 2", len(got))
	}

	scored := got[0]
	if !scored.Scored || scored.Team != "NYR" {
		t.Errorf("shot = %+v", scored)
	}
	if scored.Shooter.Name != "Artemi Panarin" {
		t.Errorf("Shooter = %+v", scored.Shooter)
	}
	if len(scored.Assists) != 1 || scored.Assists[0].Name != "Vincent Trocheck" {
		t.Errorf("Assists = %+v", scored.Assists)
	}
	// Period 3, 15:30 on a 1200 second countup clock.
	if scored.TimeInSeconds != 3330 {
		t.Errorf("TimeInSeconds = %d, want 3330", scored.TimeInSeconds)
	}

	// A miss keeps its assist participants out of the record.
	if len(got[1].Assists) != 0 {
		t.Errorf("miss Assists = %+v, want empty", got[1].Assists)
	}
}

func TestParseShotsSkipsUnresolvable(t *testing.T) {
	noShooter := HockeyPlay{
		ShootingPlay: true,
		Participants: []HockeyParticipant{
			hockeyParticipant("3069411", "Vincent Trocheck", nil, intPtr(31)),
		},
	}
	unknownShooter := HockeyPlay{
		ShootingPlay: true,
		Participants: []HockeyParticipant{
			hockeyParticipant("99", "Nobody", intPtr(1), nil),
		},
	}

	got := parseShots(testHockeySummary(noShooter, unknownShooter), nil)
	if len(got) != 0 {
		t.Errorf("got %d shots, want 0", len(got))
	}
}

func TestParsePenalties(t *testing.T) {
	penalty := HockeyPlay{
		ID:     "4011595201",
		Text:   "Jacob Trouba 2 minutes for Tripping",
		Type:   PlayTypeResponse{Abbreviation: hockeyPenaltyType},
		Clock:  ClockResponse{DisplayValue: "5:12"},
		Period: PeriodResponse{Number: 1},
		Participants: []HockeyParticipant{
			hockeyParticipant("3042021", "Jacob Trouba", nil, nil),
		},
	}
	penalty.Team.ID = "18"

	unknownTeam := penalty
	unknownTeam.Team.ID = "404"

	teams := map[string]dataset.Competitor{
		"18": {ID: "18", Abbreviation: "NYR"},
	}

	got := parsePenalties(testHockeySummary(penalty, unknownTeam), teams)
	if len(got) != 1 {
		t.Fatalf("got %d penalties, want 1", len(got))
	}
	p := got[0]
	if p.Team != "NYR" {
		t.Errorf("Team = %q, want NYR", p.Team)
	}
	if p.PunishedPlayer == nil || p.PunishedPlayer.Name != "Jacob Trouba" {
		t.Errorf("PunishedPlayer = %+v", p.PunishedPlayer)
	}
	if p.LengthInMinutes == nil || *p.LengthInMinutes != 2 {
		t.Errorf("LengthInMinutes = %v, want 2", p.LengthInMinutes)
	}
	if p.TimeInSeconds != 312 {
		t.Errorf("TimeInSeconds = %d, want 312", p.TimeInSeconds)
	}
}

func TestPenaltyLength(t *testing.T) {
	tests := []struct {
		description string
		want        *int
	}{
		{"Jacob Trouba 2 minutes for Tripping", intPtr(2)},
		{"Matt Rempe 5 minutes for Fighting", intPtr(5)},
		{"Bench minor, 2 minutes served by Chytil", intPtr(2)},
		{"Misconduct for Roughing", nil},
		{"Game misconduct minutes", nil},
	}

	for _, tt := range tests {
		got := penaltyLength(tt.description)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("penaltyLength(%q) = %d, want nil", tt.description, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("penaltyLength(%q) = %v, want %d", tt.description, got, *tt.want)
		}
	}
}

func TestParseHockeyMatchDetail(t *testing.T) {
	got, err := ParseHockeyMatchDetail(testHockeySummary())
	if err != nil {
		t.Fatalf("ParseHockeyMatchDetail() error: %v", err)
	}
	if got.MatchID() != "401584669" {
		t.Errorf("MatchID() = %q", got.MatchID())
	}
}
