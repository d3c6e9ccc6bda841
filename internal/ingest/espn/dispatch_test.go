package espn

import (
	"reflect"
	"testing"

	"github.com/fortuna/scorefeed/internal/dataset"
)

func TestSportByLeague(t *testing.T) {
	tests := []struct {
		league string
		want   Sport
	}{
		{LeagueMLB, SportBaseball},
		{LeagueNHL, SportHockey},
		{LeagueNBA, SportBasketball},
		{LeagueWNBA, SportBasketball},
		{LeagueCollegeBasketballMen, SportBasketball},
		{LeagueCollegeBasketballWomen, SportBasketball},
		{LeagueNFL, SportGeneric},
		{"premier-league", SportGeneric},
	}

	for _, tt := range tests {
		if got := SportByLeague(tt.league); got != tt.want {
			t.Errorf("SportByLeague(%q) = %q, want %q", tt.league, got, tt.want)
		}
	}
}

const minimalSummaryJSON = `{
	"header": {
		"id": "401584669",
		"competitions": [{
			"id": "401584669",
			"date": "2024-01-15T00:00Z",
			"competitors": [
				{"id": "18", "homeAway": "home", "winner": true, "score": "4",
				 "team": {"displayName": "New York Rangers", "abbreviation": "NYR"}},
				{"id": "1", "homeAway": "away", "winner": false, "score": "2",
				 "team": {"displayName": "New Jersey Devils", "abbreviation": "NJ"}}
			]
		}]
	},
	"format": {"regulation": {"periods": 3, "clock": 1200.0}},
	"plays": []
}`

func TestParseMatchDetailBySport(t *testing.T) {
	sports := []Sport{SportBaseball, SportBasketball, SportHockey, SportGeneric}
	for _, sport := range sports {
		t.Run(string(sport), func(t *testing.T) {
			record, err := ParseMatchDetailBySport([]byte(minimalSummaryJSON), sport)
			if err != nil {
				t.Fatalf("ParseMatchDetailBySport() error: %v", err)
			}
			if record.MatchID() != "401584669" {
				t.Errorf("MatchID() = %q", record.MatchID())
			}
		})
	}
}

func TestParseMatchDetailBySportTyped(t *testing.T) {
	record, err := ParseMatchDetailBySport([]byte(minimalSummaryJSON), SportHockey)
	if err != nil {
		t.Fatalf("ParseMatchDetailBySport() error: %v", err)
	}
	detail, ok := record.(dataset.HockeyMatchDetail)
	if !ok {
		t.Fatalf("record type = %T, want dataset.HockeyMatchDetail", record)
	}
	if detail.WinnerAbbreviation == nil || *detail.WinnerAbbreviation != "NYR" {
		t.Errorf("WinnerAbbreviation = %v", detail.WinnerAbbreviation)
	}
}

func TestParseMatchDetailBySportErrors(t *testing.T) {
	if _, err := ParseMatchDetailBySport([]byte(minimalSummaryJSON), Sport("cricket")); err == nil {
		t.Error("expected error for unsupported sport")
	}
	if _, err := ParseMatchDetailBySport([]byte("{not json"), SportHockey); err == nil {
		t.Error("expected error for malformed payload")
	}
	if _, err := ParseMatchDetailBySport([]byte(`{"header":{"competitions":[]}}`), SportHockey); err == nil {
		t.Error("expected error for summary without competitions")
	}
}

func TestParseMatchDetailBySportIdempotent(t *testing.T) {
	first, err := ParseMatchDetailBySport([]byte(minimalSummaryJSON), SportHockey)
	if err != nil {
		t.Fatalf("ParseMatchDetailBySport() error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := ParseMatchDetailBySport([]byte(minimalSummaryJSON), SportHockey)
		if err != nil {
			t.Fatalf("ParseMatchDetailBySport() error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("repeated extraction diverged")
		}
	}
}
