package crawl

import (
	"strings"
	"testing"
	"time"

	"github.com/fortuna/scorefeed/internal/ingest/espn"
)

func TestParseInput(t *testing.T) {
	raw := `{
		"jobs": [
			{"league": "nhl", "seasons": [2024], "seasonTypes": ["reg"],
			 "matchList": true, "matchDetails": true, "news": true},
			{"league": "nba", "news": true}
		]
	}`

	in, err := ParseInput([]byte(raw))
	if err != nil {
		t.Fatalf("ParseInput() error: %v", err)
	}
	if len(in.Jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(in.Jobs))
	}
	if in.Jobs[0].Sport() != espn.SportHockey {
		t.Errorf("Sport() = %q, want hockey", in.Jobs[0].Sport())
	}
	if in.Jobs[1].Sport() != espn.SportBasketball {
		t.Errorf("Sport() = %q, want basketball", in.Jobs[1].Sport())
	}
}

func TestParseInputInvalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"malformed json", `{jobs}`, "decoding"},
		{"no jobs", `{"jobs": []}`, "no jobs"},
		{"missing league", `{"jobs": [{"matchList": true, "seasons": [2024]}]}`, "league is required"},
		{"nothing to collect", `{"jobs": [{"league": "nhl"}]}`, "nothing to collect"},
		{"matches without seasons", `{"jobs": [{"league": "nhl", "matchList": true}]}`, "at least one season"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInput([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestDatesBetween(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("inclusive range", func(t *testing.T) {
		dates, err := DatesBetween("2024-01-30T08:00Z", "2024-02-02T08:00Z", now)
		if err != nil {
			t.Fatalf("DatesBetween() error: %v", err)
		}
		want := []string{"20240130", "20240131", "20240201", "20240202"}
		if len(dates) != len(want) {
			t.Fatalf("dates = %v, want %v", dates, want)
		}
		for i := range want {
			if dates[i] != want[i] {
				t.Fatalf("dates = %v, want %v", dates, want)
			}
		}
	})

	t.Run("end clamped at today", func(t *testing.T) {
		dates, err := DatesBetween("2024-05-30T08:00Z", "2024-07-15T08:00Z", now)
		if err != nil {
			t.Fatalf("DatesBetween() error: %v", err)
		}
		if len(dates) == 0 || dates[len(dates)-1] != "20240601" {
			t.Errorf("dates end = %v, want clamp at 20240601", dates)
		}
	})

	t.Run("window entirely in the future", func(t *testing.T) {
		dates, err := DatesBetween("2024-10-01T08:00Z", "2025-04-15T08:00Z", now)
		if err != nil {
			t.Fatalf("DatesBetween() error: %v", err)
		}
		if len(dates) != 0 {
			t.Errorf("dates = %v, want empty", dates)
		}
	})

	t.Run("seconds layout accepted", func(t *testing.T) {
		if _, err := DatesBetween("2024-01-30T08:00:00Z", "2024-01-31T08:00:00Z", now); err != nil {
			t.Errorf("DatesBetween() error: %v", err)
		}
	})

	t.Run("bad date rejected", func(t *testing.T) {
		if _, err := DatesBetween("yesterday", "2024-01-31T08:00Z", now); err == nil {
			t.Error("expected error")
		}
	})
}

func TestSeasonTypeWanted(t *testing.T) {
	window := espn.SeasonWindow{Abbreviation: "reg", Name: "Regular Season"}

	if !seasonTypeWanted(window, nil) {
		t.Error("empty filter should accept every window")
	}
	if !seasonTypeWanted(window, []string{"reg"}) {
		t.Error("abbreviation match rejected")
	}
	if !seasonTypeWanted(window, []string{"Regular Season"}) {
		t.Error("name match rejected")
	}
	if seasonTypeWanted(window, []string{"post"}) {
		t.Error("non-matching filter accepted")
	}
}

func TestDedupKey(t *testing.T) {
	a := Request{Label: LabelScoreboard, URL: "https://example.com/x"}
	b := Request{Label: LabelMatchDetail, URL: "https://example.com/x"}
	if dedupKey(a) == dedupKey(b) {
		t.Error("different labels must not collide")
	}
	if dedupKey(a) != dedupKey(Request{Label: LabelScoreboard, URL: "https://example.com/x", Season: 2024}) {
		t.Error("dedup must ignore non-identity fields")
	}
}
