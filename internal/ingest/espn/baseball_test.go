package espn

import (
	"testing"

	"github.com/fortuna/scorefeed/internal/dataset"
)

func pitchPlay(abbrev, playType string) BaseballPlay {
	return BaseballPlay{
		Type: PlayTypeResponse{Type: playType},
		PitchType: &struct {
			Abbreviation string `json:"abbreviation"`
		}{Abbreviation: abbrev},
	}
}

func resultPlay(text string, balls, strikes int) BaseballPlay {
	play := BaseballPlay{
		Text:      text,
		HomeScore: 3,
		AwayScore: 1,
		Type:      PlayTypeResponse{Type: playResultType},
		Participants: []BaseballParticipant{
			{Athlete: struct {
				ID string `json:"id"`
			}{ID: "33859"}, Type: participantPitcher},
			{Athlete: struct {
				ID string `json:"id"`
			}{ID: "36185"}, Type: participantBatter},
		},
	}
	play.ResultCount.Balls = balls
	play.ResultCount.Strikes = strikes
	return play
}

func testBaseballSummary() BaseballEventSummary {
	summary := BaseballEventSummary{
		Plays: []BaseballPlay{
			pitchPlay("FB", playBall),
			pitchPlay("SL", playStrikeSwinging),
			resultPlay("Judge struck out swinging.", 1, 3),
		},
		AtBats: map[string][]PlayReference{
			"2": {
				{Ref: "http://core.espn.com/plays/0"},
				{Ref: "http://core.espn.com/plays/1"},
				{Ref: "http://core.espn.com/plays/2"},
			},
		},
	}
	summary.Header.Competitions = []CompetitionResponse{testCompetition()}
	return summary
}

func testBaseballAthletes() map[string]dataset.MatchPlayer {
	return map[string]dataset.MatchPlayer{
		"33859": {ID: "33859", Name: "Gerrit Cole", Team: "NYY"},
		"36185": {ID: "36185", Name: "Aaron Judge", Team: "NYY"},
	}
}

func TestParseAtBats(t *testing.T) {
	got := parseAtBats(testBaseballSummary(), testBaseballAthletes())

	if len(got) != 1 {
		t.Fatalf("got %d at-bats, want 1", len(got))
	}
	ab := got[0]
	if ab.ID != "2" {
		t.Errorf("ID = %q, want 2", ab.ID)
	}
	if ab.Balls != 1 || ab.Strikes != 3 {
		t.Errorf("count = %d-%d, want 1-3", ab.Balls, ab.Strikes)
	}
	if len(ab.Pitches) != 2 {
		t.Fatalf("got %d pitches, want 2", len(ab.Pitches))
	}
	if ab.Pitches[0].Strike {
		t.Error("ball marked as strike")
	}
	if !ab.Pitches[1].Strike {
		t.Error("swinging strike not marked as strike")
	}
	if ab.Outcome != "strikeout" {
		t.Errorf("Outcome = %q, want strikeout", ab.Outcome)
	}
	if ab.Pitcher == nil || ab.Pitcher.Name != "Gerrit Cole" {
		t.Errorf("Pitcher = %+v", ab.Pitcher)
	}
	if ab.Batter == nil || ab.Batter.Name != "Aaron Judge" {
		t.Errorf("Batter = %+v", ab.Batter)
	}
}

func TestParseAtBatsSkipsIncomplete(t *testing.T) {
	t.Run("no play result", func(t *testing.T) {
		summary := testBaseballSummary()
		summary.AtBats["2"] = summary.AtBats["2"][:2]
		if got := parseAtBats(summary, testBaseballAthletes()); len(got) != 0 {
			t.Errorf("got %d at-bats, want 0", len(got))
		}
	})

	t.Run("no participants", func(t *testing.T) {
		summary := testBaseballSummary()
		summary.Plays[2].Participants = nil
		if got := parseAtBats(summary, testBaseballAthletes()); len(got) != 0 {
			t.Errorf("got %d at-bats, want 0", len(got))
		}
	})

	t.Run("missing batter role", func(t *testing.T) {
		summary := testBaseballSummary()
		summary.Plays[2].Participants = summary.Plays[2].Participants[:1]
		if got := parseAtBats(summary, testBaseballAthletes()); len(got) != 0 {
			t.Errorf("got %d at-bats, want 0", len(got))
		}
	})
}

func TestSortedAtBatIDs(t *testing.T) {
	atBats := map[string][]PlayReference{
		"10": nil, "2": nil, "1": nil, "21": nil,
	}
	want := []string{"1", "2", "10", "21"}
	got := sortedAtBatIDs(atBats)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sortedAtBatIDs() = %v, want %v", got, want)
		}
	}
}

func TestResolvePlayRefs(t *testing.T) {
	plays := []BaseballPlay{{ID: "a"}, {ID: "b"}}
	refs := []PlayReference{
		{Ref: "http://core.espn.com/plays/1"},
		{Ref: "http://core.espn.com/plays/5"},
		{Ref: "http://core.espn.com/plays/bogus"},
		{Ref: "http://core.espn.com/plays/0"},
	}

	got := resolvePlayRefs(refs, plays)
	if len(got) != 2 {
		t.Fatalf("got %d plays, want 2", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("resolved plays = %v", got)
	}
}

func TestAtBatOutcome(t *testing.T) {
	tests := []struct {
		name    string
		pitches []dataset.Pitch
		want    string
	}{
		{"no pitches falls back to text", nil, "Judge reached on catcher's interference."},
		{"last swinging strike", []dataset.Pitch{{Outcome: playStrikeSwinging}}, "strikeout"},
		{"last looking strike", []dataset.Pitch{{Outcome: playBall}, {Outcome: playStrikeLooking}}, "strikeout"},
		{"last ball", []dataset.Pitch{{Outcome: playBall}}, "walk"},
		{"last foul", []dataset.Pitch{{Outcome: playFoulBall}}, "walk"},
		{"other token passes through", []dataset.Pitch{{Outcome: "play-result"}}, "play-result"},
	}

	playResult := BaseballPlay{Text: "Judge reached on catcher's interference."}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := atBatOutcome(tt.pitches, playResult); got != tt.want {
				t.Errorf("atBatOutcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseBaseballMatchDetail(t *testing.T) {
	summary := testBaseballSummary()
	got, err := ParseBaseballMatchDetail(summary)
	if err != nil {
		t.Fatalf("ParseBaseballMatchDetail() error: %v", err)
	}
	if got.MatchID() != "401584669" {
		t.Errorf("MatchID() = %q", got.MatchID())
	}
	// Both roles are present in the play so the at-bat survives, but the
	// empty box score leaves the athlete refs nil.
	if len(got.AtBats) != 1 {
		t.Fatalf("got %d at-bats, want 1", len(got.AtBats))
	}
	if got.AtBats[0].Pitcher != nil {
		t.Errorf("Pitcher = %+v, want nil without box score", got.AtBats[0].Pitcher)
	}
}
