package espn

import (
	"strings"

	"github.com/fortuna/scorefeed/internal/dataset"
)

// ParseBasketballMatchDetail extracts basketball data for a specific match.
func ParseBasketballMatchDetail(summary BasketballEventSummary) (dataset.BasketballMatchDetail, error) {
	detail, err := ParseMatchDetail(summary.EventSummaryResponse)
	if err != nil {
		return dataset.BasketballMatchDetail{}, err
	}

	players := PlayerByID(detail.Players)
	return dataset.BasketballMatchDetail{
		MatchDetail: detail,
		Scoring:     parseScoringPlays(summary, players),
	}, nil
}

// parseScoringPlays creates one entry per shooting play that has at least
// one participant. The first participant is the shooter.
func parseScoringPlays(summary BasketballEventSummary, athletes map[string]dataset.MatchPlayer) []dataset.BasketballScoring {
	periodCount := summary.Format.Regulation.Periods
	regulationLength := int(summary.Format.Regulation.Clock)
	overtimeLength := int(summary.Format.Overtime.Clock)

	var scoring []dataset.BasketballScoring
	for _, play := range summary.Plays {
		if !play.ShootingPlay || len(play.Participants) == 0 {
			continue
		}

		s := dataset.BasketballScoring{
			ID:          play.ID,
			HomeScore:   play.HomeScore,
			AwayScore:   play.AwayScore,
			Scored:      play.ScoringPlay,
			Description: play.Text,
			Type:        scoreType(play),
			// The NBA display clock counts down from the period length.
			TimeInSeconds: TimeInSeconds(play.Period.Number, play.Clock.DisplayValue, periodCount, regulationLength, overtimeLength, false),
		}

		if shooter, ok := athletes[play.Participants[0].Athlete.ID]; ok {
			s.Shooter = &dataset.AthleteRef{ID: shooter.ID, Name: shooter.Name, Team: shooter.Team}
		}

		scoring = append(scoring, s)
	}
	return scoring
}

// scoreType classifies a shot. Three pointers always carry the word "three"
// in the play text; free throws carry "free throw" in the type text.
func scoreType(play BasketballPlay) dataset.BasketballScoreType {
	if strings.Contains(strings.ToLower(play.Text), "three") {
		return dataset.ScoreThreePointer
	}
	if strings.Contains(strings.ToLower(play.Type.Text), "free throw") {
		return dataset.ScoreFreeThrow
	}
	return dataset.ScoreTwoPointer
}
