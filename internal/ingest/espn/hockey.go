package espn

import (
	"strconv"
	"strings"

	"github.com/fortuna/scorefeed/internal/dataset"
)

const (
	hockeyPenaltyType = "penalty"

	// The API does not expose the NHL overtime length; every overtime
	// period uses this fixed value.
	hockeyOvertimeLength = 300
)

// ParseHockeyMatchDetail extracts hockey data for a specific match.
func ParseHockeyMatchDetail(summary HockeyEventSummary) (dataset.HockeyMatchDetail, error) {
	detail, err := ParseMatchDetail(summary.EventSummaryResponse)
	if err != nil {
		return dataset.HockeyMatchDetail{}, err
	}

	players := PlayerByID(detail.Players)
	teams := CompetitorByID(detail.Competitors)

	return dataset.HockeyMatchDetail{
		MatchDetail: detail,
		Shooting:    parseShots(summary, players),
		Penalties:   parsePenalties(summary, teams),
	}, nil
}

// parseShots creates one entry per shooting play. The shot taker is the
// participant carrying a year-to-date goals figure; plays whose shooter
// cannot be resolved against the box score are skipped.
func parseShots(summary HockeyEventSummary, playerMap map[string]dataset.MatchPlayer) []dataset.HockeyShot {
	periodCount := summary.Format.Regulation.Periods
	regulationLength := int(summary.Format.Regulation.Clock)

	var shots []dataset.HockeyShot
	for _, play := range summary.Plays {
		if !play.ShootingPlay || len(play.Participants) == 0 {
			continue
		}

		shooter, ok := findShooter(play.Participants)
		if !ok {
			continue
		}

		shooterData, ok := playerMap[shooter.Athlete.ID]
		if !ok {
			continue
		}

		assists := []dataset.AthleteRef{}
		if play.ScoringPlay {
			assists = findAssists(play.Participants)
		}

		shots = append(shots, dataset.HockeyShot{
			ID:        play.ID,
			HomeScore: play.HomeScore,
			AwayScore: play.AwayScore,
			Scored:    play.ScoringPlay,
			Team:      shooterData.Team,
			Shooter: dataset.AthleteRef{
				ID:   shooter.Athlete.ID,
				Name: shooter.Athlete.DisplayName,
			},
			Assists: assists,
			// The NHL display clock counts up from zero.
			TimeInSeconds: TimeInSeconds(play.Period.Number, play.Clock.DisplayValue, periodCount, regulationLength, hockeyOvertimeLength, true),
			Description:   play.Text,
		})
	}
	return shots
}

func findShooter(participants []HockeyParticipant) (HockeyParticipant, bool) {
	for _, p := range participants {
		if p.YTDGoals != nil {
			return p, true
		}
	}
	return HockeyParticipant{}, false
}

func findAssists(participants []HockeyParticipant) []dataset.AthleteRef {
	assists := []dataset.AthleteRef{}
	for _, p := range participants {
		if p.YTDAssists != nil {
			assists = append(assists, dataset.AthleteRef{
				ID:   p.Athlete.ID,
				Name: p.Athlete.DisplayName,
			})
		}
	}
	return assists
}

// parsePenalties creates one entry per penalty play. Plays whose team id is
// not among the competitors are skipped; a missing punished player becomes
// nil, not an error.
func parsePenalties(summary HockeyEventSummary, teams map[string]dataset.Competitor) []dataset.HockeyPenalty {
	periodCount := summary.Format.Regulation.Periods
	regulationLength := int(summary.Format.Regulation.Clock)

	var penalties []dataset.HockeyPenalty
	for _, play := range summary.Plays {
		if play.Type.Abbreviation != hockeyPenaltyType {
			continue
		}

		team, ok := teams[play.Team.ID]
		if !ok {
			continue
		}

		p := dataset.HockeyPenalty{
			ID:              play.ID,
			Team:            team.Abbreviation,
			TimeInSeconds:   TimeInSeconds(play.Period.Number, play.Clock.DisplayValue, periodCount, regulationLength, hockeyOvertimeLength, true),
			LengthInMinutes: penaltyLength(play.Text),
			Description:     play.Text,
		}

		if len(play.Participants) > 0 {
			first := play.Participants[0]
			p.PunishedPlayer = &dataset.AthleteRef{
				ID:   first.Athlete.ID,
				Name: first.Athlete.DisplayName,
			}
		}

		penalties = append(penalties, p)
	}
	return penalties
}

// penaltyLength pulls the minute count out of descriptions like
// "John Doe 2 minutes for Tripping". The token right before "minutes" is
// parsed; nil when it is not a number.
func penaltyLength(description string) *int {
	head, _, _ := strings.Cut(description, "minutes")
	fields := strings.Fields(strings.TrimSpace(head))
	if len(fields) == 0 {
		return nil
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return nil
	}
	return &n
}
