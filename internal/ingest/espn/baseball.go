package espn

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fortuna/scorefeed/internal/dataset"
)

// Baseball play type tokens and participant roles.
const (
	playResultType     = "play-result"
	playStrikeLooking  = "strike-looking"
	playStrikeSwinging = "strike-swinging"
	playBall           = "ball"
	playFoulBall       = "foul-ball"

	participantPitcher = "pitcher"
	participantBatter  = "batter"
)

// ParseBaseballMatchDetail extracts baseball data for a specific match.
func ParseBaseballMatchDetail(summary BaseballEventSummary) (dataset.BaseballMatchDetail, error) {
	detail, err := ParseMatchDetail(summary.EventSummaryResponse)
	if err != nil {
		return dataset.BaseballMatchDetail{}, err
	}

	players := PlayerByID(detail.Players)
	return dataset.BaseballMatchDetail{
		MatchDetail: detail,
		AtBats:      parseAtBats(summary, players),
	}, nil
}

// parseAtBats creates one entry per at-bat grouping. At-bats without a
// result play, without participants, or without both a pitcher and a batter
// are skipped; catcher interference and similar no-participant plays fall
// out here on purpose.
func parseAtBats(summary BaseballEventSummary, athletes map[string]dataset.MatchPlayer) []dataset.BaseballAtBat {
	atBats := make([]dataset.BaseballAtBat, 0, len(summary.AtBats))
	for _, atBatID := range sortedAtBatIDs(summary.AtBats) {
		plays := resolvePlayRefs(summary.AtBats[atBatID], summary.Plays)

		playResult, ok := findPlayResult(plays)
		if !ok {
			continue
		}
		if len(playResult.Participants) == 0 {
			continue
		}

		pitcherID := firstParticipant(playResult.Participants, participantPitcher)
		batterID := firstParticipant(playResult.Participants, participantBatter)
		if pitcherID == "" || batterID == "" {
			continue
		}

		pitches := parsePitches(plays)

		atBats = append(atBats, dataset.BaseballAtBat{
			ID:          atBatID,
			HomeScore:   playResult.HomeScore,
			AwayScore:   playResult.AwayScore,
			Description: playResult.Text,
			Balls:       playResult.ResultCount.Balls,
			Strikes:     playResult.ResultCount.Strikes,
			Outcome:     atBatOutcome(pitches, playResult),
			Pitches:     pitches,
			Pitcher:     athleteRef(athletes, pitcherID),
			Batter:      athleteRef(athletes, batterID),
		})
	}
	return atBats
}

// sortedAtBatIDs orders the grouping keys numerically where possible so a
// rerun over the same payload yields identical output.
func sortedAtBatIDs(atBats map[string][]PlayReference) []string {
	ids := make([]string, 0, len(atBats))
	for id := range atBats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, aErr := strconv.Atoi(ids[i])
		b, bErr := strconv.Atoi(ids[j])
		if aErr == nil && bErr == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
	return ids
}

// resolvePlayRefs loads the plays referenced by an at-bat grouping. The
// trailing segment of each reference indexes into the play list; references
// that do not parse or fall outside the list are dropped.
func resolvePlayRefs(refs []PlayReference, plays []BaseballPlay) []BaseballPlay {
	resolved := make([]BaseballPlay, 0, len(refs))
	for _, ref := range refs {
		segments := strings.Split(ref.Ref, "/")
		idx, err := strconv.Atoi(segments[len(segments)-1])
		if err != nil || idx < 0 || idx >= len(plays) {
			continue
		}
		resolved = append(resolved, plays[idx])
	}
	return resolved
}

func findPlayResult(plays []BaseballPlay) (BaseballPlay, bool) {
	for _, play := range plays {
		if play.Type.Type == playResultType {
			return play, true
		}
	}
	return BaseballPlay{}, false
}

func firstParticipant(participants []BaseballParticipant, role string) string {
	for _, p := range participants {
		if p.Type == role {
			return p.Athlete.ID
		}
	}
	return ""
}

// parsePitches collects the plays carrying pitch information, in source
// order.
func parsePitches(plays []BaseballPlay) []dataset.Pitch {
	var pitches []dataset.Pitch
	for _, play := range plays {
		if play.PitchType == nil {
			continue
		}
		pitches = append(pitches, dataset.Pitch{
			PitchType: play.PitchType.Abbreviation,
			Strike:    isStrike(play.Type.Type),
			Outcome:   play.Type.Type,
		})
	}
	return pitches
}

func isStrike(playType string) bool {
	switch playType {
	case playStrikeSwinging, playStrikeLooking, playFoulBall:
		return true
	}
	return false
}

// atBatOutcome derives the at-bat result. With no pitches on record the
// play-result text is the best available description. Otherwise the last
// pitch decides: a swinging or looking strike ends a strikeout, a ball or
// foul ends a walk, anything else keeps its raw type token.
func atBatOutcome(pitches []dataset.Pitch, playResult BaseballPlay) string {
	if len(pitches) == 0 {
		return playResult.Text
	}

	switch last := pitches[len(pitches)-1].Outcome; last {
	case playStrikeSwinging, playStrikeLooking:
		return "strikeout"
	case playBall, playFoulBall:
		return "walk"
	default:
		return last
	}
}

// athleteRef resolves an athlete id against the player map. Unknown ids are
// omitted rather than failing the at-bat.
func athleteRef(athletes map[string]dataset.MatchPlayer, id string) *dataset.AthleteRef {
	player, ok := athletes[id]
	if !ok {
		return nil
	}
	return &dataset.AthleteRef{ID: id, Name: player.Name, Team: player.Team}
}
