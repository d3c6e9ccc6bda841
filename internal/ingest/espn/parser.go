package espn

import (
	"errors"
	"log"
	"strconv"

	"github.com/fortuna/scorefeed/internal/dataset"
)

// ErrNoCompetitions marks an event summary without competition data. The
// whole extraction fails; the caller decides whether to retry the fetch.
var ErrNoCompetitions = errors.New("no competition data in event summary")

// ParseCompetition extracts general data about a match. Works for all
// supported sports, does not contain any sport-specific logic.
func ParseCompetition(comp CompetitionResponse) dataset.Competition {
	competitors := make([]dataset.Competitor, 0, len(comp.Competitors))
	var winner *CompetitorResponse

	for i := range comp.Competitors {
		c := comp.Competitors[i]
		competitors = append(competitors, dataset.Competitor{
			ID:           c.ID,
			DisplayName:  c.Team.DisplayName,
			Abbreviation: c.Team.Abbreviation,
			Winner:       c.Winner,
			Home:         c.HomeAway == "home",
			Score:        parseScore(c.Score),
		})

		// The winner flag should be unique but the API does not enforce it;
		// the first flagged competitor takes it.
		if winner == nil && c.Winner != nil && *c.Winner {
			winner = &comp.Competitors[i]
		}
	}

	headlines := make([]dataset.Headline, 0, len(comp.Headlines))
	for _, h := range comp.Headlines {
		headlines = append(headlines, dataset.Headline{Long: h.Description, Short: h.ShortLinkText})
	}

	out := dataset.Competition{
		ID:          comp.ID,
		Date:        comp.Date,
		Competitors: competitors,
		Attendance:  comp.Attendance,
		Headlines:   headlines,
		Venue:       formatVenue(comp.Venue),
	}
	if winner != nil {
		abbr := winner.Team.Abbreviation
		out.WinnerAbbreviation = &abbr
	}
	return out
}

// ParseMatchDetail extracts the sport-agnostic detail of a match. Callers
// add the sport-specific play collection on top.
func ParseMatchDetail(summary EventSummaryResponse) (dataset.MatchDetail, error) {
	if len(summary.Header.Competitions) == 0 {
		return dataset.MatchDetail{}, ErrNoCompetitions
	}

	competition := ParseCompetition(summary.Header.Competitions[0])

	// The game info block carries its own venue and attendance, which can
	// differ from the competition header.
	competition.Venue = formatVenue(summary.GameInfo.Venue)
	competition.Attendance = summary.GameInfo.Attendance

	return dataset.MatchDetail{
		Competition: competition,
		Officials:   parseOfficials(summary.GameInfo),
		Players:     ParsePlayers(summary.Boxscore),
	}, nil
}

// ParsePlayers flattens the box score into one entry per athlete per
// statistics category.
func ParsePlayers(box BoxScoreResponse) []dataset.MatchPlayer {
	var players []dataset.MatchPlayer
	for _, teamBlock := range box.Players {
		team := teamBlock.Team
		for _, category := range teamBlock.Statistics {
			// Some sports publish the stat names under "names", others
			// under "labels".
			statNames := category.Names
			if statNames == nil {
				statNames = category.Labels
			}
			if statNames == nil {
				log.Printf("[parser] Could not load statistics names for team %s", team.Abbreviation)
				continue
			}

			for _, entry := range category.Athletes {
				// Entries whose value count does not line up with the
				// category's names are dropped, not defaulted.
				if len(entry.Stats) != len(statNames) {
					continue
				}

				stats := make([]dataset.PlayerStat, len(statNames))
				for i, name := range statNames {
					stats[i] = dataset.PlayerStat{Name: name, Value: entry.Stats[i]}
				}

				players = append(players, dataset.MatchPlayer{
					ID:       entry.Athlete.ID,
					Name:     entry.Athlete.DisplayName,
					Team:     team.Abbreviation,
					Position: entry.Athlete.Position.Abbreviation,
					StatType: category.Type,
					Stats:    stats,
				})
			}
		}
	}
	return players
}

// PlayerByID builds a last-write-wins lookup keyed by athlete id.
func PlayerByID(players []dataset.MatchPlayer) map[string]dataset.MatchPlayer {
	m := make(map[string]dataset.MatchPlayer, len(players))
	for _, p := range players {
		m[p.ID] = p
	}
	return m
}

// CompetitorByID builds a last-write-wins lookup keyed by competitor id.
func CompetitorByID(competitors []dataset.Competitor) map[string]dataset.Competitor {
	m := make(map[string]dataset.Competitor, len(competitors))
	for _, c := range competitors {
		m[c.ID] = c
	}
	return m
}

// parseScore converts the API's string score. Anything that is not a whole
// number comes back as -1 rather than a silent zero.
func parseScore(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func parseOfficials(info GameInfoResponse) []string {
	officials := make([]string, 0, len(info.Officials))
	for _, o := range info.Officials {
		officials = append(officials, o.DisplayName)
	}
	return officials
}

func formatVenue(v *VenueResponse) *dataset.Venue {
	if v == nil {
		return nil
	}
	return &dataset.Venue{
		Capacity: v.Capacity,
		FullName: v.FullName,
		City:     v.Address.City,
		State:    v.Address.State,
	}
}
