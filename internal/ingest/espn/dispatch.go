package espn

import (
	"encoding/json"
	"fmt"

	"github.com/fortuna/scorefeed/internal/dataset"
)

// Sport selects which play-by-play extraction applies to a match summary.
// SportGeneric covers leagues without a dedicated extraction, which still
// yield the sport-agnostic detail.
type Sport string

const (
	SportBaseball   Sport = "baseball"
	SportBasketball Sport = "basketball"
	SportHockey     Sport = "hockey"
	SportGeneric    Sport = "generic"
	SportFootball   Sport = "football"
)

// League slugs as they appear in API paths.
const (
	LeagueMLB                    = "mlb"
	LeagueNHL                    = "nhl"
	LeagueNBA                    = "nba"
	LeagueWNBA                   = "wnba"
	LeagueNFL                    = "nfl"
	LeagueCollegeBasketballMen   = "mens-college-basketball"
	LeagueCollegeBasketballWomen = "womens-college-basketball"
)

var sportByLeague = map[string]Sport{
	LeagueMLB:                    SportBaseball,
	LeagueNHL:                    SportHockey,
	LeagueNBA:                    SportBasketball,
	LeagueWNBA:                   SportBasketball,
	LeagueCollegeBasketballMen:   SportBasketball,
	LeagueCollegeBasketballWomen: SportBasketball,
	LeagueNFL:                    SportGeneric,
}

// SportByLeague maps a league slug to its sport. Unknown leagues fall back
// to the generic extraction.
func SportByLeague(league string) Sport {
	if sport, ok := sportByLeague[league]; ok {
		return sport
	}
	return SportGeneric
}

// APISport maps a Sport to the path segment used by the API. Leagues routed
// through the generic extraction still need their real sport in the URL, so
// callers that know it pass it through untouched.
func APISport(sport Sport) Sport {
	if sport == SportGeneric {
		return SportFootball
	}
	return sport
}

// ParseMatchDetailBySport unmarshals a raw event summary and runs the
// extraction for the given sport. The concrete record type depends on the
// sport; all of them satisfy dataset.MatchRecord.
func ParseMatchDetailBySport(raw []byte, sport Sport) (dataset.MatchRecord, error) {
	switch sport {
	case SportBaseball:
		var summary BaseballEventSummary
		if err := json.Unmarshal(raw, &summary); err != nil {
			return nil, fmt.Errorf("decoding baseball summary: %w", err)
		}
		return ParseBaseballMatchDetail(summary)

	case SportBasketball:
		var summary BasketballEventSummary
		if err := json.Unmarshal(raw, &summary); err != nil {
			return nil, fmt.Errorf("decoding basketball summary: %w", err)
		}
		return ParseBasketballMatchDetail(summary)

	case SportHockey:
		var summary HockeyEventSummary
		if err := json.Unmarshal(raw, &summary); err != nil {
			return nil, fmt.Errorf("decoding hockey summary: %w", err)
		}
		return ParseHockeyMatchDetail(summary)

	case SportGeneric, SportFootball:
		var summary EventSummaryResponse
		if err := json.Unmarshal(raw, &summary); err != nil {
			return nil, fmt.Errorf("decoding match summary: %w", err)
		}
		return ParseMatchDetail(summary)

	default:
		return nil, fmt.Errorf("unsupported sport %q", sport)
	}
}
