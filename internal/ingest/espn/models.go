package espn

// Typed response shapes for the ESPN endpoints scorefeed consumes. Only the
// fields the extractors read are modeled; everything else in the payload is
// ignored by the decoder.

// StandingsResponse describes every season of a league, including the date
// window of each season type.
type StandingsResponse struct {
	Seasons []struct {
		Year  int            `json:"year"`
		Types []SeasonWindow `json:"types"`
	} `json:"seasons"`
}

// SeasonWindow is one season phase (pre, regular, post, off) and its dates.
type SeasonWindow struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// VenueResponse carries venue details. City and state are sometimes null.
type VenueResponse struct {
	Capacity int    `json:"capacity"`
	FullName string `json:"fullName"`
	Address  struct {
		City  *string `json:"city"`
		State *string `json:"state"`
	} `json:"address"`
}

// TeamResponse identifies a team within a competitor or box score block.
type TeamResponse struct {
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

// CompetitorResponse is one team's entry in a competition. Winner is a
// pointer because the API omits the flag for matches without a decision yet.
type CompetitorResponse struct {
	ID       string       `json:"id"`
	HomeAway string       `json:"homeAway"`
	Winner   *bool        `json:"winner"`
	Team     TeamResponse `json:"team"`
	Score    string       `json:"score"`
}

// HeadlineResponse is one competition headline.
type HeadlineResponse struct {
	Description   string `json:"description"`
	ShortLinkText string `json:"shortLinkText"`
}

// CompetitionResponse is one match occurrence.
type CompetitionResponse struct {
	ID          string               `json:"id"`
	Date        string               `json:"date"`
	Attendance  int                  `json:"attendance"`
	Headlines   []HeadlineResponse   `json:"headlines"`
	Venue       *VenueResponse       `json:"venue"`
	Competitors []CompetitorResponse `json:"competitors"`
}

// ScoreboardResponse lists the events of one scoreboard day.
type ScoreboardResponse struct {
	Events []struct {
		Competitions []CompetitionResponse `json:"competitions"`
	} `json:"events"`
}

// AthleteResponse identifies an athlete in a box score entry.
type AthleteResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Position    struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
}

// StatCategoryResponse is one statistics block per team. Some sports publish
// the ordered stat names under "names", others under "labels".
type StatCategoryResponse struct {
	Names    []string `json:"names"`
	Labels   []string `json:"labels"`
	Type     string   `json:"type"`
	Athletes []struct {
		Athlete AthleteResponse `json:"athlete"`
		Stats   []string        `json:"stats"`
	} `json:"athletes"`
}

// BoxScoreResponse holds the per-team player statistics blocks.
type BoxScoreResponse struct {
	Players []struct {
		Team       TeamResponse           `json:"team"`
		Statistics []StatCategoryResponse `json:"statistics"`
	} `json:"players"`
}

// GameInfoResponse is the event summary's game info block. Its venue and
// attendance can differ from the competition header.
type GameInfoResponse struct {
	Attendance int            `json:"attendance"`
	Venue      *VenueResponse `json:"venue"`
	Officials  []struct {
		DisplayName string `json:"displayName"`
	} `json:"officials"`
}

// EventSummaryResponse is the sport-agnostic part of a match summary.
// Sport-specific summaries embed it and add their play list.
type EventSummaryResponse struct {
	GameInfo GameInfoResponse `json:"gameInfo"`
	Header   struct {
		ID           string                `json:"id"`
		Competitions []CompetitionResponse `json:"competitions"`
	} `json:"header"`
	Boxscore BoxScoreResponse `json:"boxscore"`
}

// FormatResponse carries the period layout of a match. Clock lengths are
// decoded as floats because the API serializes them as numbers.
type FormatResponse struct {
	Regulation struct {
		Periods int     `json:"periods"`
		Clock   float64 `json:"clock"`
	} `json:"regulation"`
	Overtime struct {
		Clock float64 `json:"clock"`
	} `json:"overtime"`
}

// ClockResponse is the display clock of a play.
type ClockResponse struct {
	DisplayValue string `json:"displayValue"`
}

// PeriodResponse is the period a play happened in.
type PeriodResponse struct {
	Number int `json:"number"`
}

// PlayTypeResponse describes the kind of a play. Baseball uses the Type
// token, hockey the Abbreviation, basketball the Text.
type PlayTypeResponse struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Type         string `json:"type"`
	Abbreviation string `json:"abbreviation"`
}
