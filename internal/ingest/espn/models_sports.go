package espn

// Sport-specific match summary shapes. The payloads are structurally
// different per sport, so each gets its own typed summary embedding the
// sport-agnostic EventSummaryResponse.

// PlayReference links an at-bat to a play by a path-like reference whose
// trailing segment indexes into the play list.
type PlayReference struct {
	Ref string `json:"$ref"`
}

// BaseballParticipant carries the role an athlete held in a play.
type BaseballParticipant struct {
	Athlete struct {
		ID string `json:"id"`
	} `json:"athlete"`
	Type string `json:"type"`
}

// BaseballPlay is one event of a baseball play log. Plays describing a
// thrown pitch carry a PitchType.
type BaseballPlay struct {
	ID        string           `json:"id"`
	HomeScore int              `json:"homeScore"`
	AwayScore int              `json:"awayScore"`
	Text      string           `json:"text"`
	Type      PlayTypeResponse `json:"type"`
	PitchType *struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"pitchType"`
	ResultCount struct {
		Balls   int `json:"balls"`
		Strikes int `json:"strikes"`
	} `json:"resultCount"`
	Participants []BaseballParticipant `json:"participants"`
}

// BaseballEventSummary is a baseball match summary with its play log and the
// at-bat grouping table.
type BaseballEventSummary struct {
	EventSummaryResponse
	Plays  []BaseballPlay             `json:"plays"`
	AtBats map[string][]PlayReference `json:"atBats"`
}

// BasketballPlay is one event of a basketball play log.
type BasketballPlay struct {
	ID           string           `json:"id"`
	HomeScore    int              `json:"homeScore"`
	AwayScore    int              `json:"awayScore"`
	Text         string           `json:"text"`
	ShootingPlay bool             `json:"shootingPlay"`
	ScoringPlay  bool             `json:"scoringPlay"`
	Type         PlayTypeResponse `json:"type"`
	Clock        ClockResponse    `json:"clock"`
	Period       PeriodResponse   `json:"period"`
	Participants []struct {
		Athlete struct {
			ID string `json:"id"`
		} `json:"athlete"`
	} `json:"participants"`
}

// BasketballEventSummary is a basketball match summary.
type BasketballEventSummary struct {
	EventSummaryResponse
	Plays  []BasketballPlay `json:"plays"`
	Format FormatResponse   `json:"format"`
}

// HockeyParticipant distinguishes shot takers from setup players: a shooter
// carries a year-to-date goals figure, assisting players a year-to-date
// assists figure.
type HockeyParticipant struct {
	Athlete struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"athlete"`
	YTDGoals   *int `json:"ytdGoals"`
	YTDAssists *int `json:"ytdAssists"`
}

// HockeyPlay is one event of a hockey play log.
type HockeyPlay struct {
	ID           string           `json:"id"`
	HomeScore    int              `json:"homeScore"`
	AwayScore    int              `json:"awayScore"`
	Text         string           `json:"text"`
	ShootingPlay bool             `json:"shootingPlay"`
	ScoringPlay  bool             `json:"scoringPlay"`
	Type         PlayTypeResponse `json:"type"`
	Clock        ClockResponse    `json:"clock"`
	Period       PeriodResponse   `json:"period"`
	Team         struct {
		ID string `json:"id"`
	} `json:"team"`
	Participants []HockeyParticipant `json:"participants"`
}

// HockeyEventSummary is a hockey match summary.
type HockeyEventSummary struct {
	EventSummaryResponse
	Plays  []HockeyPlay   `json:"plays"`
	Format FormatResponse `json:"format"`
}

// ArticleLinks holds the web link of an article stub.
type ArticleLinks struct {
	Web struct {
		Href string `json:"href"`
	} `json:"web"`
}

// ArticleResponse is one article stub from the news feed. Wrapper stubs
// carry an Inlines list instead of content of their own.
type ArticleResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Headline    string            `json:"headline"`
	Description string            `json:"description"`
	Story       string            `json:"story"`
	Links       ArticleLinks      `json:"links"`
	Published   string            `json:"published"`
	Inlines     []ArticleResponse `json:"inlines"`
}

// ArticleFeedResponse is one page of the onefeed endpoint.
type ArticleFeedResponse struct {
	Feed []struct {
		Data struct {
			Now []ArticleResponse `json:"now"`
		} `json:"data"`
	} `json:"feed"`
	ResultsCount int `json:"resultsCount"`
}

// ArticleDetailResponse wraps a single fully loaded article.
type ArticleDetailResponse struct {
	Content ArticleResponse `json:"content"`
}
