package dataset

// Pitch is one thrown pitch within an at-bat.
type Pitch struct {
	PitchType string `json:"pitchType"`
	Strike    bool   `json:"strike"`
	Outcome   string `json:"outcome"`
}

// BaseballAtBat is one batter's complete plate appearance, grouping every
// pitch thrown until a result. Derived per match detail request, never
// persisted apart from its parent match.
type BaseballAtBat struct {
	ID          string      `json:"id"`
	HomeScore   int         `json:"homeScore"`
	AwayScore   int         `json:"awayScore"`
	Description string      `json:"description"`
	Balls       int         `json:"balls"`
	Strikes     int         `json:"strikes"`
	Outcome     string      `json:"outcome"`
	Pitches     []Pitch     `json:"pitches"`
	Pitcher     *AthleteRef `json:"pitcher,omitempty"`
	Batter      *AthleteRef `json:"batter,omitempty"`
}

// BaseballMatchDetail extends the general match detail with at-bats.
type BaseballMatchDetail struct {
	MatchDetail
	AtBats []BaseballAtBat `json:"atBats"`
}
