package dataset

// BasketballScoreType classifies a shot attempt.
type BasketballScoreType string

const (
	ScoreFreeThrow    BasketballScoreType = "free-throw"
	ScoreTwoPointer   BasketballScoreType = "2-pointer"
	ScoreThreePointer BasketballScoreType = "3-pointer"
)

// BasketballScoring is one shot attempt, made or missed.
type BasketballScoring struct {
	ID            string              `json:"id"`
	HomeScore     int                 `json:"homeScore"`
	AwayScore     int                 `json:"awayScore"`
	Scored        bool                `json:"scored"`
	Description   string              `json:"description"`
	Type          BasketballScoreType `json:"type"`
	Shooter       *AthleteRef         `json:"shooter,omitempty"`
	TimeInSeconds int                 `json:"timeInSeconds"`
}

// BasketballMatchDetail extends the general match detail with scoring plays.
type BasketballMatchDetail struct {
	MatchDetail
	Scoring []BasketballScoring `json:"scoring"`
}
