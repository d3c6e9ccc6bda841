package dataset

// HockeyShot is one shot attempt. Assists stay empty unless the shot scored.
type HockeyShot struct {
	ID            string       `json:"id"`
	HomeScore     int          `json:"homeScore"`
	AwayScore     int          `json:"awayScore"`
	Scored        bool         `json:"scored"`
	Team          string       `json:"team"`
	Shooter       AthleteRef   `json:"shooter"`
	Assists       []AthleteRef `json:"assists"`
	TimeInSeconds int          `json:"timeInSeconds"`
	Description   string       `json:"description"`
}

// HockeyPenalty is one penalty call.
type HockeyPenalty struct {
	ID             string      `json:"id"`
	Team           string      `json:"team"`
	PunishedPlayer *AthleteRef `json:"punishedPlayer"`
	TimeInSeconds  int         `json:"timeInSeconds"`
	// LengthInMinutes is nil when the description carried no parseable count.
	LengthInMinutes *int   `json:"lengthInMinutes"`
	Description     string `json:"description"`
}

// HockeyMatchDetail extends the general match detail with shots and penalties.
type HockeyMatchDetail struct {
	MatchDetail
	Shooting  []HockeyShot    `json:"shooting"`
	Penalties []HockeyPenalty `json:"penalties"`
}
