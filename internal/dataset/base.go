package dataset

// ResultType tags every record pushed to the results dataset.
type ResultType string

const (
	ResultMatchList   ResultType = "matchList"
	ResultMatchDetail ResultType = "matchDetail"
	ResultArticle     ResultType = "article"
)

// Venue describes where a match was played.
type Venue struct {
	Capacity int     `json:"capacity"`
	FullName string  `json:"fullName"`
	City     *string `json:"city"`
	State    *string `json:"state"`
}

// Competitor is one of the two teams in a match occurrence.
type Competitor struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
	// Winner stays nil when the API omitted the flag, which is not the same
	// as losing.
	Winner *bool `json:"winner"`
	Home   bool  `json:"home"`
	// Score is -1 when the source value was not a whole number, so bad data
	// stays visible instead of turning into a zero.
	Score int `json:"score"`
}

// Headline pairs the long and short form of a competition headline.
type Headline struct {
	Long  string `json:"long"`
	Short string `json:"short"`
}

// Competition is one match occurrence as listed on a scoreboard day.
type Competition struct {
	ID                 string       `json:"id"`
	Date               string       `json:"date"`
	Competitors        []Competitor `json:"competitors"`
	Attendance         int          `json:"attendance"`
	Headlines          []Headline   `json:"headlines"`
	Venue              *Venue       `json:"venue"`
	WinnerAbbreviation *string      `json:"winnerAbbreviation"`
}

// MatchID returns the stable match identifier.
func (c Competition) MatchID() string { return c.ID }

// PlayerStat is one named stat value. Order follows the source's label order,
// and values stay opaque strings since some are fractional or formatted.
type PlayerStat struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MatchPlayer is one athlete within one statistics category of a box score.
// An athlete appears more than once when a sport keeps separate categories,
// e.g. batting and pitching.
type MatchPlayer struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Team     string       `json:"team"`
	Position string       `json:"position,omitempty"`
	StatType string       `json:"statType,omitempty"`
	Stats    []PlayerStat `json:"stats"`
}

// Stat looks up a stat value by name.
func (p MatchPlayer) Stat(name string) (string, bool) {
	for _, s := range p.Stats {
		if s.Name == name {
			return s.Value, true
		}
	}
	return "", false
}

// MatchDetail is the sport-agnostic match detail shape. Each sport extends it
// with one play-by-play collection.
type MatchDetail struct {
	Competition
	Officials []string      `json:"officials"`
	Players   []MatchPlayer `json:"players"`
}

// MatchRecord is satisfied by every match detail variant.
type MatchRecord interface {
	MatchID() string
}

// AthleteRef points at an athlete involved in a play. Team is empty for
// sports that do not attach one.
type AthleteRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team string `json:"team,omitempty"`
}

// Article is a fully parsed news article.
type Article struct {
	League      string  `json:"league"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	URL         string  `json:"url"`
	ImageURL    *string `json:"imageUrl"`
	PublishedAt string  `json:"publishedAt"`
}
