package crawl

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fortuna/scorefeed/internal/ingest/espn"
)

// Job describes what to collect for one league. Seasons select the standings
// windows to walk for match data; SeasonTypes narrows them to specific
// phases (regular season, playoffs) by abbreviation, empty meaning all.
type Job struct {
	League       string   `json:"league"`
	Seasons      []int    `json:"seasons"`
	SeasonTypes  []string `json:"seasonTypes"`
	MatchList    bool     `json:"matchList"`
	MatchDetails bool     `json:"matchDetails"`
	News         bool     `json:"news"`
}

// Input is a full crawl submission, one job per league.
type Input struct {
	Jobs []Job `json:"jobs"`
}

// ParseInput decodes and validates a crawl submission.
func ParseInput(raw []byte) (Input, error) {
	var in Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return Input{}, fmt.Errorf("decoding crawl input: %w", err)
	}
	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// Validate checks that every job can actually produce work.
func (in Input) Validate() error {
	if len(in.Jobs) == 0 {
		return fmt.Errorf("crawl input has no jobs")
	}
	for i, job := range in.Jobs {
		if job.League == "" {
			return fmt.Errorf("job %d: league is required", i)
		}
		if !job.MatchList && !job.MatchDetails && !job.News {
			return fmt.Errorf("job %d (%s): nothing to collect", i, job.League)
		}
		if (job.MatchList || job.MatchDetails) && len(job.Seasons) == 0 {
			return fmt.Errorf("job %d (%s): match collection needs at least one season", i, job.League)
		}
	}
	return nil
}

// Sport resolves the extraction that applies to the job's league.
func (j Job) Sport() espn.Sport {
	return espn.SportByLeague(j.League)
}

// Season window dates come without seconds.
const seasonDateLayout = "2006-01-02T15:04Z07:00"

// DatesBetween lists every day of a season window as YYYYMMDD, inclusive.
// The end is clamped at today so in-progress seasons only walk played days.
func DatesBetween(start, end string, now time.Time) ([]string, error) {
	from, err := parseSeasonDate(start)
	if err != nil {
		return nil, fmt.Errorf("parsing window start %q: %w", start, err)
	}
	to, err := parseSeasonDate(end)
	if err != nil {
		return nil, fmt.Errorf("parsing window end %q: %w", end, err)
	}

	if to.After(now) {
		to = now
	}

	from = from.UTC().Truncate(24 * time.Hour)
	to = to.UTC().Truncate(24 * time.Hour)

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("20060102"))
	}
	return dates, nil
}

func parseSeasonDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(seasonDateLayout, s)
}
