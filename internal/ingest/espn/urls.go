package espn

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	domainName     = "espn.com"
	apiBaseURL     = "https://site.web.api.espn.com"
	oneFeedBaseURL = "https://onefeed.fan.api.espn.com"

	// ArticleFeedLimit is the page size requested from the onefeed endpoint.
	ArticleFeedLimit = 20
)

// Pubkeys used by the onefeed endpoint for leagues whose feed name differs
// from the league slug.
var articleFeedPubkeys = map[string]string{
	LeagueCollegeBasketballMen:   "ncb",
	LeagueCollegeBasketballWomen: "ncaaw",
}

// StandingsURL builds the standings endpoint for a league. The endpoint
// describes every season regardless of the season parameter.
func StandingsURL(sport Sport, league string, season int) string {
	u, _ := url.Parse(fmt.Sprintf("%s/apis/v2/sports/%s/%s/standings", apiBaseURL, sport, league))
	q := u.Query()
	q.Set("lang", "en")
	q.Set("region", "us")
	q.Set("level", "1")
	q.Set("season", strconv.Itoa(season))
	u.RawQuery = q.Encode()
	return u.String()
}

// ScoreboardURL builds the scoreboard endpoint for one day (YYYYMMDD).
func ScoreboardURL(sport Sport, league, date string) string {
	u, _ := url.Parse(fmt.Sprintf("%s/apis/site/v2/sports/%s/%s/scoreboard", apiBaseURL, sport, league))
	q := u.Query()
	q.Set("dates", date)
	u.RawQuery = q.Encode()
	return u.String()
}

// EventSummaryURL builds the match summary endpoint for one event.
func EventSummaryURL(sport Sport, league, eventID string) string {
	u, _ := url.Parse(fmt.Sprintf("%s/apis/site/v2/sports/%s/%s/summary", apiBaseURL, sport, league))
	q := u.Query()
	q.Set("event", eventID)
	u.RawQuery = q.Encode()
	return u.String()
}

// ArticleFeedURL builds one page of a league's news feed.
func ArticleFeedURL(league string, offset int) string {
	pubkey := league
	if k, ok := articleFeedPubkeys[league]; ok {
		pubkey = k
	}
	u, _ := url.Parse(fmt.Sprintf("%s/apis/v3/cached/contentEngine/oneFeed/leagues/%s", oneFeedBaseURL, pubkey))
	q := u.Query()
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(ArticleFeedLimit))
	u.RawQuery = q.Encode()
	return u.String()
}

// ArticleDetailURL builds the content endpoint for one story id.
func ArticleDetailURL(storyID string) string {
	return fmt.Sprintf("%s/apis/v3/cached/contentEngine/items/%s", oneFeedBaseURL, storyID)
}

// IsArticleDetailURL reports whether a link points at a story detail page on
// espn.com. Feed stubs also link out to video clips and external sites;
// those are not followable.
func IsArticleDetailURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host != domainName && !strings.HasSuffix(host, "."+domainName) {
		return false
	}
	return strings.Contains(u.Path, "/story/")
}

// StoryIDFromURL extracts the numeric story id from a detail page URL,
// e.g. /nhl/story/_/id/34112358/some-slug -> 34112358.
func StoryIDFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	segments := strings.Split(u.Path, "/")
	for i, segment := range segments {
		if segment != "id" || i+1 >= len(segments) {
			continue
		}
		id := segments[i+1]
		if _, err := strconv.Atoi(id); err == nil {
			return id, true
		}
	}
	return "", false
}
