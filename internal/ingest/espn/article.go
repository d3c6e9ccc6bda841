package espn

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/scorefeed/internal/dataset"
)

const storySummaryLimit = 200

// ArticleResult is the outcome of parsing one feed stub. Exactly one of the
// fields is set: a fully parsed article, or the URL of a detail page that
// has to be fetched separately. A result with neither is unusable and gets
// dropped by the caller.
type ArticleResult struct {
	Article     *dataset.Article
	FollowUpURL string
}

// Usable reports whether the result carries anything to act on.
func (r ArticleResult) Usable() bool {
	return r.Article != nil || r.FollowUpURL != ""
}

// ParseArticles flattens a list of feed stubs. Wrapper stubs that only hold
// an inline list are replaced by their children, depth first; the wrapper
// itself is discarded.
func ParseArticles(league string, articles []ArticleResponse) []ArticleResult {
	var results []ArticleResult
	for _, article := range articles {
		if len(article.Inlines) > 0 {
			results = append(results, ParseArticles(league, article.Inlines)...)
			continue
		}
		if result := ParseArticle(league, article); result.Usable() {
			results = append(results, result)
		}
	}
	return results
}

// ParseArticle turns one leaf stub into a result. Stubs without a web link
// are unusable. Stubs with story content become full articles. Stubs that
// only link out become follow-ups when the link points at an espn.com story
// page, otherwise they are dropped (video clips, external sites).
func ParseArticle(league string, article ArticleResponse) ArticleResult {
	link := article.Links.Web.Href
	if link == "" {
		return ArticleResult{}
	}

	if article.Story == "" {
		if IsArticleDetailURL(link) {
			return ArticleResult{FollowUpURL: link}
		}
		return ArticleResult{}
	}

	description := article.Description
	if description == "" {
		description = storySummary(article.Story)
	}

	return ArticleResult{Article: &dataset.Article{
		League:      league,
		Title:       article.Headline,
		Description: description,
		Content:     article.Story,
		URL:         link,
		ImageURL:    articleImage(article),
		PublishedAt: article.Published,
	}}
}

// articleImage picks the lead image. The feed's image list wins; articles
// without one fall back to the first image embedded in the story markup.
func articleImage(article ArticleResponse) *string {
	if len(article.Images) > 0 {
		u := article.Images[0].URL
		return &u
	}
	return firstStoryImage(article.Story)
}

func firstStoryImage(story string) *string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(story))
	if err != nil {
		return nil
	}
	src, ok := doc.Find("img").First().Attr("src")
	if !ok || src == "" {
		return nil
	}
	return &src
}

// storySummary derives a short description from the first paragraph of the
// story markup, capped at a fixed rune count.
func storySummary(story string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(story))
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(doc.Find("p").First().Text())
	runes := []rune(text)
	if len(runes) > storySummaryLimit {
		return string(runes[:storySummaryLimit])
	}
	return text
}
