package espn

import "testing"

func articleStub(headline, href, story string) ArticleResponse {
	a := ArticleResponse{
		Headline:  headline,
		Story:     story,
		Published: "2024-01-15T14:02:00Z",
	}
	a.Links.Web.Href = href
	return a
}

func TestParseArticleFull(t *testing.T) {
	stub := articleStub("Rangers clinch", "https://www.espn.com/nhl/story/_/id/34112358/rangers-clinch", "<p>The Rangers clinched the division.</p>")
	stub.Description = "Rangers clinch the division"
	stub.Images = []struct {
		URL string `json:"url"`
	}{{URL: "https://a.espncdn.com/photo/2024/rangers.jpg"}}

	got := ParseArticle("nhl", stub)
	if got.Article == nil {
		t.Fatal("Article is nil")
	}
	a := got.Article
	if a.League != "nhl" || a.Title != "Rangers clinch" {
		t.Errorf("article = %+v", a)
	}
	if a.Description != "Rangers clinch the division" {
		t.Errorf("Description = %q", a.Description)
	}
	if a.ImageURL == nil || *a.ImageURL != "https://a.espncdn.com/photo/2024/rangers.jpg" {
		t.Errorf("ImageURL = %v", a.ImageURL)
	}
}

func TestParseArticleStoryFallbacks(t *testing.T) {
	story := `<p>The Rangers clinched the division on Tuesday night.</p><img src="https://a.espncdn.com/photo/2024/inline.jpg"/>`
	stub := articleStub("Rangers clinch", "https://www.espn.com/nhl/story/_/id/34112358/rangers-clinch", story)

	got := ParseArticle("nhl", stub)
	if got.Article == nil {
		t.Fatal("Article is nil")
	}
	if got.Article.Description != "The Rangers clinched the division on Tuesday night." {
		t.Errorf("Description = %q", got.Article.Description)
	}
	if got.Article.ImageURL == nil || *got.Article.ImageURL != "https://a.espncdn.com/photo/2024/inline.jpg" {
		t.Errorf("ImageURL = %v", got.Article.ImageURL)
	}
}

func TestParseArticleFollowUp(t *testing.T) {
	stub := articleStub("Rangers clinch", "https://www.espn.com/nhl/story/_/id/34112358/rangers-clinch", "")

	got := ParseArticle("nhl", stub)
	if got.Article != nil {
		t.Errorf("Article = %+v, want nil", got.Article)
	}
	if got.FollowUpURL != "https://www.espn.com/nhl/story/_/id/34112358/rangers-clinch" {
		t.Errorf("FollowUpURL = %q", got.FollowUpURL)
	}
}

func TestParseArticleUnusable(t *testing.T) {
	tests := []struct {
		name string
		stub ArticleResponse
	}{
		{"no web link", articleStub("Clip", "", "")},
		{"external link without story", articleStub("Clip", "https://www.youtube.com/watch?v=abc", "")},
		{"espn video link without story", articleStub("Clip", "https://www.espn.com/video/clip/_/id/123", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseArticle("nhl", tt.stub); got.Usable() {
				t.Errorf("result = %+v, want unusable", got)
			}
		})
	}
}

func TestParseArticlesFlattensInlines(t *testing.T) {
	wrapper := ArticleResponse{
		Inlines: []ArticleResponse{
			articleStub("First", "https://www.espn.com/nhl/story/_/id/1/first", "<p>one</p>"),
			articleStub("Second", "https://www.espn.com/nhl/story/_/id/2/second", "<p>two</p>"),
		},
	}
	plain := articleStub("Third", "https://www.espn.com/nhl/story/_/id/3/third", "<p>three</p>")
	unusable := articleStub("Clip", "", "")

	got := ParseArticles("nhl", []ArticleResponse{wrapper, plain, unusable})
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	titles := []string{got[0].Article.Title, got[1].Article.Title, got[2].Article.Title}
	want := []string{"First", "Second", "Third"}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles = %v, want %v", titles, want)
			break
		}
	}
}

func TestStorySummaryCapped(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "0123456789"
	}
	got := storySummary("<p>" + long + "</p>")
	if len([]rune(got)) != storySummaryLimit {
		t.Errorf("summary length = %d, want %d", len([]rune(got)), storySummaryLimit)
	}
}
