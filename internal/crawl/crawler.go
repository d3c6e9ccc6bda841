package crawl

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fortuna/scorefeed/internal/dataset"
	"github.com/fortuna/scorefeed/internal/ingest/espn"
)

// DefaultConcurrency is the worker count used when none is configured.
const DefaultConcurrency = 15

// popTimeout bounds how long an idle worker waits before checking whether
// the run has drained.
const popTimeout = 2 * time.Second

// Sink receives every record the crawl produces.
type Sink interface {
	Push(ctx context.Context, resultType dataset.ResultType, sourceID string, record any) error
}

// MatchListRecord is one scoreboard entry plus the crawl context it came
// from.
type MatchListRecord struct {
	dataset.Competition
	Sport  espn.Sport `json:"sport"`
	League string     `json:"league"`
	Season int        `json:"season"`
	URL    string     `json:"url"`
}

// Crawler drains the request queue with a bounded worker pool, fanning
// discovered work back into the queue and pushing finished records to the
// sink.
type Crawler struct {
	client      *espn.Client
	queue       *Queue
	sink        Sink
	concurrency int
}

// NewCrawler wires a crawler. A non-positive concurrency falls back to the
// default.
func NewCrawler(client *espn.Client, queue *Queue, sink Sink, concurrency int) *Crawler {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Crawler{
		client:      client,
		queue:       queue,
		sink:        sink,
		concurrency: concurrency,
	}
}

// Enqueue seeds the queue from a validated crawl input.
func (c *Crawler) Enqueue(ctx context.Context, in Input) error {
	for _, job := range in.Jobs {
		sport := job.Sport()

		if job.MatchList || job.MatchDetails {
			for _, season := range job.Seasons {
				req := Request{
					Label:       LabelScoreDates,
					URL:         espn.StandingsURL(espn.APISport(sport), job.League, season),
					Sport:       sport,
					League:      job.League,
					Season:      season,
					SeasonTypes: job.SeasonTypes,
					StoreList:   job.MatchList,
					WantDetails: job.MatchDetails,
				}
				if _, err := c.queue.Push(ctx, req); err != nil {
					return err
				}
			}
		}

		if job.News {
			req := Request{
				Label:  LabelArticleFeed,
				URL:    espn.ArticleFeedURL(job.League, 0),
				League: job.League,
				Offset: 0,
			}
			if _, err := c.queue.Push(ctx, req); err != nil {
				return err
			}
		}
	}
	return nil
}

// Run processes the queue until it drains or the context is canceled.
// Request failures are logged and dropped; they never stop the run.
func (c *Crawler) Run(ctx context.Context) error {
	log.Printf("[crawler] Starting run with %d workers", c.concurrency)

	var busy atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < c.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}

				req, ok, err := c.queue.Pop(ctx, popTimeout)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					log.Printf("[crawler] Queue error: %v", err)
					continue
				}
				if !ok {
					// Empty queue only ends the run once every worker is
					// idle; a busy worker may still fan out new requests.
					if busy.Load() == 0 {
						return
					}
					continue
				}

				busy.Add(1)
				if err := c.handle(ctx, req); err != nil {
					log.Printf("[crawler] %s request failed: %v", req.Label, err)
				}
				busy.Add(-1)
			}
		}()
	}

	wg.Wait()
	log.Printf("[crawler] Run finished")
	return ctx.Err()
}

func (c *Crawler) handle(ctx context.Context, req Request) error {
	switch req.Label {
	case LabelScoreDates:
		return c.handleScoreDates(ctx, req)
	case LabelScoreboard:
		return c.handleScoreboard(ctx, req)
	case LabelMatchDetail:
		return c.handleMatchDetail(ctx, req)
	case LabelArticleFeed:
		return c.handleArticleFeed(ctx, req)
	case LabelArticleDetail:
		return c.handleArticleDetail(ctx, req)
	default:
		return fmt.Errorf("unknown label %q for %s", req.Label, req.URL)
	}
}

// handleScoreDates resolves a season's date windows from the standings
// endpoint and fans out one scoreboard request per day.
func (c *Crawler) handleScoreDates(ctx context.Context, req Request) error {
	body, err := c.client.Get(ctx, req.URL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", req.URL, err)
	}

	var standings espn.StandingsResponse
	if err := json.Unmarshal(body, &standings); err != nil {
		return fmt.Errorf("decoding standings from %s: %w", req.URL, err)
	}

	for _, season := range standings.Seasons {
		if season.Year != req.Season {
			continue
		}
		for _, window := range season.Types {
			if !seasonTypeWanted(window, req.SeasonTypes) {
				continue
			}

			dates, err := DatesBetween(window.StartDate, window.EndDate, time.Now())
			if err != nil {
				log.Printf("[crawler] Skipping window %s %d %s: %v", req.League, req.Season, window.Name, err)
				continue
			}

			for _, date := range dates {
				next := Request{
					Label:       LabelScoreboard,
					URL:         espn.ScoreboardURL(espn.APISport(req.Sport), req.League, date),
					Sport:       req.Sport,
					League:      req.League,
					Season:      req.Season,
					StoreList:   req.StoreList,
					WantDetails: req.WantDetails,
				}
				if _, err := c.queue.Push(ctx, next); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func seasonTypeWanted(window espn.SeasonWindow, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if w == window.Abbreviation || w == window.Name {
			return true
		}
	}
	return false
}

// handleScoreboard emits one match list record per competition and fans out
// detail requests when asked for.
func (c *Crawler) handleScoreboard(ctx context.Context, req Request) error {
	body, err := c.client.Get(ctx, req.URL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", req.URL, err)
	}

	var scoreboard espn.ScoreboardResponse
	if err := json.Unmarshal(body, &scoreboard); err != nil {
		return fmt.Errorf("decoding scoreboard from %s: %w", req.URL, err)
	}

	for _, event := range scoreboard.Events {
		for _, comp := range event.Competitions {
			competition := espn.ParseCompetition(comp)

			if req.StoreList {
				record := MatchListRecord{
					Competition: competition,
					Sport:       req.Sport,
					League:      req.League,
					Season:      req.Season,
					URL:         req.URL,
				}
				if err := c.sink.Push(ctx, dataset.ResultMatchList, competition.ID, record); err != nil {
					return fmt.Errorf("pushing match list record %s: %w", competition.ID, err)
				}
			}

			if req.WantDetails {
				next := Request{
					Label:  LabelMatchDetail,
					URL:    espn.EventSummaryURL(espn.APISport(req.Sport), req.League, competition.ID),
					Sport:  req.Sport,
					League: req.League,
					Season: req.Season,
				}
				if _, err := c.queue.Push(ctx, next); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (c *Crawler) handleMatchDetail(ctx context.Context, req Request) error {
	body, err := c.client.Get(ctx, req.URL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", req.URL, err)
	}

	record, err := espn.ParseMatchDetailBySport(body, req.Sport)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", req.URL, err)
	}

	if err := c.sink.Push(ctx, dataset.ResultMatchDetail, record.MatchID(), record); err != nil {
		return fmt.Errorf("pushing match detail %s: %w", record.MatchID(), err)
	}
	return nil
}

// handleArticleFeed emits the page's usable articles, follows story stubs
// that need a detail fetch, and pages forward while the feed declares more
// results.
func (c *Crawler) handleArticleFeed(ctx context.Context, req Request) error {
	body, err := c.client.Get(ctx, req.URL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", req.URL, err)
	}

	var feed espn.ArticleFeedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return fmt.Errorf("decoding article feed from %s: %w", req.URL, err)
	}

	var stubs []espn.ArticleResponse
	for _, item := range feed.Feed {
		stubs = append(stubs, item.Data.Now...)
	}

	for _, result := range espn.ParseArticles(req.League, stubs) {
		switch {
		case result.Article != nil:
			if err := c.sink.Push(ctx, dataset.ResultArticle, result.Article.URL, result.Article); err != nil {
				return fmt.Errorf("pushing article %s: %w", result.Article.URL, err)
			}
		case result.FollowUpURL != "":
			storyID, ok := espn.StoryIDFromURL(result.FollowUpURL)
			if !ok {
				log.Printf("[crawler] No story id in %s", result.FollowUpURL)
				continue
			}
			next := Request{
				Label:  LabelArticleDetail,
				URL:    espn.ArticleDetailURL(storyID),
				League: req.League,
			}
			if _, err := c.queue.Push(ctx, next); err != nil {
				return err
			}
		}
	}

	if req.Offset+espn.ArticleFeedLimit < feed.ResultsCount {
		next := Request{
			Label:  LabelArticleFeed,
			URL:    espn.ArticleFeedURL(req.League, req.Offset+espn.ArticleFeedLimit),
			League: req.League,
			Offset: req.Offset + espn.ArticleFeedLimit,
		}
		if _, err := c.queue.Push(ctx, next); err != nil {
			return err
		}
	}
	return nil
}

func (c *Crawler) handleArticleDetail(ctx context.Context, req Request) error {
	body, err := c.client.Get(ctx, req.URL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", req.URL, err)
	}

	var detail espn.ArticleDetailResponse
	if err := json.Unmarshal(body, &detail); err != nil {
		return fmt.Errorf("decoding article detail from %s: %w", req.URL, err)
	}

	result := espn.ParseArticle(req.League, detail.Content)
	if result.Article == nil {
		// A detail payload that still lacks story content is a dead end,
		// not a further follow-up.
		log.Printf("[crawler] Article detail %s had no usable content", req.URL)
		return nil
	}

	if err := c.sink.Push(ctx, dataset.ResultArticle, result.Article.URL, result.Article); err != nil {
		return fmt.Errorf("pushing article %s: %w", result.Article.URL, err)
	}
	return nil
}
