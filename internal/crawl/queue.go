package crawl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fortuna/scorefeed/internal/ingest/espn"
)

// Label routes a queued request to its handler.
type Label string

const (
	LabelScoreDates    Label = "scoreDates"
	LabelScoreboard    Label = "scoreboard"
	LabelMatchDetail   Label = "matchDetail"
	LabelArticleFeed   Label = "articleFeed"
	LabelArticleDetail Label = "articleDetail"
)

// Request is one unit of crawl work. The label decides which fields matter;
// unused ones stay at their zero value.
type Request struct {
	Label       Label      `json:"label"`
	URL         string     `json:"url"`
	Sport       espn.Sport `json:"sport,omitempty"`
	League      string     `json:"league,omitempty"`
	Season      int        `json:"season,omitempty"`
	SeasonTypes []string   `json:"seasonTypes,omitempty"`
	Offset      int        `json:"offset,omitempty"`
	StoreList   bool       `json:"storeList,omitempty"`
	WantDetails bool       `json:"wantDetails,omitempty"`
}

const (
	queueListKey = "scorefeed:queue"
	queueSeenKey = "scorefeed:queue:seen"
)

// Queue is a Redis-backed FIFO of crawl requests with request-level dedup.
// The seen set outlives individual runs, so a URL crawled once in a process
// lifetime is not fetched again until Reset.
type Queue struct {
	client *redis.Client
}

// NewQueue creates a queue connection from a Redis URL.
func NewQueue(redisURL string) (*Queue, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Queue{client: client}, nil
}

// NewQueueWithClient wraps an existing Redis client.
func NewQueueWithClient(client *redis.Client) *Queue {
	return &Queue{client: client}
}

// Close closes the Redis connection.
func (q *Queue) Close() error {
	return q.client.Close()
}

// Push enqueues a request unless its label and URL were seen before.
// Returns whether the request was actually added.
func (q *Queue) Push(ctx context.Context, req Request) (bool, error) {
	added, err := q.client.SAdd(ctx, queueSeenKey, dedupKey(req)).Result()
	if err != nil {
		return false, fmt.Errorf("marking request seen: %w", err)
	}
	if added == 0 {
		return false, nil
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return false, fmt.Errorf("encoding request: %w", err)
	}
	if err := q.client.RPush(ctx, queueListKey, payload).Err(); err != nil {
		return false, fmt.Errorf("enqueueing request: %w", err)
	}
	return true, nil
}

// Pop blocks up to timeout for the next request. ok is false when the queue
// stayed empty.
func (q *Queue) Pop(ctx context.Context, timeout time.Duration) (Request, bool, error) {
	res, err := q.client.BLPop(ctx, timeout, queueListKey).Result()
	if errors.Is(err, redis.Nil) {
		return Request{}, false, nil
	}
	if err != nil {
		return Request{}, false, fmt.Errorf("dequeueing request: %w", err)
	}

	// BLPop returns key and value.
	var req Request
	if err := json.Unmarshal([]byte(res[1]), &req); err != nil {
		return Request{}, false, fmt.Errorf("decoding request: %w", err)
	}
	return req, true, nil
}

// Len reports the number of pending requests.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, queueListKey).Result()
}

// Reset drops all pending requests and the seen set.
func (q *Queue) Reset(ctx context.Context) error {
	return q.client.Del(ctx, queueListKey, queueSeenKey).Err()
}

func dedupKey(req Request) string {
	return string(req.Label) + "|" + req.URL
}
