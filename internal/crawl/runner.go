package crawl

import (
	"context"
	"log"
	"sync"
	"time"
)

// Status is a snapshot of the runner for the jobs API.
type Status struct {
	Running      bool       `json:"running"`
	QueueDepth   int64      `json:"queueDepth"`
	LastStarted  *time.Time `json:"lastStarted,omitempty"`
	LastFinished *time.Time `json:"lastFinished,omitempty"`
	LastError    string     `json:"lastError,omitempty"`
}

// Runner accepts crawl submissions and keeps at most one run draining the
// queue. Submissions during a run only enqueue; the active run picks the new
// requests up.
type Runner struct {
	crawler *Crawler
	queue   *Queue
	baseCtx context.Context

	mu           sync.Mutex
	running      bool
	lastStarted  *time.Time
	lastFinished *time.Time
	lastError    string
}

// NewRunner wires a runner. Background runs stop when baseCtx is canceled.
func NewRunner(baseCtx context.Context, crawler *Crawler, queue *Queue) *Runner {
	return &Runner{
		crawler: crawler,
		queue:   queue,
		baseCtx: baseCtx,
	}
}

// Submit validates and enqueues a crawl, starting a background run when none
// is active.
func (r *Runner) Submit(ctx context.Context, in Input) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if err := r.crawler.Enqueue(ctx, in); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return nil
	}
	r.running = true
	now := time.Now()
	r.lastStarted = &now

	go r.run()
	return nil
}

func (r *Runner) run() {
	err := r.crawler.Run(r.baseCtx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	now := time.Now()
	r.lastFinished = &now
	r.lastError = ""
	if err != nil {
		r.lastError = err.Error()
		log.Printf("[runner] Crawl run ended with error: %v", err)
	}
}

// Status reports the runner and queue state.
func (r *Runner) Status(ctx context.Context) Status {
	depth, err := r.queue.Len(ctx)
	if err != nil {
		log.Printf("[runner] Queue depth unavailable: %v", err)
		depth = -1
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{
		Running:      r.running,
		QueueDepth:   depth,
		LastStarted:  r.lastStarted,
		LastFinished: r.lastFinished,
		LastError:    r.lastError,
	}
}
