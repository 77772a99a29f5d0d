// package tasks implements long-running client operations behind the UI:
// feed loading with a fetch lifecycle and saved-item list management.
//
// Operations emit progress updates via channels for non-blocking status
// reporting to CLI/UI layers.
package tasks

import (
	"context"
	"sync"

	"buzznews/internal/models"
	"buzznews/internal/shared"
)

// FetchState tracks where a fetch operation is in its lifecycle.
type FetchState int

const (
	Idle FetchState = iota
	Loading
	Ready
	Failed
)

func (s FetchState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return ""
	}
}

// NewsAPI defines the article endpoints the feed engine consumes.
// This abstraction allows for easier testing and decoupling from the
// concrete HTTP client.
type NewsAPI interface {
	Featured(ctx context.Context) (*models.Article, error)
	Articles(ctx context.Context, limit, offset int) ([]models.Article, error)
}

// FeedEngine loads the article feed and featured article. A load that fails
// keeps the previously shown articles so the UI can render stale content
// alongside the error; only a successful load replaces them.
type FeedEngine struct {
	api   NewsAPI
	limit int

	mu       sync.Mutex
	state    FetchState
	articles []models.Article
	featured *models.Article
	lastErr  error
	offset   int
	inFlight bool
}

// NewFeedEngine creates a FeedEngine fetching limit articles per page.
func NewFeedEngine(api NewsAPI, limit int) *FeedEngine {
	if limit <= 0 {
		limit = 20
	}
	return &FeedEngine{api: api, limit: limit, state: Idle}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Load fetches a page of articles and the featured article. With reload set
// the offset advances one page; otherwise the first page is fetched. A call
// made while another load is running returns shared.ErrFetchInFlight.
func (e *FeedEngine) Load(ctx context.Context, reload bool, progress chan<- ProgressUpdate) error {
	if e.api == nil {
		return shared.ErrServiceUnavailable
	}

	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return shared.ErrFetchInFlight
	}
	e.inFlight = true
	e.state = Loading
	e.lastErr = nil
	offset := 0
	if reload {
		offset = e.offset + e.limit
	}
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.inFlight = false
		e.mu.Unlock()
	}()

	sendProgress(progress, fetchFeedUpdate(1, 2, offset))
	articles, err := e.api.Articles(ctx, e.limit, offset)
	if err != nil {
		e.fail(err)
		return err
	}

	sendProgress(progress, fetchFeaturedUpdate(2, 2))
	featured, featErr := e.api.Featured(ctx)

	e.mu.Lock()
	e.articles = articles
	e.offset = offset
	if featErr == nil {
		e.featured = featured
	}
	e.state = Ready
	e.mu.Unlock()

	sendProgress(progress, feedReadyUpdate(len(articles)))
	return nil
}

func (e *FeedEngine) fail(err error) {
	e.mu.Lock()
	e.state = Failed
	e.lastErr = err
	e.mu.Unlock()
}

// State returns the current lifecycle state.
func (e *FeedEngine) State() FetchState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Articles returns the most recently loaded page. The slice is a copy.
func (e *FeedEngine) Articles() []models.Article {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Article, len(e.articles))
	copy(out, e.articles)
	return out
}

// Featured returns the featured article, or nil when none was loaded.
func (e *FeedEngine) Featured() *models.Article {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.featured
}

// Err returns the error from the last failed load, nil otherwise.
func (e *FeedEngine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Offset returns the offset of the current page.
func (e *FeedEngine) Offset() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.offset
}
