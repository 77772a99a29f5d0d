package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"buzznews/internal/models"
	"buzznews/internal/shared"
)

// SavedKind selects which saved-item list an engine manages.
type SavedKind int

const (
	Favorites SavedKind = iota
	WatchLater
)

func (k SavedKind) String() string {
	switch k {
	case Favorites:
		return "favorites"
	case WatchLater:
		return "watch later"
	default:
		return ""
	}
}

// SavedAPI defines the saved-item endpoints the engine consumes.
type SavedAPI interface {
	Favorites(ctx context.Context) ([]models.SavedItem, error)
	AddFavorite(ctx context.Context, articleID string) (*models.SavedItem, error)
	RemoveFavorite(ctx context.Context, savedID string) error
	WatchLater(ctx context.Context) ([]models.SavedItem, error)
	AddWatchLater(ctx context.Context, articleID string) (*models.SavedItem, error)
	RemoveWatchLater(ctx context.Context, savedID string) error
}

// SavedEngine manages one saved-item list (favorites or watch later). Local
// state mutates only after the API confirms the change, and each item tracks
// an in-flight flag so the UI can disable the triggering control.
type SavedEngine struct {
	api  SavedAPI
	kind SavedKind

	mu       sync.Mutex
	state    FetchState
	items    []models.SavedItem
	lastErr  error
	inFlight bool
	pending  map[string]bool
}

// NewSavedEngine creates a SavedEngine for the given list kind.
func NewSavedEngine(api SavedAPI, kind SavedKind) *SavedEngine {
	return &SavedEngine{api: api, kind: kind, state: Idle, pending: map[string]bool{}}
}

// Load fetches the saved-item list. Prior items are kept when the fetch
// fails. A call made while another load is running returns
// shared.ErrFetchInFlight.
func (e *SavedEngine) Load(ctx context.Context, progress chan<- ProgressUpdate) error {
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
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.inFlight = false
		e.mu.Unlock()
	}()

	sendProgress(progress, fetchSavedUpdate(e.kind))
	items, err := e.list(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = Failed
		e.lastErr = err
		return err
	}
	e.items = items
	e.state = Ready
	return nil
}

// Add saves an article to the list. The local list grows only after the API
// confirms the item was created.
func (e *SavedEngine) Add(ctx context.Context, articleID string, progress chan<- ProgressUpdate) (*models.SavedItem, error) {
	if articleID == "" {
		return nil, fmt.Errorf("%w: article ID is required", shared.ErrInvalidArgument)
	}
	if !e.begin(articleID) {
		return nil, fmt.Errorf("%w: article %s", shared.ErrFetchInFlight, articleID)
	}
	defer e.finish(articleID)

	sendProgress(progress, saveItemUpdate(e.kind, articleID))
	item, err := e.add(ctx, articleID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.items = append(e.items, *item)
	e.mu.Unlock()
	return item, nil
}

// Remove deletes a saved item by its own ID, not the wrapped article's ID.
// The local list shrinks only after the API confirms the deletion.
func (e *SavedEngine) Remove(ctx context.Context, savedID string, progress chan<- ProgressUpdate) error {
	if savedID == "" {
		return fmt.Errorf("%w: saved item ID is required", shared.ErrInvalidArgument)
	}
	if !e.begin(savedID) {
		return fmt.Errorf("%w: item %s", shared.ErrFetchInFlight, savedID)
	}
	defer e.finish(savedID)

	sendProgress(progress, removeItemUpdate(e.kind, savedID))
	if err := e.remove(ctx, savedID); err != nil {
		return err
	}

	e.mu.Lock()
	e.items = lo.Filter(e.items, func(item models.SavedItem, _ int) bool {
		return item.ID != savedID
	})
	e.mu.Unlock()
	return nil
}

// Items returns the saved items. The slice is a copy.
func (e *SavedEngine) Items() []models.SavedItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.SavedItem, len(e.items))
	copy(out, e.items)
	return out
}

// Articles returns the wrapped articles of the saved items.
func (e *SavedEngine) Articles() []models.Article {
	e.mu.Lock()
	defer e.mu.Unlock()
	return lo.Map(e.items, func(item models.SavedItem, _ int) models.Article {
		return item.Article
	})
}

// State returns the current lifecycle state of the list fetch.
func (e *SavedEngine) State() FetchState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Err returns the error from the last failed load, nil otherwise.
func (e *SavedEngine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Pending reports whether an add or remove for the given ID is in flight.
func (e *SavedEngine) Pending(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending[id]
}

func (e *SavedEngine) begin(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending[id] {
		return false
	}
	e.pending[id] = true
	return true
}

func (e *SavedEngine) finish(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.pending, id)
}

func (e *SavedEngine) list(ctx context.Context) ([]models.SavedItem, error) {
	if e.kind == WatchLater {
		return e.api.WatchLater(ctx)
	}
	return e.api.Favorites(ctx)
}

func (e *SavedEngine) add(ctx context.Context, articleID string) (*models.SavedItem, error) {
	if e.kind == WatchLater {
		return e.api.AddWatchLater(ctx, articleID)
	}
	return e.api.AddFavorite(ctx, articleID)
}

func (e *SavedEngine) remove(ctx context.Context, savedID string) error {
	if e.kind == WatchLater {
		return e.api.RemoveWatchLater(ctx, savedID)
	}
	return e.api.RemoveFavorite(ctx, savedID)
}
