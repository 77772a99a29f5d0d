package tasks

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"buzznews/internal/models"
	"buzznews/internal/shared"
)

// fakeNewsAPI implements NewsAPI with scripted responses.
type fakeNewsAPI struct {
	articles    []models.Article
	articlesErr error
	featured    *models.Article
	featuredErr error

	gotLimit  int
	gotOffset int
	release   chan struct{}
}

func (f *fakeNewsAPI) Articles(ctx context.Context, limit, offset int) ([]models.Article, error) {
	f.gotLimit = limit
	f.gotOffset = offset
	if f.release != nil {
		<-f.release
	}
	return f.articles, f.articlesErr
}

func (f *fakeNewsAPI) Featured(ctx context.Context) (*models.Article, error) {
	return f.featured, f.featuredErr
}

func TestFeedEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("successful load reaches Ready", func(t *testing.T) {
		api := &fakeNewsAPI{
			articles: []models.Article{{ID: "1"}, {ID: "2"}},
			featured: &models.Article{ID: "f"},
		}
		engine := NewFeedEngine(api, 10)

		if engine.State() != Idle {
			t.Fatalf("expected Idle before load, got %v", engine.State())
		}
		if err := engine.Load(ctx, false, nil); err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if engine.State() != Ready {
			t.Errorf("expected Ready, got %v", engine.State())
		}
		if got := engine.Articles(); len(got) != 2 {
			t.Errorf("expected 2 articles, got %d", len(got))
		}
		if engine.Featured() == nil || engine.Featured().ID != "f" {
			t.Errorf("expected featured article f, got %+v", engine.Featured())
		}
		if api.gotLimit != 10 || api.gotOffset != 0 {
			t.Errorf("expected limit=10 offset=0, got %d/%d", api.gotLimit, api.gotOffset)
		}
	})

	t.Run("failed load keeps previously shown articles", func(t *testing.T) {
		api := &fakeNewsAPI{articles: []models.Article{{ID: "1"}}}
		engine := NewFeedEngine(api, 10)
		if err := engine.Load(ctx, false, nil); err != nil {
			t.Fatalf("load failed: %v", err)
		}

		api.articlesErr = errors.New("boom")
		if err := engine.Load(ctx, false, nil); err == nil {
			t.Fatal("expected load error")
		}
		if engine.State() != Failed {
			t.Errorf("expected Failed, got %v", engine.State())
		}
		if engine.Err() == nil {
			t.Error("expected Err to surface the failure")
		}
		if got := engine.Articles(); len(got) != 1 || got[0].ID != "1" {
			t.Errorf("expected stale articles to survive, got %+v", got)
		}
	})

	t.Run("reload advances the offset page", func(t *testing.T) {
		api := &fakeNewsAPI{articles: []models.Article{{ID: "1"}}}
		engine := NewFeedEngine(api, 15)

		if err := engine.Load(ctx, false, nil); err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if err := engine.Load(ctx, true, nil); err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if api.gotOffset != 15 {
			t.Errorf("expected offset 15 on reload, got %d", api.gotOffset)
		}
		if engine.Offset() != 15 {
			t.Errorf("expected engine offset 15, got %d", engine.Offset())
		}
	})

	t.Run("failed reload does not advance the offset", func(t *testing.T) {
		api := &fakeNewsAPI{articles: []models.Article{{ID: "1"}}}
		engine := NewFeedEngine(api, 15)
		if err := engine.Load(ctx, false, nil); err != nil {
			t.Fatalf("load failed: %v", err)
		}

		api.articlesErr = errors.New("boom")
		if err := engine.Load(ctx, true, nil); err == nil {
			t.Fatal("expected reload error")
		}
		if engine.Offset() != 0 {
			t.Errorf("expected offset to stay at 0, got %d", engine.Offset())
		}
	})

	t.Run("concurrent load is rejected", func(t *testing.T) {
		api := &fakeNewsAPI{release: make(chan struct{})}
		engine := NewFeedEngine(api, 10)

		done := make(chan error, 1)
		go func() { done <- engine.Load(ctx, false, nil) }()

		for engine.State() != Loading {
			runtime.Gosched()
		}
		if err := engine.Load(ctx, false, nil); !errors.Is(err, shared.ErrFetchInFlight) {
			t.Errorf("expected ErrFetchInFlight, got %v", err)
		}

		close(api.release)
		if err := <-done; err != nil {
			t.Fatalf("first load failed: %v", err)
		}
	})

	t.Run("featured failure does not fail the load", func(t *testing.T) {
		api := &fakeNewsAPI{
			articles:    []models.Article{{ID: "1"}},
			featuredErr: errors.New("boom"),
		}
		engine := NewFeedEngine(api, 10)
		if err := engine.Load(ctx, false, nil); err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if engine.State() != Ready {
			t.Errorf("expected Ready, got %v", engine.State())
		}
		if engine.Featured() != nil {
			t.Errorf("expected nil featured, got %+v", engine.Featured())
		}
	})

	t.Run("progress updates are emitted without blocking", func(t *testing.T) {
		api := &fakeNewsAPI{articles: []models.Article{{ID: "1"}}}
		engine := NewFeedEngine(api, 10)

		progress := make(chan ProgressUpdate, 8)
		if err := engine.Load(ctx, false, progress); err != nil {
			t.Fatalf("load failed: %v", err)
		}
		close(progress)

		var phases []Phase
		for update := range progress {
			phases = append(phases, update.Phase)
		}
		if len(phases) == 0 || phases[0] != FetchFeed {
			t.Errorf("expected a fetch_feed update first, got %v", phases)
		}
	})
}
