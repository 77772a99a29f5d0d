package ui

import (
	"context"
	"testing"

	"buzznews/internal/api"
	"buzznews/internal/models"
	"buzznews/internal/session"
	"buzznews/internal/tasks"
)

type stubNewsAPI struct {
	articles []models.Article
	ctxCh    chan context.Context
	release  chan struct{}
}

func (s *stubNewsAPI) Featured(ctx context.Context) (*models.Article, error) {
	return nil, nil
}

func (s *stubNewsAPI) Articles(ctx context.Context, limit, offset int) ([]models.Article, error) {
	if s.ctxCh != nil {
		s.ctxCh <- ctx
	}
	if s.release != nil {
		<-s.release
	}
	return s.articles, nil
}

func newTestModel(news tasks.NewsAPI) *Model {
	sess := session.New(session.NewMemoryStore())
	client := api.NewClient(api.ClientOpts{})
	feed := tasks.NewFeedEngine(news, 10)
	return NewModel(context.Background(), sess, client, feed, nil, nil, nil)
}

func TestFeedList(t *testing.T) {
	t.Run("rebuild keeps the cursor position", func(t *testing.T) {
		stub := &stubNewsAPI{articles: []models.Article{
			{ID: "1", Title: "one"},
			{ID: "2", Title: "two"},
			{ID: "3", Title: "three"},
		}}
		m := newTestModel(stub)

		if err := m.feed.Load(context.Background(), false, nil); err != nil {
			t.Fatalf("load failed: %v", err)
		}
		m.rebuildFeedList()
		m.feedList.Select(2)

		m.rebuildFeedList()
		if got := m.feedList.Index(); got != 2 {
			t.Errorf("expected cursor to stay at 2, got %d", got)
		}
		if got := len(m.feedList.Items()); got != 3 {
			t.Errorf("expected 3 items, got %d", got)
		}
	})
}

func TestLoadFeed(t *testing.T) {
	t.Run("releases the context once the fetch returns", func(t *testing.T) {
		stub := &stubNewsAPI{ctxCh: make(chan context.Context, 1)}
		m := newTestModel(stub)

		cmd := m.loadFeed(false)
		cmd()

		ctx := <-stub.ctxCh
		if ctx.Err() == nil {
			t.Error("expected context to be released after the fetch completed")
		}
	})

	t.Run("cancels the prior in-flight fetch", func(t *testing.T) {
		stub := &stubNewsAPI{
			ctxCh:   make(chan context.Context, 1),
			release: make(chan struct{}),
		}
		m := newTestModel(stub)

		first := m.loadFeed(false)
		done := make(chan struct{})
		go func() {
			first()
			close(done)
		}()
		firstCtx := <-stub.ctxCh

		m.loadFeed(false)
		if firstCtx.Err() == nil {
			t.Error("expected the prior fetch to be cancelled")
		}

		close(stub.release)
		<-done
	})
}
