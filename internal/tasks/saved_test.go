package tasks

import (
	"context"
	"errors"
	"testing"

	"buzznews/internal/models"
	"buzznews/internal/shared"
)

// fakeSavedAPI implements SavedAPI over an in-memory favorites list.
type fakeSavedAPI struct {
	items   []models.SavedItem
	listErr error
	addErr  error
	rmErr   error
}

func (f *fakeSavedAPI) Favorites(ctx context.Context) ([]models.SavedItem, error) {
	return f.items, f.listErr
}

func (f *fakeSavedAPI) AddFavorite(ctx context.Context, articleID string) (*models.SavedItem, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	item := models.SavedItem{
		ID:        "saved-" + articleID,
		ArticleID: articleID,
		Article:   models.Article{ID: articleID},
	}
	f.items = append(f.items, item)
	return &item, nil
}

func (f *fakeSavedAPI) RemoveFavorite(ctx context.Context, savedID string) error {
	return f.rmErr
}

func (f *fakeSavedAPI) WatchLater(ctx context.Context) ([]models.SavedItem, error) {
	return f.items, f.listErr
}

func (f *fakeSavedAPI) AddWatchLater(ctx context.Context, articleID string) (*models.SavedItem, error) {
	return f.AddFavorite(ctx, articleID)
}

func (f *fakeSavedAPI) RemoveWatchLater(ctx context.Context, savedID string) error {
	return f.rmErr
}

func TestSavedEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("load reaches Ready with items", func(t *testing.T) {
		api := &fakeSavedAPI{items: []models.SavedItem{{ID: "a", Article: models.Article{ID: "art-1"}}}}
		engine := NewSavedEngine(api, Favorites)

		if err := engine.Load(ctx, nil); err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if engine.State() != Ready {
			t.Errorf("expected Ready, got %v", engine.State())
		}
		if items := engine.Items(); len(items) != 1 || items[0].ID != "a" {
			t.Errorf("unexpected items %+v", items)
		}
	})

	t.Run("failed load keeps prior items", func(t *testing.T) {
		api := &fakeSavedAPI{items: []models.SavedItem{{ID: "a"}}}
		engine := NewSavedEngine(api, Favorites)
		if err := engine.Load(ctx, nil); err != nil {
			t.Fatalf("load failed: %v", err)
		}

		api.listErr = errors.New("boom")
		if err := engine.Load(ctx, nil); err == nil {
			t.Fatal("expected load error")
		}
		if engine.State() != Failed {
			t.Errorf("expected Failed, got %v", engine.State())
		}
		if items := engine.Items(); len(items) != 1 {
			t.Errorf("expected stale items to survive, got %+v", items)
		}
	})

	t.Run("add mutates the list only after the API confirms", func(t *testing.T) {
		api := &fakeSavedAPI{}
		engine := NewSavedEngine(api, Favorites)

		item, err := engine.Add(ctx, "art-1", nil)
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if item.ID != "saved-art-1" {
			t.Errorf("unexpected item %+v", item)
		}
		if items := engine.Items(); len(items) != 1 {
			t.Errorf("expected one local item, got %+v", items)
		}

		api.addErr = errors.New("boom")
		if _, err := engine.Add(ctx, "art-2", nil); err == nil {
			t.Fatal("expected add error")
		}
		if items := engine.Items(); len(items) != 1 {
			t.Errorf("expected list unchanged after failed add, got %+v", items)
		}
	})

	t.Run("remove filters by the saved item ID", func(t *testing.T) {
		api := &fakeSavedAPI{items: []models.SavedItem{
			{ID: "a", ArticleID: "art-1"},
			{ID: "b", ArticleID: "art-2"},
		}}
		engine := NewSavedEngine(api, Favorites)
		if err := engine.Load(ctx, nil); err != nil {
			t.Fatalf("load failed: %v", err)
		}

		if err := engine.Remove(ctx, "a", nil); err != nil {
			t.Fatalf("remove failed: %v", err)
		}
		if items := engine.Items(); len(items) != 1 || items[0].ID != "b" {
			t.Errorf("expected only item b to remain, got %+v", items)
		}

		api.rmErr = errors.New("boom")
		if err := engine.Remove(ctx, "b", nil); err == nil {
			t.Fatal("expected remove error")
		}
		if items := engine.Items(); len(items) != 1 {
			t.Errorf("expected list unchanged after failed remove, got %+v", items)
		}
	})

	t.Run("empty IDs are rejected client-side", func(t *testing.T) {
		engine := NewSavedEngine(&fakeSavedAPI{}, Favorites)
		if _, err := engine.Add(ctx, "", nil); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		if err := engine.Remove(ctx, "", nil); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("articles unwraps the saved items", func(t *testing.T) {
		api := &fakeSavedAPI{items: []models.SavedItem{
			{ID: "a", Article: models.Article{ID: "art-1", Title: "one"}},
			{ID: "b", Article: models.Article{ID: "art-2", Title: "two"}},
		}}
		engine := NewSavedEngine(api, WatchLater)
		if err := engine.Load(ctx, nil); err != nil {
			t.Fatalf("load failed: %v", err)
		}

		articles := engine.Articles()
		if len(articles) != 2 || articles[0].ID != "art-1" || articles[1].Title != "two" {
			t.Errorf("unexpected articles %+v", articles)
		}
	})

	t.Run("pending flag clears after the operation", func(t *testing.T) {
		engine := NewSavedEngine(&fakeSavedAPI{}, Favorites)
		if _, err := engine.Add(ctx, "art-1", nil); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if engine.Pending("art-1") {
			t.Error("expected pending flag to clear")
		}
	})
}
