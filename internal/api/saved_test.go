package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"golang.org/x/oauth2"

	"buzznews/internal/models"
)

// savedFixture is a tiny in-memory stand-in for the favorites endpoints.
type savedFixture struct {
	mu    sync.Mutex
	items []models.SavedItem
}

func (f *savedFixture) handler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Not authenticated"}`))
			return
		}

		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(f.items)
		case r.Method == http.MethodPost:
			var req savedItemRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ArticleID == "" {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(`{"detail":[{"loc":["body","article_id"],"msg":"field required"}]}`))
				return
			}
			item := models.SavedItem{
				ID:        "saved-" + req.ArticleID,
				ArticleID: req.ArticleID,
				Article:   models.Article{ID: req.ArticleID, Title: "article " + req.ArticleID},
			}
			f.items = append(f.items, item)
			json.NewEncoder(w).Encode(item)
		case r.Method == http.MethodDelete:
			id := strings.TrimPrefix(r.URL.Path, "/api/favorites/")
			for i, item := range f.items {
				if item.ID == id {
					f.items = append(f.items[:i], f.items[i+1:]...)
					w.Write([]byte(`{"message":"Removed from favorites"}`))
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Favorite not found"}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func TestSavedItems(t *testing.T) {
	newAuthedClient := func(url string) *Client {
		return NewClient(ClientOpts{
			BaseURL: url,
			Tokens:  oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok"}),
		})
	}

	t.Run("add then list round trip", func(t *testing.T) {
		fixture := &savedFixture{}
		srv := httptest.NewServer(fixture.handler(t))
		defer srv.Close()

		c := newAuthedClient(srv.URL)
		ctx := context.Background()

		items, err := c.Favorites(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected empty list, got %d items", len(items))
		}

		added, err := c.AddFavorite(ctx, "X")
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if added.ArticleID != "X" {
			t.Errorf("expected article_id X, got %q", added.ArticleID)
		}
		if added.ID == "" || added.ID == added.Article.ID {
			t.Errorf("expected saved item to carry its own identity, got %q", added.ID)
		}

		items, err = c.Favorites(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(items) != 1 || items[0].Article.ID != "X" {
			t.Errorf("expected one saved item wrapping article X, got %+v", items)
		}
	})

	t.Run("remove uses the saved item ID, not the article ID", func(t *testing.T) {
		fixture := &savedFixture{items: []models.SavedItem{
			{ID: "a", ArticleID: "art-1", Article: models.Article{ID: "art-1"}},
			{ID: "b", ArticleID: "art-2", Article: models.Article{ID: "art-2"}},
		}}
		srv := httptest.NewServer(fixture.handler(t))
		defer srv.Close()

		c := newAuthedClient(srv.URL)
		ctx := context.Background()

		if err := c.RemoveFavorite(ctx, "a"); err != nil {
			t.Fatalf("remove failed: %v", err)
		}

		items, err := c.Favorites(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(items) != 1 || items[0].ID != "b" {
			t.Errorf("expected only item b to remain, got %+v", items)
		}

		// Removing by the nested article's ID must miss.
		if err := c.RemoveFavorite(ctx, "art-2"); err == nil {
			t.Error("expected not-found error when using the article ID")
		}
	})

	t.Run("remove rejects an empty ID client-side", func(t *testing.T) {
		c := newAuthedClient("http://localhost:0")
		if err := c.RemoveFavorite(context.Background(), ""); err == nil {
			t.Error("expected error for empty saved item ID")
		}
	})

	t.Run("unauthenticated mutation surfaces a 401 APIError", func(t *testing.T) {
		fixture := &savedFixture{}
		srv := httptest.NewServer(fixture.handler(t))
		defer srv.Close()

		c := NewClient(ClientOpts{BaseURL: srv.URL})
		_, err := c.AddFavorite(context.Background(), "X")

		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.Status != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", apiErr.Status)
		}
	})

	t.Run("watch-later shares the wire contract", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		c := newAuthedClient(srv.URL)
		if _, err := c.WatchLater(context.Background()); err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if gotPath != "/api/watchlater/" {
			t.Errorf("unexpected path %q", gotPath)
		}
	})
}
