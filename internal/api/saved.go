package api

import (
	"context"
	"fmt"
	"net/http"

	"buzznews/internal/models"
)

// Saved-item resource paths. Favorites and watch-later share one wire
// contract; only the path differs.
const (
	favoritesPath  = "/api/favorites/"
	watchLaterPath = "/api/watchlater/"
)

type savedItemRequest struct {
	ArticleID string `json:"article_id"`
}

// Favorites retrieves the viewer's favorite articles.
func (c *Client) Favorites(ctx context.Context) ([]models.SavedItem, error) {
	return c.listSaved(ctx, favoritesPath)
}

// AddFavorite bookmarks an article by its article ID.
func (c *Client) AddFavorite(ctx context.Context, articleID string) (*models.SavedItem, error) {
	return c.addSaved(ctx, favoritesPath, articleID)
}

// RemoveFavorite deletes a favorite by its SavedItem ID (not the article ID).
func (c *Client) RemoveFavorite(ctx context.Context, savedID string) error {
	return c.removeSaved(ctx, favoritesPath, savedID)
}

// WatchLater retrieves the viewer's watch-later list.
func (c *Client) WatchLater(ctx context.Context) ([]models.SavedItem, error) {
	return c.listSaved(ctx, watchLaterPath)
}

// AddWatchLater bookmarks an article for later viewing by its article ID.
func (c *Client) AddWatchLater(ctx context.Context, articleID string) (*models.SavedItem, error) {
	return c.addSaved(ctx, watchLaterPath, articleID)
}

// RemoveWatchLater deletes a watch-later entry by its SavedItem ID.
func (c *Client) RemoveWatchLater(ctx context.Context, savedID string) error {
	return c.removeSaved(ctx, watchLaterPath, savedID)
}

func (c *Client) listSaved(ctx context.Context, path string) ([]models.SavedItem, error) {
	var items []models.SavedItem
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.SavedItem{}
	}
	return items, nil
}

func (c *Client) addSaved(ctx context.Context, path, articleID string) (*models.SavedItem, error) {
	if articleID == "" {
		return nil, fmt.Errorf("article ID must not be empty")
	}

	var item models.SavedItem
	if err := c.doRequest(ctx, http.MethodPost, path, savedItemRequest{ArticleID: articleID}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) removeSaved(ctx context.Context, path, savedID string) error {
	if savedID == "" {
		return fmt.Errorf("saved item ID must not be empty")
	}
	return c.doRequest(ctx, http.MethodDelete, path+savedID, nil, nil)
}
