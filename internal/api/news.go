package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"buzznews/internal/models"
)

// wrapperKeys are the alternative property names under which the API has
// been observed to nest an article list, checked in this order.
var wrapperKeys = []string{"articles", "data", "results", "news"}

// Featured retrieves the featured article. The endpoint returns either a
// bare article object or a one-element array.
func (c *Client) Featured(ctx context.Context) (*models.Article, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, "/api/news/featured", nil, &raw); err != nil {
		return nil, err
	}

	var article models.Article
	if err := json.Unmarshal(raw, &article); err == nil && article.ID != "" {
		return &article, nil
	}

	var list []models.Article
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return &list[0], nil
	}

	return nil, nil
}

// Articles retrieves a window of the news feed.
func (c *Client) Articles(ctx context.Context, limit, offset int) ([]models.Article, error) {
	path := fmt.Sprintf("/api/news?limit=%d&offset=%d", limit, offset)

	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	return normalizeArticles(raw), nil
}

// normalizeArticles coerces the heterogeneous feed response shapes to one
// list: a bare array is used directly, a wrapping object is unwrapped via
// the first matching key in wrapperKeys, and anything unrecognized (or an
// absent body) degrades to an empty list rather than an error.
func normalizeArticles(raw json.RawMessage) []models.Article {
	if len(raw) == 0 {
		return []models.Article{}
	}

	var direct []models.Article
	if err := json.Unmarshal(raw, &direct); err == nil {
		if direct == nil {
			return []models.Article{}
		}
		return direct
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return []models.Article{}
	}

	for _, key := range wrapperKeys {
		inner, ok := wrapped[key]
		if !ok {
			continue
		}
		var list []models.Article
		if err := json.Unmarshal(inner, &list); err == nil && list != nil {
			return list
		}
	}

	return []models.Article{}
}
