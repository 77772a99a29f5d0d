package api

import (
	"context"
	"fmt"
	"net/http"

	"buzznews/internal/models"
)

// PublishArticle submits a new article through the admin endpoint. The
// caller is responsible for the admin check; the server enforces it
// regardless.
func (c *Client) PublishArticle(ctx context.Context, draft models.ArticleDraft) (*models.Article, error) {
	if draft.Title == "" {
		return nil, fmt.Errorf("article title must not be empty")
	}

	var article models.Article
	if err := c.doRequest(ctx, http.MethodPost, "/api/admin/articles", draft, &article); err != nil {
		return nil, err
	}
	return &article, nil
}
