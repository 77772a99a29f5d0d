package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"buzznews/internal/models"
	"buzznews/internal/shared"
)

// Publish submits a new article to the admin endpoint. The admin check here
// is a convenience; the API enforces the real one.
func (r *Runner) Publish(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAdmin(); err != nil {
		return err
	}

	draft := models.ArticleDraft{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		Content:     cmd.String("content"),
		Source:      cmd.String("source"),
		URL:         cmd.String("url"),
		ImageURL:    cmd.String("image-url"),
	}
	if draft.Title == "" {
		return fmt.Errorf("%w: title is required", shared.ErrMissingArgument)
	}

	r.logger.Info("publishing article", "title", draft.Title)

	article, err := r.client.PublishArticle(ctx, draft)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(article, true)
	}
	return r.writePlain("✓ Published '%s' (id: %s)\n", article.Title, article.ID)
}
