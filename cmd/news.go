package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"buzznews/internal/formatter"
	"buzznews/internal/models"
)

// NewsFeed lists articles from the feed.
func (r *Runner) NewsFeed(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	limit := int(cmd.Int("limit"))
	offset := int(cmd.Int("offset"))

	r.logger.Info("fetching feed", "limit", limit, "offset", offset)

	articles, err := r.client.Articles(ctx, limit, offset)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(articles, cmd.Bool("pretty"))
	}

	r.writePlainHeader("News Feed")
	if len(articles) == 0 {
		return r.writePlain("No articles found\n")
	}
	for _, article := range articles {
		r.writeArticle(article)
	}
	return nil
}

// NewsFeatured shows the featured article. The endpoint is public, so no
// session is required.
func (r *Runner) NewsFeatured(ctx context.Context, cmd *cli.Command) error {
	article, err := r.client.Featured(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(article, true)
	}

	if article == nil {
		return r.writePlain("No featured article\n")
	}

	r.writePlainHeader("Featured")
	r.writeArticle(*article)
	return nil
}

// writeArticle prints one feed entry with its category tag and date.
func (r *Runner) writeArticle(article models.Article) {
	category := formatter.CategoryTag(article.Source, r.config.Categories)
	date := formatter.FormatDate(article.PublishedAt)

	r.writePlain("[%s] %s\n", category, article.Title)
	r.writePlain("  %s", date)
	if article.ID != "" {
		r.writePlain("  (id: %s)", article.ID)
	}
	r.writePlain("\n")
	if article.Description != "" {
		r.writePlain("  %s\n", formatter.Truncate(article.Description, 150))
	}
}
