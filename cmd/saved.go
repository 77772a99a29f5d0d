package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"buzznews/internal/models"
	"buzznews/internal/shared"
)

// FavoritesList lists favorite articles.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}
	items, err := r.client.Favorites(ctx)
	if err != nil {
		return err
	}
	return r.writeSavedList(cmd, "Favorites", items)
}

// FavoritesAdd saves an article to favorites.
func (r *Runner) FavoritesAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}
	articleID := cmd.StringArg("article-id")
	if articleID == "" {
		return fmt.Errorf("%w: article-id is required", shared.ErrMissingArgument)
	}

	item, err := r.client.AddFavorite(ctx, articleID)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Added to favorites (item %s)\n", item.ID)
}

// FavoritesRemove deletes a favorite by its saved-item ID.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}
	itemID := cmd.StringArg("item-id")
	if itemID == "" {
		return fmt.Errorf("%w: item-id is required", shared.ErrMissingArgument)
	}

	if err := r.client.RemoveFavorite(ctx, itemID); err != nil {
		return err
	}
	return r.writePlain("✓ Removed from favorites\n")
}

// WatchLaterList lists the watch-later queue.
func (r *Runner) WatchLaterList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}
	items, err := r.client.WatchLater(ctx)
	if err != nil {
		return err
	}
	return r.writeSavedList(cmd, "Watch Later", items)
}

// WatchLaterAdd saves an article to the watch-later queue.
func (r *Runner) WatchLaterAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}
	articleID := cmd.StringArg("article-id")
	if articleID == "" {
		return fmt.Errorf("%w: article-id is required", shared.ErrMissingArgument)
	}

	item, err := r.client.AddWatchLater(ctx, articleID)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Added to watch later (item %s)\n", item.ID)
}

// WatchLaterRemove deletes a watch-later entry by its saved-item ID.
func (r *Runner) WatchLaterRemove(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}
	itemID := cmd.StringArg("item-id")
	if itemID == "" {
		return fmt.Errorf("%w: item-id is required", shared.ErrMissingArgument)
	}

	if err := r.client.RemoveWatchLater(ctx, itemID); err != nil {
		return err
	}
	return r.writePlain("✓ Removed from watch later\n")
}

func (r *Runner) writeSavedList(cmd *cli.Command, title string, items []models.SavedItem) error {
	if cmd.Bool("json") {
		return r.writeJSON(items, true)
	}

	r.writePlainHeader(title)
	if len(items) == 0 {
		return r.writePlain("Nothing saved yet\n")
	}
	for _, item := range items {
		r.writeArticle(item.Article)
		r.writePlain("  item: %s\n", item.ID)
	}
	return nil
}
