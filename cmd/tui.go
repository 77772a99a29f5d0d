package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"buzznews/internal/shared"
	"buzznews/internal/tasks"
	"buzznews/internal/ui"
)

// TUI launches the interactive reader.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/buzznews-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	feed := tasks.NewFeedEngine(r.client, r.config.API.FeedLimit)
	favorites := tasks.NewSavedEngine(r.client, tasks.Favorites)
	watchLater := tasks.NewSavedEngine(r.client, tasks.WatchLater)

	model := ui.NewModel(ctx, r.session, r.client, feed, favorites, watchLater, r.config.Categories)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
