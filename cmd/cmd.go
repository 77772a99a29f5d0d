// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// authCommand handles account operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Sign in, sign up and inspect the session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "signup",
				Usage: "Create an account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Display name (letters only)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email (@gmail.com or @yahoo.com)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "confirm-password",
						Usage: "Password confirmation (defaults to --password)",
					},
				},
				Action: r.AuthSignup,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:  "status",
				Usage: "Show the current session state",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AuthStatus,
			},
		},
	}
}

// newsCommand handles feed operations
func newsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "news",
		Usage: "Browse the article feed",
		Commands: []*cli.Command{
			{
				Name:  "feed",
				Usage: "List articles from the feed",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of articles to return",
						Value: 20,
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "Number of articles to skip",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.NewsFeed,
			},
			{
				Name:  "featured",
				Usage: "Show the featured article",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.NewsFeatured,
			},
		},
	}
}

// favoritesCommand handles the favorites list
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage favorite articles",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favorite articles",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.FavoritesList,
			},
			{
				Name:  "add",
				Usage: "Add an article to favorites",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "article-id",
					},
				},
				Action: r.FavoritesAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a saved item from favorites by its item ID",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "item-id",
					},
				},
				Action: r.FavoritesRemove,
			},
		},
	}
}

// watchlaterCommand handles the watch-later list
func watchlaterCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "watchlater",
		Aliases: []string{"wl"},
		Usage:   "Manage the watch-later list",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List watch-later articles",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.WatchLaterList,
			},
			{
				Name:  "add",
				Usage: "Add an article to watch later",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "article-id",
					},
				},
				Action: r.WatchLaterAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a saved item from watch later by its item ID",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "item-id",
					},
				},
				Action: r.WatchLaterRemove,
			},
		},
	}
}

// publishCommand handles admin article publishing
func publishCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "publish",
		Usage: "Publish an article (admin only)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "title",
				Usage:    "Article title",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Short description",
			},
			&cli.StringFlag{
				Name:  "content",
				Usage: "Article body",
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "Source name or URL",
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "Canonical article URL",
			},
			&cli.StringFlag{
				Name:  "image-url",
				Usage: "Cover image URL",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the created article as JSON",
			},
		},
		Action: r.Publish,
	}
}

// setupCommand handles setup operations for config and the session database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and the session database",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Create the session database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "config",
				Usage:  "Write a config file from the template",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
		},
	}
}

// tuiCommand launches the interactive reader
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive reader",
		Action: r.TUI,
	}
}
