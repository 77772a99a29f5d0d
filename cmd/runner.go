package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"buzznews/internal/api"
	"buzznews/internal/session"
	"buzznews/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	client  *api.Client
	session *session.Session
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Client  *api.Client
	Session *session.Session
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Session == nil {
		opts.Session = session.New(session.NewMemoryStore())
	}
	if opts.Client == nil {
		opts.Client = api.NewClient(api.ClientOpts{
			BaseURL: opts.Config.API.BaseURL,
			Tokens:  opts.Session,
		})
	}

	return &Runner{
		config:  opts.Config,
		client:  opts.Client,
		session: opts.Session,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		authCommand, newsCommand, favoritesCommand, watchlaterCommand, publishCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// requireAuth hydrates the session if needed and fails when no token is held.
func (r *Runner) requireAuth() error {
	if r.session.Loading() {
		if err := r.session.Hydrate(); err != nil {
			r.logger.Warn("session hydration failed", "error", err)
		}
	}
	if !r.session.IsAuthenticated() {
		return fmt.Errorf("%w: run 'buzznews auth login' first", shared.ErrAuthRequired)
	}
	return nil
}

// requireAdmin additionally checks the admin flag or config allow-list.
func (r *Runner) requireAdmin() error {
	if err := r.requireAuth(); err != nil {
		return err
	}
	if !session.IsAdmin(r.session.User(), r.config.Admin.Emails) {
		return fmt.Errorf("%w: admin access required", shared.ErrAdminRequired)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
