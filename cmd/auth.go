package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"buzznews/internal/models"
	"buzznews/internal/session"
	"buzznews/internal/shared"
	"buzznews/internal/validate"
)

// AuthLogin signs in with email and password and persists the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	creds := models.Credentials{
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	}

	r.logger.Info("signing in", "email", creds.Email)

	resp, err := r.client.Login(ctx, creds)
	if err != nil {
		return err
	}
	if err := r.session.Login(resp.User, resp.Token); err != nil {
		return err
	}

	return r.writePlain("✓ Signed in as %s\n", resp.User.Email)
}

// AuthSignup validates the form locally, creates the account and persists
// the resulting session.
func (r *Runner) AuthSignup(ctx context.Context, cmd *cli.Command) error {
	form := validate.SignupForm{
		Username:        cmd.String("username"),
		Email:           cmd.String("email"),
		Password:        cmd.String("password"),
		ConfirmPassword: cmd.String("confirm-password"),
	}
	if form.ConfirmPassword == "" {
		form.ConfirmPassword = form.Password
	}

	if errs := validate.ValidateForm(form); len(errs) > 0 {
		for _, field := range []string{
			validate.FieldUsername, validate.FieldEmail,
			validate.FieldPassword, validate.FieldConfirmPassword,
		} {
			if msg, ok := errs[field]; ok {
				r.writePlain("✗ %s: %s\n", field, msg)
			}
		}
		return fmt.Errorf("%w: signup form is invalid", shared.ErrInvalidInput)
	}

	r.logger.Info("creating account", "email", form.Email)

	resp, err := r.client.Signup(ctx, models.SignupRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return err
	}
	if err := r.session.Signup(resp.User, resp.Token); err != nil {
		return err
	}

	return r.writePlain("✓ Account created, signed in as %s\n", resp.User.Email)
}

// AuthLogout clears the in-memory session and the persisted keys.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if r.session.Loading() {
		if err := r.session.Hydrate(); err != nil {
			r.logger.Warn("session hydration failed", "error", err)
		}
	}

	if err := r.session.Logout(); err != nil {
		return err
	}
	return r.writePlain("✓ Signed out\n")
}

// AuthStatus shows the current session state.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if r.session.Loading() {
		if err := r.session.Hydrate(); err != nil {
			r.logger.Warn("session hydration failed", "error", err)
		}
	}

	user := r.session.User()
	authenticated := r.session.IsAuthenticated()
	admin := session.IsAdmin(user, r.config.Admin.Emails)

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"authenticated": authenticated,
			"admin":         admin,
			"user":          user,
		}, true)
	}

	if !authenticated {
		return r.writePlain("✗ Not signed in\n")
	}

	r.writePlain("✓ Signed in\n")
	if user != nil {
		r.writePlain("User: %s <%s>\n", user.Username, user.Email)
	}
	if admin {
		r.writePlain("Role: admin\n")
	}
	return nil
}
