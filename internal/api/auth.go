package api

import (
	"context"
	"fmt"
	"net/http"

	"buzznews/internal/models"
	"buzznews/internal/shared"
)

// Login exchanges credentials for a bearer token and user profile.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error) {
	var resp models.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: response carried no token", shared.ErrAuthFailed)
	}
	return &resp, nil
}

// Signup creates an account and returns a bearer token and user profile.
// A 422 response carries field-validation details in its message.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*models.TokenResponse, error) {
	var resp models.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: response carried no token", shared.ErrAuthFailed)
	}
	return &resp, nil
}
