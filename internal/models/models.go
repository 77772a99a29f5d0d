// package models defines the data model for the BuzzNews client.
//
// All JSON tags follow the wire format of the remote API (snake_case).
package models

import (
	"encoding/json"
	"time"
)

// User is the profile created by the remote API on login or signup.
// Immutable client-side except for wholesale replacement.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Article is a news record sourced from the remote API, read-only client-side.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	AuthorID    string `json:"author_id,omitempty"`
	Source      string `json:"source,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	URL         string `json:"url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// SavedItem is a user bookmark (favorite or watch-later entry) wrapping one
// Article. Its ID is the bookmark's own identity, distinct from the
// article's; deletion always uses the SavedItem ID.
type SavedItem struct {
	ID        string  `json:"id"`
	ArticleID string  `json:"article_id"`
	CreatedAt string  `json:"created_at,omitempty"`
	Article   Article `json:"article"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the signup request body.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the login/signup response. The API emits the bearer token
// as either "token" or "access_token" depending on the endpoint revision, so
// both are accepted.
type TokenResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UnmarshalJSON accepts both "token" and "access_token" for the bearer token.
func (t *TokenResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Token       string `json:"token"`
		AccessToken string `json:"access_token"`
		User        User   `json:"user"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Token = raw.Token
	if t.Token == "" {
		t.Token = raw.AccessToken
	}
	t.User = raw.User
	return nil
}

// ArticleDraft is the admin publish payload.
type ArticleDraft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Source      string `json:"source,omitempty"`
	URL         string `json:"url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}
