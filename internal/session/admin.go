package session

import (
	"github.com/samber/lo"

	"buzznews/internal/models"
)

// IsAdmin reports whether the user may use admin features: either the API
// flagged the profile as admin, or the email is on the configured
// allow-list. Pure; safe to call with a nil user.
func IsAdmin(user *models.User, allowlist []string) bool {
	if user == nil {
		return false
	}
	return user.IsAdmin || lo.Contains(allowlist, user.Email)
}
