// package validate implements client-side signup form validation.
//
// Each field has one validator in a fixed table; the same functions serve
// both incremental (per-field) checks and the final submit-time pass, so the
// two can never drift. ValidateForm computes every field error atomically
// from the values it is given, never from previously committed error state.
package validate

import (
	"strings"
	"unicode"
)

// SignupForm carries the raw input values of the signup form.
type SignupForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Field names understood by the validator table.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// allowedEmailDomains lists the account-email domains the API accepts.
var allowedEmailDomains = []string{"@gmail.com", "@yahoo.com"}

// fieldValidator checks one field against the whole form (confirm-password
// needs the password value). Returns an empty string when the value is valid.
type fieldValidator func(value string, form SignupForm) string

// validators is the complete field table, in display order.
var validators = []struct {
	Field string
	Check fieldValidator
}{
	{FieldUsername, checkUsername},
	{FieldEmail, checkEmail},
	{FieldPassword, checkPassword},
	{FieldConfirmPassword, checkConfirmPassword},
}

func checkUsername(value string, _ SignupForm) string {
	if len(value) < 3 {
		return "Username must be at least 3 letters long."
	}
	for _, r := range value {
		if !unicode.IsLetter(r) {
			return "Username must contain only letters (A-Z, a-z)."
		}
	}
	return ""
}

func checkEmail(value string, _ SignupForm) string {
	if value == "" {
		return "Email is required."
	}
	if !strings.Contains(value, "@") {
		return "Please enter a valid email format."
	}
	for _, domain := range allowedEmailDomains {
		if strings.HasSuffix(value, domain) {
			return ""
		}
	}
	return "Only @gmail.com or @yahoo.com domains are allowed."
}

func checkPassword(value string, _ SignupForm) string {
	if len(value) < 8 {
		return "Password must be at least 8 characters long."
	}
	for _, r := range value {
		if unicode.IsUpper(r) {
			return ""
		}
	}
	return "Password must contain at least one capital letter."
}

func checkConfirmPassword(value string, form SignupForm) string {
	if value != form.Password {
		return "Passwords do not match."
	}
	return ""
}

// Field validates a single field by name against the current form values.
// Unknown field names validate clean.
func Field(name, value string, form SignupForm) string {
	for _, v := range validators {
		if v.Field == name {
			return v.Check(value, form)
		}
	}
	return ""
}

// ValidateForm runs the full validator table against the given values and
// returns all field errors keyed by field name. An empty map means the form
// may be submitted.
func ValidateForm(form SignupForm) map[string]string {
	values := map[string]string{
		FieldUsername:        form.Username,
		FieldEmail:           form.Email,
		FieldPassword:        form.Password,
		FieldConfirmPassword: form.ConfirmPassword,
	}

	errs := make(map[string]string)
	for _, v := range validators {
		if msg := v.Check(values[v.Field], form); msg != "" {
			errs[v.Field] = msg
		}
	}
	return errs
}
