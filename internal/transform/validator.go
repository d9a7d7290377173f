package transform

import (
	"regexp"
	"strings"
)

// emailPattern is the canonical email shape: dot-separated local-part
// segments, an @, a domain, and an alphabetic top-level label of at least
// two characters.
const emailPattern = `^[a-zA-Z0-9_%+-]+(\.[a-zA-Z0-9_%+-]+)*@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`

// EmailValidator checks candidate values against the canonical email shape.
type EmailValidator struct {
	pattern *regexp.Regexp
}

// NewEmailValidator creates a new email validator instance.
func NewEmailValidator() *EmailValidator {
	return &EmailValidator{
		pattern: regexp.MustCompile(emailPattern),
	}
}

// Validate reports whether the candidate is a non-empty string matching the
// email pattern. Input is trimmed before matching. Missing, null, or
// non-string values are simply invalid; no error is raised.
func (v *EmailValidator) Validate(candidate any) bool {
	email, ok := candidate.(string)
	if !ok || email == "" {
		return false
	}

	return v.pattern.MatchString(strings.TrimSpace(email))
}
