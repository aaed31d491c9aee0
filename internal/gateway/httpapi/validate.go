package httpapi

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input validation happens here, before any request reaches the auth
// service. The rules mirror the registration contract: a plausible email,
// a password of 8-50 characters containing upper, lower, and digit, and a
// trimmed name of 2-100 characters.

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// maxPasswordBytes is the bcrypt input limit; longer inputs make
// GenerateFromPassword fail outright.
const maxPasswordBytes = 72

func passwordProblems(password string) []string {
	var problems []string

	length := utf8.RuneCountInString(password)
	if length < 8 {
		problems = append(problems, "Password must be at least 8 characters long")
	}
	if length > 50 {
		problems = append(problems, "Password must not exceed 50 characters")
	}
	if len(password) > maxPasswordBytes {
		problems = append(problems, "Password must not exceed 72 bytes")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		problems = append(problems, "Password must contain uppercase, lowercase, and number")
	}

	return problems
}

func nameProblems(name string) []string {
	var problems []string

	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		problems = append(problems, "Name must be at least 2 characters")
	}
	if len(trimmed) > 100 {
		problems = append(problems, "Name must not exceed 100 characters")
	}

	return problems
}

// validateNewUser checks a full credential triple for registration or
// authenticated creation. An empty result means the input is acceptable.
func validateNewUser(email, password, name string) []string {
	var problems []string

	if !validEmail(email) {
		problems = append(problems, "Please provide a valid email address")
	}
	problems = append(problems, passwordProblems(password)...)
	problems = append(problems, nameProblems(name)...)

	return problems
}

// validateUserPatch checks only the fields present in an update request.
func validateUserPatch(email, password, name *string) []string {
	var problems []string

	if email != nil && !validEmail(*email) {
		problems = append(problems, "Please provide a valid email address")
	}
	if password != nil {
		problems = append(problems, passwordProblems(*password)...)
	}
	if name != nil {
		problems = append(problems, nameProblems(*name)...)
	}

	return problems
}
