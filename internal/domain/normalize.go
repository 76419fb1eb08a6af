package domain

import "strings"

// NormalizeUsername folds a username to its stored form.
func NormalizeUsername(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeEmail folds an email address to its stored form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CleanText collapses runs of spaces and tabs within each line and trims
// the result. Case and line breaks survive.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.FieldsFunc(line, isBlank), " ")
	}
	return strings.Join(lines, "\n")
}

func isBlank(r rune) bool { return r == ' ' || r == '\t' || r == '\r' }
