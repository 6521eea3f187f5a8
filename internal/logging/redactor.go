package logging

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

// redactor masks contact details and free-text message bodies in log key-value pairs.
type redactor struct {
	sensitiveWords map[string]bool
}

// newRedactor creates a redactor with the default sensitive key segments.
func newRedactor() *redactor {
	words := []string{"secret", "password", "token", "email", "message", "body", "name"}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return &redactor{sensitiveWords: m}
}

// redact walks flattened key-value pairs. Values under a sensitive key are
// replaced; string values elsewhere have e-mail addresses masked.
// The input slice is not modified.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	result := make([]any, len(pairs))
	copy(result, pairs)
	for i := 0; i+1 < len(result); i += 2 {
		key, ok := result[i].(string)
		if !ok {
			continue
		}
		if r.isSensitive(key) {
			result[i+1] = redacted
			continue
		}
		if s, ok := result[i+1].(string); ok {
			result[i+1] = redactEmails(s)
		}
	}
	return result
}

// isSensitive reports whether any non-alphanumeric-separated segment of key is sensitive.
func (r *redactor) isSensitive(key string) bool {
	for _, part := range nonAlphanumeric.Split(strings.ToLower(key), -1) {
		if r.sensitiveWords[part] {
			return true
		}
	}
	return false
}

func redactEmails(s string) string {
	return emailPattern.ReplaceAllString(s, redacted)
}
