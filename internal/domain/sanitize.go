package domain

import "strings"

// SanitizeArray extracts the JSON array from raw model output. Models wrap
// arrays in prose or code fences despite instructions; this recovers the
// substring between the first '[' and the last ']' inclusive. When no bracket
// pair exists the empty array literal is returned rather than an error.
// Idempotent on already-clean input.
func SanitizeArray(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	first := strings.Index(cleaned, "[")
	last := strings.LastIndex(cleaned, "]")
	if first == -1 || last == -1 || last < first {
		return "[]"
	}

	return cleaned[first : last+1]
}
