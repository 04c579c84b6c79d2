// Package normalize maps form drafts to the exact wire payloads the
// backend accepts. Normalization is a pure transform; anything that can go
// wrong is a validation error raised before the HTTP call.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	displayDateRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	isoDateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// CoerceTimestamp rewrites a picker date into a full timestamp.
// Idempotent: a value that already carries a time separator passes
// through, and an empty input stays empty.
func CoerceTimestamp(s string) string {
	if s == "" {
		return ""
	}
	if strings.Contains(s, "T") {
		return s
	}
	if m := displayDateRe.FindStringSubmatch(s); m != nil {
		// DD/MM/YYYY display format.
		return fmt.Sprintf("%s-%s-%sT00:00:00Z", m[3], m[2], m[1])
	}
	if isoDateRe.MatchString(s) {
		return s + "T00:00:00Z"
	}
	return s
}

// DateOnly strips the time component for round-tripping a stored
// timestamp back into a date-only picker.
func DateOnly(s string) string {
	if i := strings.Index(s, "T"); i >= 0 {
		return s[:i]
	}
	return s
}
