// Package match implements the heuristic duplicate detector for parsed job
// applications. Matching is approximate by design: it trades exact entity
// resolution for robustness against the spelling drift between platforms
// ("Google" vs "Google LLC", "Sr. Engineer" vs "Senior Engineer").
package match

import "strings"

// Normalize canonicalizes a string for comparison: lowercase, trimmed, and
// stripped of everything outside [a-z0-9]. The result is never shown to the
// user, only compared.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
