// Package extract pulls structured entities and known symptom phrases out
// of free-form chat messages.
package extract

import (
	"regexp"
	"strings"
)

// Entity kinds stored in a session.
const (
	KindDuration = "duration"
	KindSeverity = "severity"
)

var (
	durationRE = regexp.MustCompile(`(?i)\bfor\s+(\d+)\s+days?\b`)
	severityRE = regexp.MustCompile(`(?i)\b(mild|moderate|severe)\b`)
)

// Entities extracts duration ("for N days") and severity (mild, moderate,
// severe) from text. At most one value per kind.
func Entities(text string) map[string]string {
	entities := make(map[string]string)
	if m := durationRE.FindStringSubmatch(text); m != nil {
		entities[KindDuration] = m[1] + " days"
	}
	if m := severityRE.FindStringSubmatch(text); m != nil {
		entities[KindSeverity] = strings.ToLower(m[1])
	}
	return entities
}

// Symptoms returns the known symptom phrases present in text, deduplicated,
// in the order phrases are iterated. A phrase counts as present only with a
// boundary: the whole message, surrounded by spaces, or at the start or end
// next to a space. Bare substring hits are rejected so that "ache" does not
// fire inside "headache". Multi-word phrases with punctuation can still
// over- or under-match; that behavior is intentional.
func Symptoms(text string, phrases []string) []string {
	lower := strings.ToLower(strings.TrimSpace(text))
	padded := " " + lower + " "

	var found []string
	seen := make(map[string]struct{})
	for _, phrase := range phrases {
		p := strings.ToLower(phrase)
		if !strings.Contains(lower, p) {
			continue
		}
		if p == lower ||
			strings.Contains(padded, " "+p+" ") ||
			strings.HasPrefix(lower, p+" ") ||
			strings.HasSuffix(lower, " "+p) {
			if _, dup := seen[p]; !dup {
				seen[p] = struct{}{}
				found = append(found, phrase)
			}
		}
	}
	return found
}
