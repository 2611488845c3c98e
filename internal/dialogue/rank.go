package dialogue

import (
	"sort"
	"strings"

	"github.com/wellbotdev/wellbot/internal/kb"
)

// Match is one candidate illness with its symptom overlap count.
type Match struct {
	Illness string `json:"illness"`
	Overlap int    `json:"overlap"`
}

// Rank scores every illness in the snapshot by the size of the
// intersection between symptoms and the illness's symptom lists across all
// languages. Results are descending by overlap; ties keep knowledge-base
// document order. Zero-overlap illnesses are excluded. The ranking is
// recomputed from scratch each call.
func Rank(snap *kb.Snapshot, symptoms []string) []Match {
	have := make(map[string]struct{}, len(symptoms))
	for _, s := range symptoms {
		have[strings.ToLower(s)] = struct{}{}
	}

	var matches []Match
	for _, name := range snap.Names() {
		entry, _ := snap.Get(name)
		overlap := 0
		for sym := range entry.AllSymptoms() {
			if _, ok := have[sym]; ok {
				overlap++
			}
		}
		if overlap > 0 {
			matches = append(matches, Match{Illness: name, Overlap: overlap})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Overlap > matches[b].Overlap
	})
	return matches
}
