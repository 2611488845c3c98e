package kb

import "strings"

// Index maps every lower-cased symptom phrase, across all languages, to the
// illnesses that exhibit it. It is derived from a snapshot and rebuilt
// whole whenever the snapshot changes, never mutated in place.
type Index struct {
	phrases   []string            // first-seen order over the snapshot
	illnesses map[string][]string // phrase -> illness names
}

// BuildIndex derives the symptom index from a snapshot. Phrase order is the
// order symptoms are first encountered walking entries in document order,
// English before Hindi before Telugu within an entry.
func BuildIndex(snap *Snapshot) *Index {
	idx := &Index{illnesses: make(map[string][]string)}
	for _, name := range snap.names {
		e := snap.byName[name]
		for _, list := range [][]string{e.Symptoms, e.SymptomsHI, e.SymptomsTE} {
			for _, sym := range list {
				phrase := strings.ToLower(sym)
				if _, seen := idx.illnesses[phrase]; !seen {
					idx.phrases = append(idx.phrases, phrase)
				}
				if !contains(idx.illnesses[phrase], name) {
					idx.illnesses[phrase] = append(idx.illnesses[phrase], name)
				}
			}
		}
	}
	return idx
}

// Phrases returns every known symptom phrase in stable first-seen order.
func (i *Index) Phrases() []string { return i.phrases }

// Illnesses returns the illnesses known to exhibit the given phrase.
func (i *Index) Illnesses(phrase string) []string {
	return i.illnesses[strings.ToLower(phrase)]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
