package kb

import "strings"

// Entry is a single illness (or wellness topic) in the knowledge base.
// English fields are the base; Hindi and Telugu localizations are optional
// and fall back to English when absent. The JSON tags mirror the on-disk
// knowledge base document.
type Entry struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms,omitempty"`
	Treatment   []string `json:"treatment,omitempty"`
	Warning     string   `json:"warning,omitempty"`
	Tips        []string `json:"tips,omitempty"`

	DescriptionHI string   `json:"description_hi,omitempty"`
	SymptomsHI    []string `json:"symptoms_hi,omitempty"`
	TreatmentHI   []string `json:"treatment_hi,omitempty"`
	WarningHI     string   `json:"warning_hi,omitempty"`

	DescriptionTE string   `json:"description_te,omitempty"`
	SymptomsTE    []string `json:"symptoms_te,omitempty"`
	TreatmentTE   []string `json:"treatment_te,omitempty"`
	WarningTE     string   `json:"warning_te,omitempty"`
}

// DescriptionIn returns the description for lang, falling back to English.
func (e *Entry) DescriptionIn(lang Language) string {
	switch lang {
	case Hindi:
		if e.DescriptionHI != "" {
			return e.DescriptionHI
		}
	case Telugu:
		if e.DescriptionTE != "" {
			return e.DescriptionTE
		}
	}
	return e.Description
}

// TreatmentIn returns the treatment list for lang, falling back to English.
func (e *Entry) TreatmentIn(lang Language) []string {
	switch lang {
	case Hindi:
		if len(e.TreatmentHI) > 0 {
			return e.TreatmentHI
		}
	case Telugu:
		if len(e.TreatmentTE) > 0 {
			return e.TreatmentTE
		}
	}
	return e.Treatment
}

// WarningIn returns the warning for lang, falling back to English.
func (e *Entry) WarningIn(lang Language) string {
	switch lang {
	case Hindi:
		if e.WarningHI != "" {
			return e.WarningHI
		}
	case Telugu:
		if e.WarningTE != "" {
			return e.WarningTE
		}
	}
	return e.Warning
}

// SymptomsIn returns the symptom list for lang. Unlike the other localized
// fields, symptom lists do not fall back: an absent localization is empty.
func (e *Entry) SymptomsIn(lang Language) []string {
	switch lang {
	case Hindi:
		return e.SymptomsHI
	case Telugu:
		return e.SymptomsTE
	default:
		return e.Symptoms
	}
}

// AllSymptoms returns the lower-cased union of the entry's symptom lists
// across every language.
func (e *Entry) AllSymptoms() map[string]struct{} {
	all := make(map[string]struct{})
	for _, list := range [][]string{e.Symptoms, e.SymptomsHI, e.SymptomsTE} {
		for _, s := range list {
			all[strings.ToLower(s)] = struct{}{}
		}
	}
	return all
}
