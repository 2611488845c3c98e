package kb

import "strings"

var treatmentLabels = map[Language]string{
	English: "💊 Treatment:",
	Hindi:   "💊 उपचार:",
	Telugu:  "💊 చికిత్స:",
}

var warningLabels = map[Language]string{
	English: "⚠ Important: ",
	Hindi:   "⚠ महत्वपूर्ण: ",
	Telugu:  "⚠ ముఖ్యమైన: ",
}

var noInfo = map[Language]string{
	English: "I don't have information about that yet.",
	Hindi:   "मेरे पास इसके बारे में अभी तक जानकारी नहीं है।",
	Telugu:  "దీని గురించి ఇంకా నాకు సమాచారం లేదు.",
}

// NoInfo returns the localized "no information available" reply.
func NoInfo(lang Language) string {
	if s, ok := noInfo[lang]; ok {
		return s
	}
	return noInfo[English]
}

// FormatEntry renders an illness entry as a multi-line reply block:
// name, localized description, a treatment label with bulleted items,
// and a warning line when one exists.
func FormatEntry(name string, e *Entry, lang Language) string {
	if e == nil {
		return NoInfo(lang)
	}

	parts := []string{name}

	if desc := e.DescriptionIn(lang); desc != "" {
		parts = append(parts, desc)
	}

	if treatment := e.TreatmentIn(lang); len(treatment) > 0 {
		label, ok := treatmentLabels[lang]
		if !ok {
			label = treatmentLabels[English]
		}
		parts = append(parts, label)
		for _, item := range treatment {
			parts = append(parts, "• "+item)
		}
	}

	if warning := e.WarningIn(lang); warning != "" {
		label, ok := warningLabels[lang]
		if !ok {
			label = warningLabels[English]
		}
		parts = append(parts, label+warning)
	}

	return strings.Join(parts, "\n")
}

// FormatTopic renders a wellness topic entry (stress, sleep, exercise):
// the localized description followed by the tip lines.
func FormatTopic(e *Entry, lang Language) string {
	if e == nil {
		return NoInfo(lang)
	}
	reply := e.DescriptionIn(lang)
	if len(e.Tips) > 0 {
		reply += "\n" + strings.Join(e.Tips, "\n")
	}
	return reply
}
