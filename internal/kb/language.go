package kb

// Language identifies one of the supported reply languages.
type Language string

const (
	English Language = "English"
	Hindi   Language = "Hindi"
	Telugu  Language = "Telugu"
)

// Languages lists all supported languages in display order.
var Languages = []Language{English, Hindi, Telugu}

// Detect classifies text by Unicode script. Any Devanagari character makes
// the text Hindi, otherwise any Telugu-block character makes it Telugu,
// otherwise English. Hindi is checked over the whole string before Telugu,
// so a mixed-script message still resolves to Hindi.
func Detect(text string) Language {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return Hindi
		}
	}
	for _, r := range text {
		if r >= 0x0C00 && r <= 0x0C7F {
			return Telugu
		}
	}
	return English
}

// Valid reports whether l is a recognized language.
func Valid(l Language) bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}
