// Package intent implements rule-based intent detection over chat messages.
package intent

import "strings"

// Intent is the classified purpose of a user message.
type Intent string

const (
	Greet          Intent = "greet"
	Goodbye        Intent = "goodbye"
	Stress         Intent = "stress"
	Sleep          Intent = "sleep"
	Exercise       Intent = "exercise"
	DiagnosisQuery Intent = "diagnosis_query"
	Unknown        Intent = "unknown"
)

// rules are evaluated in order; the first intent whose keyword list matches
// wins, so greet beats goodbye in "hello, bye". Each list carries English,
// Hindi and Telugu equivalents, including transliterations.
var rules = []struct {
	intent   Intent
	keywords []string
}{
	{Greet, []string{"hi", "hello", "hey", "namaste", "halo", "नमस्ते", "హలో"}},
	{Goodbye, []string{"bye", "goodbye", "see you", "alvida", "vīḍkōlu", "अलविदा", "వీడ్కోలు"}},
	{Stress, []string{"stress", "anxious", "तनाव", "ఒత్తిడి"}},
	{Sleep, []string{"sleep", "tired", "नींद", "నిద్ర"}},
	{Exercise, []string{"exercise", "workout", "व्यायाम", "వ్యాయామం"}},
	{DiagnosisQuery, []string{"what do i have", "diagnose", "so what do i have", "मुझे क्या है", "నాకు ఏమి ఉంది"}},
}

// Classify returns the intent of a message. It is a pure function of the
// lower-cased text; unmatched messages are Unknown.
func Classify(text string) Intent {
	m := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(m, kw) {
				return rule.intent
			}
		}
	}
	return Unknown
}

// WellnessTopic reports whether the intent asks for a wellness tip rather
// than symptom handling.
func WellnessTopic(i Intent) bool {
	return i == Stress || i == Sleep || i == Exercise
}
