package extract

import (
	"reflect"
	"testing"
)

func TestEntitiesDuration(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I've had this for 3 days", "3 days"},
		{"for 1 day now", "1 days"},
		{"For 10 Days", "10 days"},
		{"since yesterday", ""},
	}
	for _, tt := range tests {
		got := Entities(tt.text)[KindDuration]
		if got != tt.want {
			t.Errorf("Entities(%q)[duration] = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestEntitiesSeverity(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"a mild headache", "mild"},
		{"it is SEVERE", "severe"},
		{"moderately bad", ""}, // whole word only
		{"nothing", ""},
	}
	for _, tt := range tests {
		got := Entities(tt.text)[KindSeverity]
		if got != tt.want {
			t.Errorf("Entities(%q)[severity] = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestEntitiesBoth(t *testing.T) {
	got := Entities("severe cough for 5 days")
	want := map[string]string{KindSeverity: "severe", KindDuration: "5 days"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entities = %v, want %v", got, want)
	}
}

func TestSymptomsBoundaries(t *testing.T) {
	phrases := []string{"fever", "cough", "ache", "headache", "sore throat"}

	tests := []struct {
		text string
		want []string
	}{
		{"I have a fever and cough", []string{"fever", "cough"}},
		{"fever", []string{"fever"}},
		{"fever at night", []string{"fever"}},
		{"woke up with fever", []string{"fever"}},
		// "ache" inside "headache" must not match bare "ache".
		{"I have a headache", []string{"headache"}},
		{"my ache is back", []string{"ache"}},
		// No boundary, no match.
		{"feverish", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := Symptoms(tt.text, phrases)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Symptoms(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSymptomsDedup(t *testing.T) {
	got := Symptoms("cough cough cough", []string{"cough"})
	if !reflect.DeepEqual(got, []string{"cough"}) {
		t.Errorf("Symptoms should deduplicate, got %v", got)
	}
}

func TestSymptomsOrderFollowsPhraseList(t *testing.T) {
	phrases := []string{"cough", "fever"}
	got := Symptoms("fever then cough", phrases)
	// Order is phrase-list iteration order, not position in the text.
	if !reflect.DeepEqual(got, []string{"cough", "fever"}) {
		t.Errorf("Symptoms = %v, want [cough fever]", got)
	}
}
