package history

import (
	"testing"

	"github.com/wellbotdev/wellbot/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestRecordAndQuery(t *testing.T) {
	s := newTestStore(t)

	if err := s.Record("ravi", "hello", "greet", "Hello! How are you feeling today?"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record("ravi", "i have a fever", "unknown", "Any other symptoms?"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record("priya", "bye", "goodbye", "Goodbye! Take care!"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	mine, err := s.ForUser("ravi")
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 turns for ravi, got %d", len(mine))
	}
	if mine[0].UserMessage != "hello" || mine[0].DetectedIntent != "greet" {
		t.Errorf("first turn wrong: %+v", mine[0])
	}
	if mine[1].UserMessage != "i have a fever" {
		t.Errorf("turns out of order: %+v", mine[1])
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 turns total, got %d", len(all))
	}
}

func TestForUserEmpty(t *testing.T) {
	s := newTestStore(t)
	turns, err := s.ForUser("nobody")
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected no turns, got %d", len(turns))
	}
}
