package feedback

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

func TestSubmitAndList(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Submit(Feedback{
		Username:   "ravi",
		UserQuery:  "i have a fever",
		BotReply:   "Any other symptoms?",
		IsPositive: true,
		Comment:    "helpful",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id == "" {
		t.Error("expected a feedback id")
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 feedback, got %d", len(all))
	}
	got := all[0]
	if got.ID != id || !got.IsPositive || got.Comment != "helpful" {
		t.Errorf("unexpected feedback: %+v", got)
	}
}

func TestCounts(t *testing.T) {
	s := newTestStore(t)

	pos, total, err := s.Counts()
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if pos != 0 || total != 0 {
		t.Errorf("empty store: pos=%d total=%d", pos, total)
	}

	s.Submit(Feedback{Username: "a", IsPositive: true})
	s.Submit(Feedback{Username: "b", IsPositive: true})
	s.Submit(Feedback{Username: "c", IsPositive: false})

	pos, total, err = s.Counts()
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if pos != 2 || total != 3 {
		t.Errorf("pos=%d total=%d, want 2/3", pos, total)
	}
}
