package session

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAddIsIdempotent(t *testing.T) {
	store := NewStore(nil)

	store.Add("ravi", []string{"fever", "cough"}, nil)
	store.Add("ravi", []string{"fever", "cough"}, nil)

	sess := store.Get("ravi")
	if len(sess.Symptoms) != 2 {
		t.Errorf("expected 2 symptoms after duplicate adds, got %d", len(sess.Symptoms))
	}
}

func TestEntitiesFirstWriteWins(t *testing.T) {
	store := NewStore(nil)

	store.Add("ravi", nil, map[string]string{"duration": "3 days"})
	store.Add("ravi", nil, map[string]string{"duration": "5 days", "severity": "mild"})

	sess := store.Get("ravi")
	if sess.Entities["duration"] != "3 days" {
		t.Errorf("duration = %q, want first-seen \"3 days\"", sess.Entities["duration"])
	}
	if sess.Entities["severity"] != "mild" {
		t.Errorf("severity = %q, want \"mild\"", sess.Entities["severity"])
	}
}

func TestGetAbsentUserReturnsEmptySession(t *testing.T) {
	store := NewStore(nil)
	sess := store.Get("nobody")
	if !sess.Empty() || len(sess.Entities) != 0 {
		t.Errorf("expected empty session, got %+v", sess)
	}
}

func TestEmptyOnGetResult(t *testing.T) {
	store := NewStore(nil)

	// Empty must be callable directly on the value Get returns.
	if !store.Get("nobody").Empty() {
		t.Error("absent user session should be empty")
	}

	store.Add("ravi", []string{"fever"}, nil)
	if store.Get("ravi").Empty() {
		t.Error("session with a symptom should not be empty")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	store := NewStore(nil)
	store.Add("ravi", []string{"fever"}, nil)

	sess := store.Get("ravi")
	sess.Symptoms["cough"] = struct{}{}

	if len(store.Get("ravi").Symptoms) != 1 {
		t.Error("mutating the returned session leaked into the store")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := NewStore(nil)
	store.Add("ravi", []string{"fever"}, nil)

	store.Clear("ravi")
	store.Clear("ravi") // absent now; must not panic or error
	store.Clear("never-existed")

	if store.Len() != 0 {
		t.Errorf("expected 0 sessions, got %d", store.Len())
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	fs := NewFileStore(path)

	store := NewStore(fs)
	store.Add("ravi", []string{"cough", "fever"}, map[string]string{"duration": "3 days"})
	store.Add("priya", []string{"sneezing"}, nil)

	// A fresh store over the same file sees the same sessions.
	reloaded := NewStore(NewFileStore(path))
	sess := reloaded.Get("ravi")
	if !reflect.DeepEqual(sess.SymptomList(), []string{"cough", "fever"}) {
		t.Errorf("symptoms after reload: %v", sess.SymptomList())
	}
	if sess.Entities["duration"] != "3 days" {
		t.Errorf("entities after reload: %v", sess.Entities)
	}
	if reloaded.Len() != 2 {
		t.Errorf("expected 2 sessions after reload, got %d", reloaded.Len())
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	sessions, err := fs.Load()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty table, got %d sessions", len(sessions))
	}
}

func TestCorruptSessionsFileYieldsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	// NewStore logs the failure and starts empty rather than failing.
	store := NewStore(NewFileStore(path))
	if store.Len() != 0 {
		t.Errorf("expected empty store from corrupt file, got %d", store.Len())
	}
	store.Add("ravi", []string{"fever"}, nil)
	if store.Len() != 1 {
		t.Error("store should remain usable after load failure")
	}
}
