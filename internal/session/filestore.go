package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// persistedSession is the on-disk shape: the symptom set flattens to a
// list and is rebuilt on load, so element order in the file never matters.
type persistedSession struct {
	Symptoms []string          `json:"symptoms"`
	Entities map[string]string `json:"entities"`
}

// FileStore persists the session table as a JSON document mapping user id
// to symptoms and entities.
type FileStore struct {
	path string
}

// NewFileStore creates a persister writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the full session table.
func (f *FileStore) Save(sessions map[string]*Session) error {
	out := make(map[string]persistedSession, len(sessions))
	for userID, sess := range sessions {
		out[userID] = persistedSession{
			Symptoms: sess.SymptomList(),
			Entities: sess.Entities,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sessions: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("creating sessions directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("writing sessions: %w", err)
	}
	return nil
}

// Load restores the session table. A missing file is an empty table, not
// an error.
func (f *FileStore) Load() (map[string]*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*Session{}, nil
		}
		return nil, fmt.Errorf("reading sessions: %w", err)
	}

	var raw map[string]persistedSession
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing sessions: %w", err)
	}

	sessions := make(map[string]*Session, len(raw))
	for userID, p := range raw {
		sess := newSession()
		for _, sym := range p.Symptoms {
			sess.Symptoms[sym] = struct{}{}
		}
		for k, v := range p.Entities {
			sess.Entities[k] = v
		}
		sessions[userID] = sess
	}
	return sessions, nil
}

// NopPersister discards saves and loads nothing. Used in tests and when
// session persistence is disabled.
type NopPersister struct{}

func (NopPersister) Save(map[string]*Session) error     { return nil }
func (NopPersister) Load() (map[string]*Session, error) { return map[string]*Session{}, nil }
