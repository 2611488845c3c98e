// Package session accumulates per-user symptoms and entities across
// conversation turns.
package session

import (
	"log"
	"sort"
	"sync"
)

// Session is one user's accumulated conversation state.
type Session struct {
	Symptoms map[string]struct{}
	Entities map[string]string
}

func newSession() *Session {
	return &Session{
		Symptoms: make(map[string]struct{}),
		Entities: make(map[string]string),
	}
}

// SymptomList returns the symptoms as a sorted slice.
func (s *Session) SymptomList() []string {
	list := make([]string, 0, len(s.Symptoms))
	for sym := range s.Symptoms {
		list = append(list, sym)
	}
	sort.Strings(list)
	return list
}

// Empty reports whether the session has no observed symptoms.
func (s Session) Empty() bool { return len(s.Symptoms) == 0 }

func (s *Session) clone() Session {
	out := Session{
		Symptoms: make(map[string]struct{}, len(s.Symptoms)),
		Entities: make(map[string]string, len(s.Entities)),
	}
	for sym := range s.Symptoms {
		out.Symptoms[sym] = struct{}{}
	}
	for k, v := range s.Entities {
		out.Entities[k] = v
	}
	return out
}

// Persister saves and restores the full session table. Implementations are
// best-effort: the store logs failures and carries on in memory.
type Persister interface {
	Save(sessions map[string]*Session) error
	Load() (map[string]*Session, error)
}

// Store holds sessions keyed by user id. All methods are safe for
// concurrent use; the mutex also serializes turns from the same user so
// symptom updates are never lost.
type Store struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	persister Persister
}

// NewStore creates a store backed by p, restoring any previously persisted
// sessions. A load failure yields an empty table, never an error.
func NewStore(p Persister) *Store {
	s := &Store{sessions: make(map[string]*Session), persister: p}
	if p == nil {
		return s
	}
	loaded, err := p.Load()
	if err != nil {
		log.Printf("session: could not restore sessions: %v", err)
		return s
	}
	if loaded != nil {
		s.sessions = loaded
	}
	return s
}

// Add unions symptoms into the user's session and inserts entities for
// kinds not already present (first write wins). The session is created
// lazily on first observation.
func (s *Store) Add(userID string, symptoms []string, entities map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = newSession()
		s.sessions[userID] = sess
	}
	for _, sym := range symptoms {
		sess.Symptoms[sym] = struct{}{}
	}
	for kind, value := range entities {
		if _, exists := sess.Entities[kind]; !exists {
			sess.Entities[kind] = value
		}
	}
	s.persistLocked()
}

// Get returns a copy of the user's session, or an empty session if none
// exists.
func (s *Store) Get(userID string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess.clone()
	}
	return *newSession()
}

// Clear removes the user's session. Clearing an absent session is a no-op.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[userID]; !ok {
		return
	}
	delete(s.sessions, userID)
	s.persistLocked()
}

// Len reports the number of active sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.sessions); err != nil {
		log.Printf("session: could not persist sessions: %v", err)
	}
}
