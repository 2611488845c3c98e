package kb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is an immutable, ordered view of the knowledge base document.
// Entry order follows the document and is the tie-break order for ranking,
// so it is preserved through load/save round-trips.
type Snapshot struct {
	names  []string
	byName map[string]*Entry
}

// NewSnapshot builds a snapshot from entries in order. Entries must carry
// a Name; later duplicates overwrite earlier ones.
func NewSnapshot(entries []Entry) *Snapshot {
	s := &Snapshot{byName: make(map[string]*Entry, len(entries))}
	for i := range entries {
		e := entries[i]
		if e.Name == "" {
			continue
		}
		if _, exists := s.byName[e.Name]; !exists {
			s.names = append(s.names, e.Name)
		}
		s.byName[e.Name] = &e
	}
	return s
}

// Load reads the knowledge base document at path. Both document shapes are
// accepted: an object mapping illness name to entry, or a list of entries
// with embedded names. Object key order is preserved.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base: %w", err)
	}
	return Parse(data)
}

// Parse decodes a knowledge base document from raw JSON.
func Parse(data []byte) (*Snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return NewSnapshot(nil), nil
	}

	if trimmed[0] == '[' {
		var entries []Entry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("parsing knowledge base list: %w", err)
		}
		return NewSnapshot(entries), nil
	}

	// Object form. Decode token by token so document order survives;
	// a plain map would shuffle the entries.
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing knowledge base: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parsing knowledge base: expected object or list")
	}

	var entries []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing knowledge base: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parsing knowledge base: non-string key")
		}
		var e Entry
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("parsing entry %q: %w", name, err)
		}
		e.Name = name
		entries = append(entries, e)
	}
	return NewSnapshot(entries), nil
}

// Save writes the snapshot to path as a JSON list, preserving entry order.
func (s *Snapshot) Save(path string) error {
	entries := make([]Entry, 0, len(s.names))
	for _, name := range s.names {
		entries = append(entries, *s.byName[name])
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding knowledge base: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing knowledge base: %w", err)
	}
	return nil
}

// Get returns the named entry.
func (s *Snapshot) Get(name string) (*Entry, bool) {
	e, ok := s.byName[name]
	return e, ok
}

// Names returns illness names in document order.
func (s *Snapshot) Names() []string {
	return append([]string(nil), s.names...)
}

// Len reports the number of entries.
func (s *Snapshot) Len() int { return len(s.names) }

// WithEntry returns a copy of the snapshot with e added or replaced.
// The receiver is not modified; snapshots stay immutable once shared.
func (s *Snapshot) WithEntry(e Entry) *Snapshot {
	out := s.clone()
	if _, exists := out.byName[e.Name]; !exists {
		out.names = append(out.names, e.Name)
	}
	out.byName[e.Name] = &e
	return out
}

// WithoutEntry returns a copy of the snapshot with name removed.
func (s *Snapshot) WithoutEntry(name string) *Snapshot {
	out := &Snapshot{byName: make(map[string]*Entry, len(s.byName))}
	for _, n := range s.names {
		if n == name {
			continue
		}
		out.names = append(out.names, n)
		out.byName[n] = s.byName[n]
	}
	return out
}

func (s *Snapshot) clone() *Snapshot {
	out := &Snapshot{
		names:  append([]string(nil), s.names...),
		byName: make(map[string]*Entry, len(s.byName)),
	}
	for n, e := range s.byName {
		out.byName[n] = e
	}
	return out
}
