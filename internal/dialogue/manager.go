// Package dialogue is the conversation core: it resolves language and
// intent for each incoming message, accumulates symptoms per user, ranks
// candidate illnesses and composes the localized reply.
package dialogue

import (
	"log"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wellbotdev/wellbot/internal/extract"
	"github.com/wellbotdev/wellbot/internal/intent"
	"github.com/wellbotdev/wellbot/internal/kb"
	"github.com/wellbotdev/wellbot/internal/session"
)

// Chooser picks a random index in [0, n). Injected so tests can pin the
// choice of reply variant and suggested symptom.
type Chooser interface {
	Intn(n int) int
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

// Recorder persists one conversation turn. Failures are logged by the
// manager, never surfaced to the user.
type Recorder interface {
	Record(userID, userMessage, detectedIntent, botReply string) error
}

// kbState pairs a snapshot with its derived index so the two always swap
// together.
type kbState struct {
	snap  *kb.Snapshot
	index *kb.Index
}

// Options are per-call overrides for Reply. Zero values mean auto-detect.
type Options struct {
	Intent   intent.Intent
	Language kb.Language
}

// Manager drives the dialogue state machine. Every reply path returns a
// string; nothing in here errors out to the caller.
type Manager struct {
	state     atomic.Pointer[kbState]
	sessions  *session.Store
	recorder  Recorder
	chooser   Chooser
	threshold int // top-match overlap that triggers a diagnosis
	topN      int // max illnesses in one diagnosis
}

// Option configures a Manager.
type Option func(*Manager)

// WithChooser replaces the random source.
func WithChooser(c Chooser) Option {
	return func(m *Manager) { m.chooser = c }
}

// WithRecorder sets the interaction recorder.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) { m.recorder = r }
}

// WithThreshold sets the diagnosis trigger overlap.
func WithThreshold(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.threshold = n
		}
	}
}

// WithTopN sets how many illnesses a diagnosis may list.
func WithTopN(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.topN = n
		}
	}
}

// NewManager creates a dialogue manager over a knowledge base snapshot and
// a session store.
func NewManager(snap *kb.Snapshot, sessions *session.Store, opts ...Option) *Manager {
	m := &Manager{
		sessions:  sessions,
		chooser:   &lockedRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))},
		threshold: 2,
		topN:      3,
	}
	m.SetKnowledgeBase(snap)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetKnowledgeBase swaps in a new snapshot and rebuilds the symptom index
// atomically, so in-flight turns keep reading a consistent pair.
func (m *Manager) SetKnowledgeBase(snap *kb.Snapshot) {
	if snap == nil {
		snap = kb.NewSnapshot(nil)
	}
	m.state.Store(&kbState{snap: snap, index: kb.BuildIndex(snap)})
}

// Snapshot returns the current knowledge base snapshot.
func (m *Manager) Snapshot() *kb.Snapshot { return m.state.Load().snap }

// Sessions exposes the session store.
func (m *Manager) Sessions() *session.Store { return m.sessions }

// Respond handles one user turn and returns the bot reply along with the
// intent and language the turn resolved to. Language and intent come from
// opts when set, otherwise they are detected from the message. The turn
// is recorded best-effort before returning.
func (m *Manager) Respond(userID, message string, opts Options) (string, intent.Intent, kb.Language) {
	lang := opts.Language
	if lang == "" {
		lang = kb.Detect(message)
	}
	it := opts.Intent
	if it == "" {
		it = intent.Classify(message)
	}

	reply := m.reply(userID, message, it, lang)

	if m.recorder != nil {
		if err := m.recorder.Record(userID, message, string(it), reply); err != nil {
			log.Printf("dialogue: could not record interaction for %s: %v", userID, err)
		}
	}
	return reply, it, lang
}

// Reply is Respond for callers that only need the reply text.
func (m *Manager) Reply(userID, message string, opts Options) string {
	reply, _, _ := m.Respond(userID, message, opts)
	return reply
}

func (m *Manager) reply(userID, message string, it intent.Intent, lang kb.Language) string {
	state := m.state.Load()

	switch {
	case it == intent.Greet:
		return m.choose(variants(greetings, lang))

	case it == intent.Goodbye:
		m.sessions.Clear(userID)
		return m.choose(variants(goodbyes, lang))

	case intent.WellnessTopic(it):
		entry, ok := state.snap.Get(string(it))
		if !ok {
			return kb.NoInfo(lang)
		}
		return kb.FormatTopic(entry, lang)

	case it == intent.DiagnosisQuery:
		sess := m.sessions.Get(userID)
		if sess.Empty() {
			return fixed(notEnoughSymptoms, lang)
		}
		matches := Rank(state.snap, sess.SymptomList())
		if len(matches) == 0 {
			return fixed(needMoreSymptoms, lang)
		}
		return m.diagnose(userID, state, matches, lang)
	}

	// Symptom handling for unknown intent.
	symptoms := extract.Symptoms(message, state.index.Phrases())
	entities := extract.Entities(message)
	if len(symptoms) > 0 || len(entities) > 0 {
		m.sessions.Add(userID, symptoms, entities)
	}

	sess := m.sessions.Get(userID)
	if len(sess.Symptoms) < 2 {
		return m.choose(variants(moreSymptoms, lang))
	}

	matches := Rank(state.snap, sess.SymptomList())
	if len(matches) > 0 && matches[0].Overlap >= m.threshold {
		return m.diagnose(userID, state, matches, lang)
	}

	if suggestion := m.suggest(state.index, sess, lang); suggestion != "" {
		return suggestion
	}
	return fixed(needMoreInfo, lang) + m.choose(variants(moreSymptoms, lang))
}

// diagnose composes the full diagnosis reply from ranked matches and
// clears the user's session: a delivered diagnosis ends the conversation
// episode.
func (m *Manager) diagnose(userID string, state *kbState, matches []Match, lang kb.Language) string {
	top := matches
	if len(top) > m.topN {
		top = top[:m.topN]
	}

	parts := []string{fixed(disclaimer, lang), ""}
	names := make([]string, 0, len(top))
	for _, match := range top {
		names = append(names, match.Illness)
		entry, _ := state.snap.Get(match.Illness)
		parts = append(parts, kb.FormatEntry(match.Illness, entry, lang), "")
	}
	parts = append(parts, fixed(possibleConditions, lang)+strings.Join(names, ", "))

	m.sessions.Clear(userID)
	return strings.Join(parts, "\n")
}

// suggest asks about one known symptom the user has not reported yet,
// picked uniformly at random. Returns "" when every symptom is tried.
func (m *Manager) suggest(index *kb.Index, sess session.Session, lang kb.Language) string {
	var candidates []string
	for _, phrase := range index.Phrases() {
		if _, have := sess.Symptoms[phrase]; !have {
			candidates = append(candidates, phrase)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return suggestSymptom(lang, candidates[m.chooser.Intn(len(candidates))])
}

func (m *Manager) choose(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[m.chooser.Intn(len(options))]
}
