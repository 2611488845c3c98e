// Package history records conversation turns and serves them back to the
// dashboard.
package history

import (
	"fmt"

	"github.com/wellbotdev/wellbot/internal/db"
)

// Turn is one recorded exchange between a user and the bot.
type Turn struct {
	Username       string `json:"username"`
	UserMessage    string `json:"user_message"`
	DetectedIntent string `json:"detected_intent"`
	BotReply       string `json:"bot_reply"`
	Timestamp      string `json:"timestamp"`
}

// Store persists turns in the chat_history table. It satisfies the
// dialogue manager's Recorder interface.
type Store struct {
	db *db.DB
}

// NewStore creates a history store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record saves one conversation turn.
func (s *Store) Record(username, userMessage, detectedIntent, botReply string) error {
	_, err := s.db.Exec(
		`INSERT INTO chat_history (username, user_message, detected_intent, bot_reply)
		 VALUES (?, ?, ?, ?)`,
		username, userMessage, detectedIntent, botReply,
	)
	if err != nil {
		return fmt.Errorf("recording turn: %w", err)
	}
	return nil
}

// ForUser returns one user's turns in chronological order.
func (s *Store) ForUser(username string) ([]Turn, error) {
	return s.query(
		`SELECT username, user_message, detected_intent, bot_reply, timestamp
		 FROM chat_history WHERE username = ? ORDER BY timestamp, id`, username)
}

// All returns every recorded turn in chronological order.
func (s *Store) All() ([]Turn, error) {
	return s.query(
		`SELECT username, user_message, detected_intent, bot_reply, timestamp
		 FROM chat_history ORDER BY timestamp, id`)
}

func (s *Store) query(q string, args ...any) ([]Turn, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.Username, &t.UserMessage, &t.DetectedIntent, &t.BotReply, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}
