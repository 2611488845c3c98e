// Package feedback stores thumbs up/down reactions to bot replies.
package feedback

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wellbotdev/wellbot/internal/db"
)

// Feedback is one reaction to a bot reply.
type Feedback struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	UserQuery  string `json:"user_query"`
	BotReply   string `json:"bot_reply"`
	IsPositive bool   `json:"is_positive"`
	Comment    string `json:"comment"`
	Timestamp  string `json:"timestamp"`
}

// Store persists feedback in the shared database.
type Store struct {
	db *db.DB
}

// NewStore creates a feedback store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Submit saves a new piece of feedback and returns its id.
func (s *Store) Submit(f Feedback) (string, error) {
	id := uuid.NewString()
	positive := 0
	if f.IsPositive {
		positive = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO feedback (id, username, user_query, bot_reply, is_positive, comment)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, f.Username, f.UserQuery, f.BotReply, positive, f.Comment,
	)
	if err != nil {
		return "", fmt.Errorf("saving feedback: %w", err)
	}
	return id, nil
}

// All returns every piece of feedback, most recent first.
func (s *Store) All() ([]Feedback, error) {
	rows, err := s.db.Query(
		`SELECT id, username, user_query, bot_reply, is_positive, comment, timestamp
		 FROM feedback ORDER BY timestamp DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	defer rows.Close()

	var all []Feedback
	for rows.Next() {
		var f Feedback
		var positive int
		if err := rows.Scan(&f.ID, &f.Username, &f.UserQuery, &f.BotReply, &positive, &f.Comment, &f.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		f.IsPositive = positive == 1
		all = append(all, f)
	}
	return all, rows.Err()
}

// Counts returns the number of positive reactions and the total.
func (s *Store) Counts() (positive, total int, err error) {
	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(is_positive), 0), COUNT(*) FROM feedback`,
	).Scan(&positive, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("counting feedback: %w", err)
	}
	return positive, total, nil
}
