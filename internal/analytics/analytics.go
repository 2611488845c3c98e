// Package analytics aggregates chat and feedback data for the admin
// dashboard. Everything here is read-only presentation over stored rows.
package analytics

import (
	"fmt"

	"github.com/wellbotdev/wellbot/internal/db"
)

// Summary is the dashboard's headline numbers.
type Summary struct {
	TotalUsers       int `json:"total_users"`
	TotalQueries     int `json:"total_queries"`
	TotalFeedback    int `json:"total_feedback"`
	PositiveFeedback int `json:"positive_feedback"`
	// FeedbackPercent is positive feedback as an integer percentage of the
	// total, 0 when no feedback exists.
	FeedbackPercent int `json:"feedback_percent"`
}

// DayCount is the number of queries on one day.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// IntentCount is the number of queries classified with one intent.
type IntentCount struct {
	Intent string `json:"intent"`
	Count  int    `json:"count"`
}

// UserCount is the number of queries sent by one user.
type UserCount struct {
	Username string `json:"username"`
	Count    int    `json:"count"`
}

// Service computes aggregations over the shared database.
type Service struct {
	db *db.DB
}

// NewService creates an analytics service.
func NewService(database *db.DB) *Service {
	return &Service{db: database}
}

// Summary returns the headline counters.
func (s *Service) Summary() (*Summary, error) {
	var out Summary
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&out.TotalUsers); err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM chat_history`).Scan(&out.TotalQueries); err != nil {
		return nil, fmt.Errorf("counting queries: %w", err)
	}
	err := s.db.QueryRow(
		`SELECT COALESCE(SUM(is_positive), 0), COUNT(*) FROM feedback`,
	).Scan(&out.PositiveFeedback, &out.TotalFeedback)
	if err != nil {
		return nil, fmt.Errorf("counting feedback: %w", err)
	}
	if out.TotalFeedback > 0 {
		out.FeedbackPercent = out.PositiveFeedback * 100 / out.TotalFeedback
	}
	return &out, nil
}

// QueriesPerDay returns daily query counts in chronological order.
func (s *Service) QueriesPerDay() ([]DayCount, error) {
	rows, err := s.db.Query(
		`SELECT date(timestamp), COUNT(*) FROM chat_history
		 GROUP BY date(timestamp) ORDER BY date(timestamp)`)
	if err != nil {
		return nil, fmt.Errorf("querying daily counts: %w", err)
	}
	defer rows.Close()

	var counts []DayCount
	for rows.Next() {
		var c DayCount
		if err := rows.Scan(&c.Day, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning daily count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// IntentDistribution returns query counts per detected intent, most
// frequent first.
func (s *Service) IntentDistribution() ([]IntentCount, error) {
	rows, err := s.db.Query(
		`SELECT COALESCE(detected_intent, 'unknown'), COUNT(*) FROM chat_history
		 GROUP BY detected_intent ORDER BY COUNT(*) DESC, detected_intent`)
	if err != nil {
		return nil, fmt.Errorf("querying intent distribution: %w", err)
	}
	defer rows.Close()

	var counts []IntentCount
	for rows.Next() {
		var c IntentCount
		if err := rows.Scan(&c.Intent, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning intent count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// TopUsers returns the most active users, busiest first, capped at limit.
func (s *Service) TopUsers(limit int) ([]UserCount, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT username, COUNT(*) FROM chat_history
		 GROUP BY username ORDER BY COUNT(*) DESC, username LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top users: %w", err)
	}
	defer rows.Close()

	var counts []UserCount
	for rows.Next() {
		var c UserCount
		if err := rows.Scan(&c.Username, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning user count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
