// Package auth handles user accounts and bearer tokens for the dashboard.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wellbotdev/wellbot/internal/db"
)

var (
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidLogin is returned for a wrong username or password.
	ErrInvalidLogin = errors.New("invalid username or password")
	// ErrInvalidToken is returned for an unknown bearer token.
	ErrInvalidToken = errors.New("invalid token")
)

// User is a registered account. The password hash never leaves this package.
type User struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Language  string `json:"language"`
	CreatedAt string `json:"created_at"`
}

// Store manages users and tokens over the shared database.
type Store struct {
	db *db.DB
}

// NewStore creates an auth store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// HashPassword returns the hex-encoded SHA-256 digest of the password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new user account.
func (s *Store) Register(u User, password string) error {
	if u.Username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}
	_, err := s.db.Exec(
		`INSERT INTO users (username, password, email, full_name, age, gender, language)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Username, HashPassword(password), u.Email, u.FullName, u.Age, u.Gender, u.Language,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUsernameTaken
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// Login verifies credentials and issues a bearer token.
func (s *Store) Login(username, password string) (string, *User, error) {
	var u User
	var stored string
	err := s.db.QueryRow(
		`SELECT username, password, email, full_name, age, gender, language, created_at
		 FROM users WHERE username = ?`, username,
	).Scan(&u.Username, &stored, &u.Email, &u.FullName, &u.Age, &u.Gender, &u.Language, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrInvalidLogin
		}
		return "", nil, fmt.Errorf("looking up user: %w", err)
	}

	hash := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(stored)) != 1 {
		return "", nil, ErrInvalidLogin
	}

	token := uuid.NewString()
	if _, err := s.db.Exec(
		`INSERT INTO api_tokens (token, username) VALUES (?, ?)`, token, username,
	); err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}
	return token, &u, nil
}

// Authenticate resolves a bearer token to its username.
func (s *Store) Authenticate(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	var username string
	err := s.db.QueryRow(
		`SELECT username FROM api_tokens WHERE token = ?`, token,
	).Scan(&username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("looking up token: %w", err)
	}
	return username, nil
}

// Logout revokes a token. Revoking an unknown token is a no-op.
func (s *Store) Logout(token string) error {
	if _, err := s.db.Exec(`DELETE FROM api_tokens WHERE token = ?`, token); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}

// Get returns the named user's profile.
func (s *Store) Get(username string) (*User, error) {
	var u User
	err := s.db.QueryRow(
		`SELECT username, email, full_name, age, gender, language, created_at
		 FROM users WHERE username = ?`, username,
	).Scan(&u.Username, &u.Email, &u.FullName, &u.Age, &u.Gender, &u.Language, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q not found", username)
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	return &u, nil
}

// All returns every registered user in creation order.
func (s *Store) All() ([]User, error) {
	rows, err := s.db.Query(
		`SELECT username, email, full_name, age, gender, language, created_at
		 FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Username, &u.Email, &u.FullName, &u.Age, &u.Gender, &u.Language, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateProfile updates the mutable profile fields for a user.
func (s *Store) UpdateProfile(u User) error {
	res, err := s.db.Exec(
		`UPDATE users SET email = ?, full_name = ?, age = ?, gender = ?, language = ?
		 WHERE username = ?`,
		u.Email, u.FullName, u.Age, u.Gender, u.Language, u.Username,
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("user %q not found", u.Username)
	}
	return nil
}
