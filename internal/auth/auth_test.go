package auth

import (
	"errors"
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

func register(t *testing.T, s *Store, username, password string) {
	t.Helper()
	err := s.Register(User{
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test User",
		Age:      30,
		Gender:   "Other",
		Language: "English",
	}, password)
	if err != nil {
		t.Fatalf("Register(%s): %v", username, err)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestStore(t)
	register(t, s, "ravi", "secret123")

	token, user, err := s.Login("ravi", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if user.Username != "ravi" || user.Language != "English" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	register(t, s, "ravi", "secret123")

	err := s.Register(User{Username: "ravi"}, "other")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestStore(t)
	register(t, s, "ravi", "secret123")

	if _, _, err := s.Login("ravi", "wrong"); !errors.Is(err, ErrInvalidLogin) {
		t.Errorf("expected ErrInvalidLogin, got %v", err)
	}
	if _, _, err := s.Login("nobody", "secret123"); !errors.Is(err, ErrInvalidLogin) {
		t.Errorf("expected ErrInvalidLogin for unknown user, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	register(t, s, "ravi", "secret123")
	token, _, err := s.Login("ravi", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	username, err := s.Authenticate(token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if username != "ravi" {
		t.Errorf("Authenticate = %q, want ravi", username)
	}

	if _, err := s.Authenticate("bogus"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := s.Authenticate(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestStore(t)
	register(t, s, "ravi", "secret123")
	token, _, _ := s.Login("ravi", "secret123")

	if err := s.Logout(token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := s.Authenticate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token should be revoked, got %v", err)
	}
	// Revoking again is fine.
	if err := s.Logout(token); err != nil {
		t.Errorf("second Logout: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t)
	register(t, s, "ravi", "secret123")

	err := s.UpdateProfile(User{
		Username: "ravi",
		Email:    "new@example.com",
		FullName: "Ravi K",
		Age:      31,
		Gender:   "Male",
		Language: "Hindi",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	u, err := s.Get("ravi")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u.Language != "Hindi" || u.Email != "new@example.com" {
		t.Errorf("profile not updated: %+v", u)
	}
}

func TestAllUsers(t *testing.T) {
	s := newTestStore(t)
	register(t, s, "ravi", "a1")
	register(t, s, "priya", "b2")

	users, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(users) != 2 || users[0].Username != "ravi" || users[1].Username != "priya" {
		t.Errorf("unexpected users: %+v", users)
	}
}
