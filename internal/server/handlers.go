package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wellbotdev/wellbot/internal/auth"
	"github.com/wellbotdev/wellbot/internal/dialogue"
	"github.com/wellbotdev/wellbot/internal/feedback"
	"github.com/wellbotdev/wellbot/internal/intent"
	"github.com/wellbotdev/wellbot/internal/kb"
)

type ctxKey int

const usernameKey ctxKey = 0

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// bearerToken extracts the token from the Authorization header, falling
// back to the token query parameter for WebSocket clients.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := s.users.Authenticate(bearerToken(r))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		ctx := context.WithValue(r.Context(), usernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := r.Context().Value(usernameKey).(string)
		if !s.admins[strings.ToLower(username)] {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestUser(r *http.Request) string {
	username, _ := r.Context().Value(usernameKey).(string)
	return username
}

type registerRequest struct {
	auth.User
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Language == "" {
		req.Language = s.cfg.DefaultLanguage
	}
	if err := s.users.Register(req.User, req.Password); err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			writeError(w, http.StatusConflict, "username already exists")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	token, user, err := s.users.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidLogin) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Logout(bearerToken(r)); err != nil {
		writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(requestUser(r))
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var u auth.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u.Username = requestUser(r) // users can only edit themselves
	if err := s.users.UpdateProfile(u); err != nil {
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

type chatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
	Intent   string `json:"intent,omitempty"`
}

type chatResponse struct {
	Reply    string `json:"reply"`
	Intent   string `json:"intent"`
	Language string `json:"language"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	username := requestUser(r)
	resp := s.chat(username, req)
	writeJSON(w, http.StatusOK, resp)
}

// chat runs one dialogue turn. Shared by the REST and WebSocket chat
// endpoints. The echoed intent and language are the ones the manager
// resolved, so the response never drifts from the reply.
func (s *Server) chat(username string, req chatRequest) chatResponse {
	reply, it, lang := s.manager.Respond(username, req.Message, dialogue.Options{
		Intent:   intent.Intent(req.Intent),
		Language: kb.Language(req.Language),
	})
	return chatResponse{Reply: reply, Intent: string(it), Language: string(lang)}
}

func (s *Server) handleOwnHistory(w http.ResponseWriter, r *http.Request) {
	turns, err := s.chats.ForUser(requestUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load history")
		return
	}
	writeJSON(w, http.StatusOK, turns)
}

func (s *Server) handleAllHistory(w http.ResponseWriter, r *http.Request) {
	turns, err := s.chats.All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load history")
		return
	}
	writeJSON(w, http.StatusOK, turns)
}

func (s *Server) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var f feedback.Feedback
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	f.Username = requestUser(r)
	id, err := s.reactions.Submit(f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not save feedback")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	all, err := s.reactions.All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load feedback")
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := s.stats.Summary()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not compute analytics")
		return
	}
	perDay, err := s.stats.QueriesPerDay()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not compute analytics")
		return
	}
	intents, err := s.stats.IntentDistribution()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not compute analytics")
		return
	}
	topUsers, err := s.stats.TopUsers(10)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not compute analytics")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"summary":         summary,
		"queries_per_day": perDay,
		"intents":         intents,
		"top_users":       topUsers,
		"kb_entries":      s.manager.Snapshot().Len(),
	})
}

func (s *Server) handleListKB(w http.ResponseWriter, r *http.Request) {
	snap := s.manager.Snapshot()
	entries := make([]kb.Entry, 0, snap.Len())
	for _, name := range snap.Names() {
		entry, _ := snap.Get(name)
		entries = append(entries, *entry)
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAddKB(w http.ResponseWriter, r *http.Request) {
	var e kb.Entry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil || e.Name == "" {
		writeError(w, http.StatusBadRequest, "entry with a name is required")
		return
	}

	s.kbMu.Lock()
	defer s.kbMu.Unlock()

	snap := s.manager.Snapshot()
	if _, exists := snap.Get(e.Name); exists {
		writeError(w, http.StatusConflict, "entry already exists")
		return
	}
	s.swapKB(w, snap.WithEntry(e), http.StatusCreated)
}

func (s *Server) handleUpdateKB(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var e kb.Entry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.Name = name

	s.kbMu.Lock()
	defer s.kbMu.Unlock()

	snap := s.manager.Snapshot()
	if _, exists := snap.Get(name); !exists {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	s.swapKB(w, snap.WithEntry(e), http.StatusOK)
}

func (s *Server) handleDeleteKB(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.kbMu.Lock()
	defer s.kbMu.Unlock()

	snap := s.manager.Snapshot()
	if _, exists := snap.Get(name); !exists {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	s.swapKB(w, snap.WithoutEntry(name), http.StatusOK)
}

// swapKB persists the edited snapshot and swaps it into the dialogue
// manager. The document is written first so a failed save never leaves
// the in-memory state ahead of disk.
func (s *Server) swapKB(w http.ResponseWriter, snap *kb.Snapshot, okStatus int) {
	if err := snap.Save(s.cfg.KnowledgeBase); err != nil {
		log.Printf("server: saving knowledge base: %v", err)
		writeError(w, http.StatusInternalServerError, "could not save knowledge base")
		return
	}
	s.manager.SetKnowledgeBase(snap)
	writeJSON(w, okStatus, map[string]int{"entries": snap.Len()})
}
