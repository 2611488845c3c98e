package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type     string `json:"type"` // "reply" or "error"
	Reply    string `json:"reply,omitempty"`
	Intent   string `json:"intent,omitempty"`
	Language string `json:"language,omitempty"`
	Error    string `json:"error,omitempty"`
}

// handleWebSocket serves a live chat connection. Clients authenticate with
// a token query parameter and then exchange one JSON message per turn.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	username, err := s.users.Authenticate(bearerToken(r))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendWS(conn, wsResponse{Type: "error", Error: "invalid message format"})
			continue
		}
		if req.Message == "" {
			s.sendWS(conn, wsResponse{Type: "error", Error: "message is required"})
			continue
		}

		resp := s.chat(username, chatRequest{Message: req.Message, Language: req.Language})
		s.sendWS(conn, wsResponse{
			Type:     "reply",
			Reply:    resp.Reply,
			Intent:   resp.Intent,
			Language: resp.Language,
		})
	}
}

func (s *Server) sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}
