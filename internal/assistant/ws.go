package assistant

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// socketRequest is the incoming WebSocket frame.
type socketRequest struct {
	Type      string `json:"type"`       // "message"
	SessionID string `json:"session_id"` // empty for new sessions
	Content   string `json:"content"`
}

// socketResponse is the outgoing WebSocket frame.
type socketResponse struct {
	Type      string   `json:"type"` // "response" or "error"
	SessionID string   `json:"session_id"`
	Content   string   `json:"content"`
	Context   *Context `json:"context,omitempty"`
}

func handleChatSocket(agent *Agent, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("assistant: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("assistant: websocket read: %v", err)
				}
				return
			}

			var req socketRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendSocketError(conn, "", "invalid message format")
				continue
			}
			if req.Content == "" {
				sendSocketError(conn, req.SessionID, "content is required")
				continue
			}
			if req.Type != "message" {
				sendSocketError(conn, req.SessionID, "unknown message type: "+req.Type)
				continue
			}

			sess := store.GetOrCreate(req.SessionID)
			reply, err := safeChat(agent, r, sess, req.Content)
			if err != nil {
				sendSocketError(conn, sess.ID, err.Error())
				continue
			}

			send(conn, socketResponse{
				Type:      "response",
				SessionID: sess.ID,
				Content:   reply,
				Context:   sess.Context,
			})
		}
	}
}

func send(conn *websocket.Conn, resp socketResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("assistant: websocket write: %v", err)
	}
}

func sendSocketError(conn *websocket.Conn, sessionID, message string) {
	send(conn, socketResponse{
		Type:      "error",
		SessionID: sessionID,
		Content:   message,
	})
}
