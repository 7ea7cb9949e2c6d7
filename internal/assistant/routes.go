package assistant

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the chat and session endpoints.
func RegisterRoutes(r chi.Router, agent *Agent, store *Store) {
	r.Post("/api/chat", handleChat(agent, store))
	r.Post("/api/session/reset", handleSessionReset(store))
	r.Get("/api/session/context", handleSessionContext(store))
	r.Get("/ws/chat", handleChatSocket(agent, store))
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Response  string   `json:"response"`
	Context   *Context `json:"context"`
	SessionID string   `json:"session_id"`
}

func handleChat(agent *Agent, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, `{"error":"message is required"}`, http.StatusBadRequest)
			return
		}

		sess := store.GetOrCreate(req.SessionID)
		reply, err := safeChat(agent, r, sess, req.Message)
		if err != nil {
			log.Printf("assistant: chat: %v", err)
			writeJSONError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{
			Response:  reply,
			Context:   sess.Context,
			SessionID: sess.ID,
		})
	}
}

// safeChat converts a panic in the pipeline into an error so a fault in
// one turn cannot take the server down. Session state is left as-is.
func safeChat(agent *Agent, r *http.Request, sess *Session, message string) (reply string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("chat processing failed: %v", rec)
		}
	}()
	return agent.Chat(r.Context(), sess, message), nil
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

func handleSessionReset(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.SessionID == "" {
			http.Error(w, `{"error":"session_id is required"}`, http.StatusBadRequest)
			return
		}

		store.Delete(req.SessionID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":     "reset",
			"session_id": req.SessionID,
		})
	}
}

func handleSessionContext(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Session ids are minted by the chat endpoint; an absent or
		// unknown id reads as an empty context, never a new session.
		sessionID := r.URL.Query().Get("session_id")

		var ctx any = struct{}{}
		if sess, ok := store.Get(sessionID); ok {
			ctx = sess.Context
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"context":    ctx,
			"session_id": sessionID,
		})
	}
}

func writeJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
