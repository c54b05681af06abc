// Package ws provides the websocket chat transport. Conversation history
// lives on the connection and is discarded when it closes.
package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lifecoach/backend/internal/model/chat"
	"github.com/lifecoach/backend/internal/model/profile"
	coachservice "github.com/lifecoach/backend/internal/service/coach"
)

// Handler upgrades chat connections and runs the per-connection read loop.
type Handler struct {
	coachSvc *coachservice.Service
	upgrader websocket.Upgrader
}

// New creates the websocket handler.
func New(coachSvc *coachservice.Service) *Handler {
	return &Handler{
		coachSvc: coachSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the websocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ConfigMessage sets or updates the connection's coaching context.
type ConfigMessage struct {
	Mode    string           `json:"mode"`
	UserID  string           `json:"userId,omitempty"`
	Profile *profile.Profile `json:"profile,omitempty"`
}

// TextMessage carries one user utterance.
type TextMessage struct {
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

type connectionState struct {
	connID  string
	mode    string
	userID  string
	profile *profile.Profile
	history []chat.Turn
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	state := &connectionState{
		connID: uuid.NewString(),
		mode:   "general",
	}
	log.Printf("[ws] connection opened conn=%s", state.connID)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error conn=%s: %v", state.connID, err)
			}
			log.Printf("[ws] connection closed conn=%s", state.connID)
			return
		}

		switch inbound.Type {
		case "config":
			h.handleConfig(conn, state, inbound.Data)
		case "message":
			h.handleMessage(r.Context(), conn, state, inbound.Data)
		default:
			writeEnvelope(conn, "error", map[string]string{"error": "unknown message type: " + inbound.Type})
		}
	}
}

func (h *Handler) handleConfig(conn *websocket.Conn, state *connectionState, data json.RawMessage) {
	var cfg ConfigMessage
	if err := json.Unmarshal(data, &cfg); err != nil {
		writeEnvelope(conn, "error", map[string]string{"error": "invalid config payload"})
		return
	}

	if cfg.Mode != "" {
		state.mode = cfg.Mode
	}
	if cfg.UserID != "" {
		state.userID = cfg.UserID
	}
	if cfg.Profile != nil {
		state.profile = cfg.Profile
	}

	writeEnvelope(conn, "configured", map[string]string{"mode": state.mode})
}

func (h *Handler) handleMessage(ctx context.Context, conn *websocket.Conn, state *connectionState, data json.RawMessage) {
	var msg TextMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.Text == "" {
		writeEnvelope(conn, "error", map[string]string{"error": "invalid message payload"})
		return
	}

	state.history = append(state.history, chat.Turn{Role: chat.RoleUser, Content: msg.Text})

	req := chat.Request{
		Messages: state.history,
		Mode:     state.mode,
		UserID:   state.userID,
		Profile:  state.profile,
	}

	response := h.coachSvc.Respond(ctx, req)
	state.history = append(state.history, chat.Turn{Role: chat.RoleAssistant, Content: response})

	writeEnvelope(conn, "response", map[string]string{"response": response})
}

func writeEnvelope(conn *websocket.Conn, msgType string, data interface{}) {
	envelope := outgoingMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := conn.WriteJSON(envelope); err != nil {
		log.Printf("[ws] write failed: %v", err)
	}
}
