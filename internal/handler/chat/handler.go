// Package chat exposes the synchronous chat endpoint.
package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lifecoach/backend/internal/model/chat"
	coachservice "github.com/lifecoach/backend/internal/service/coach"
	"github.com/lifecoach/backend/pkg/utils"
)

// Handler serves the chat HTTP surface.
type Handler struct {
	coachSvc *coachservice.Service
}

// New creates the chat handler.
func New(coachSvc *coachservice.Service) *Handler {
	return &Handler{coachSvc: coachSvc}
}

// RegisterRoutes registers the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chat.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Messages) == 0 || req.Mode == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing required fields: messages or mode")
		return
	}

	response := h.coachSvc.Respond(r.Context(), req)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"response": response})
}
