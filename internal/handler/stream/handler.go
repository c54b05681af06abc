// Package stream delivers a coach response over Server-Sent Events. The
// inference call itself is single-shot; the stream carries status, the final
// annotated response, and a terminator.
package stream

import (
	"encoding/json"
	"net/http"

	"github.com/lifecoach/backend/internal/model/chat"
	"github.com/lifecoach/backend/internal/model/profile"
	coachservice "github.com/lifecoach/backend/internal/service/coach"
	"github.com/lifecoach/backend/pkg/utils"
)

// Handler serves the SSE chat variant.
type Handler struct {
	coachSvc *coachservice.Service
}

// New creates the stream handler.
func New(coachSvc *coachservice.Service) *Handler {
	return &Handler{coachSvc: coachSvc}
}

// HandleStream answers GET /api/chat/stream?mode=&message=&userId=&profile=.
// The optional profile query parameter carries a JSON-encoded user profile.
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	message := r.URL.Query().Get("message")
	mode := r.URL.Query().Get("mode")
	if message == "" || mode == "" {
		utils.RespondError(w, http.StatusBadRequest, "message and mode query parameters are required")
		return
	}

	var p *profile.Profile
	if raw := r.URL.Query().Get("profile"); raw != "" {
		var decoded profile.Profile
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid profile parameter")
			return
		}
		p = &decoded
	}

	req := chat.Request{
		Messages: []chat.Turn{{Role: chat.RoleUser, Content: message}},
		Mode:     mode,
		UserID:   r.URL.Query().Get("userId"),
		Profile:  p,
	}

	utils.SetupSSEHeaders(w)
	utils.SendSSEEvent(w, flusher, "status", map[string]string{"message": "generating"})

	response := h.coachSvc.Respond(r.Context(), req)

	utils.SendSSEEvent(w, flusher, "response", map[string]string{"response": response})
	utils.SendSSEEvent(w, flusher, "done", map[string]string{})
}
