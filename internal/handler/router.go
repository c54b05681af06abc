package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chathandler "github.com/lifecoach/backend/internal/handler/chat"
	"github.com/lifecoach/backend/internal/handler/stream"
	"github.com/lifecoach/backend/internal/handler/ws"
	middlewarePkg "github.com/lifecoach/backend/internal/middleware"
	coachservice "github.com/lifecoach/backend/internal/service/coach"
	"github.com/lifecoach/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(coachSvc *coachservice.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chathandler.New(coachSvc)
	streamHandler := stream.New(coachSvc)
	wsHandler := ws.New(coachSvc)

	r.Route("/api", func(api chi.Router) {
		api.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)

		api.Get("/chat/stream", streamHandler.HandleStream)
	})

	return r
}
