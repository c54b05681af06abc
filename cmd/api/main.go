package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lifecoach/backend/internal/analysis/gaps"
	"github.com/lifecoach/backend/internal/config"
	"github.com/lifecoach/backend/internal/handler"
	"github.com/lifecoach/backend/internal/model/profile"
	"github.com/lifecoach/backend/internal/service/coach"
	"github.com/lifecoach/backend/internal/service/llm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// The profile store is an external collaborator in production; the
	// in-memory implementation backs local development.
	profileStore := profile.NewMemoryStore(nil)

	var generator coach.Generator
	if cfg.LLM.Enabled() {
		generator = llm.NewClient(cfg.LLM)
		log.Printf("inference client initialized for model %s", cfg.LLM.Model)
	} else {
		log.Println("inference credentials not configured - chat requests will return the fallback response")
	}

	coachSvc := coach.NewService(generator, profileStore, gaps.ParsePolicy(cfg.Annotate.Policy))

	router := handler.NewRouter(coachSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Life Coach backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
