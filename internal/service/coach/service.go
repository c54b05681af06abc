// Package coach turns a chat request into a display-ready coaching response:
// prompt construction, one inference call, then cleanup and gap annotation.
package coach

import (
	"context"
	"fmt"
	"log"

	"github.com/lifecoach/backend/internal/analysis/gaps"
	"github.com/lifecoach/backend/internal/analysis/textfmt"
	"github.com/lifecoach/backend/internal/model/chat"
	"github.com/lifecoach/backend/internal/model/coach"
	"github.com/lifecoach/backend/internal/model/profile"
)

// FallbackResponse is returned for any failure in generation or processing.
// The caller never sees a partial result or a distinct error message.
const FallbackResponse = "I'm sorry, I encountered an error while processing your request. Please try again later."

// Generator produces raw text for a prompt. Implemented by the llm client;
// tests substitute stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service encapsulates the chat pipeline.
type Service struct {
	generator Generator
	profiles  profile.Store
	policy    gaps.Policy
}

// NewService creates the coach service. generator may be nil when inference
// credentials are absent; requests then degrade to the fallback response.
func NewService(generator Generator, profiles profile.Store, policy gaps.Policy) *Service {
	return &Service{
		generator: generator,
		profiles:  profiles,
		policy:    policy,
	}
}

// Respond runs the full pipeline for one request and always returns a
// client-displayable string.
func (s *Service) Respond(ctx context.Context, req chat.Request) string {
	mode := coach.ParseMode(req.Mode)
	p := s.resolveProfile(ctx, req)

	text, err := s.generate(ctx, req.Messages, mode, p)
	if err != nil {
		log.Printf("[coach] generation failed: %v", err)
		return FallbackResponse
	}

	cleaned := textfmt.Cleanup(text)
	return gaps.Annotate(cleaned, mode, p, s.policy)
}

func (s *Service) generate(ctx context.Context, turns []chat.Turn, mode coach.Mode, p *profile.Profile) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("no inference backend configured")
	}

	prompt := BuildPrompt(turns, mode, p)
	return s.generator.Generate(ctx, prompt)
}

// resolveProfile prefers the stored profile for a known user and falls back
// to the inline one. Lookup failures are logged and swallowed; the pipeline
// proceeds without a profile rather than failing the request.
func (s *Service) resolveProfile(ctx context.Context, req chat.Request) *profile.Profile {
	if req.UserID == "" || s.profiles == nil {
		return req.Profile
	}

	stored, ok, err := s.profiles.FindByUserID(ctx, req.UserID)
	if err != nil {
		log.Printf("[coach] profile lookup failed for user=%s: %v", req.UserID, err)
		return req.Profile
	}
	if !ok {
		return req.Profile
	}
	return &stored
}
