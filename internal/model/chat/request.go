package chat

import "github.com/lifecoach/backend/internal/model/profile"

// Request is the inbound chat payload. It is constructed fresh per HTTP call
// and has no lifecycle beyond the call. Profile is optional; when UserID is
// set the handler tries the profile store first and falls back to the inline
// profile.
type Request struct {
	Messages []Turn           `json:"messages"`
	Mode     string           `json:"mode"`
	UserID   string           `json:"userId,omitempty"`
	Profile  *profile.Profile `json:"userProfile,omitempty"`
}
