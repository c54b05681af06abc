package chat

// Turn roles as they arrive from the client payload.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is a single entry in the conversation history. Order of the slice is
// conversation order; turns are never mutated after decoding.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
