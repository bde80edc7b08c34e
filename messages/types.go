package messages

// ChatMessage represents a single entry in a conversation. Messages are
// value types and never mutated after creation.
type ChatMessage struct {
	Role    string
	Content string
}

// Standard role constants
const (
	MessageRoleSystem    = "system"
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)
