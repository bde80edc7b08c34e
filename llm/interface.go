package llm

import (
	"context"

	"github.com/nishanttomar21/openai-chatbot-assistant/messages"
)

// Completer is the remote chat-completion collaborator. It accepts the full
// ordered message list and returns the first candidate's text.
type Completer interface {
	Complete(ctx context.Context, msgs []messages.ChatMessage) (string, error)
}

// Moderator is the remote content-moderation collaborator.
type Moderator interface {
	Moderate(ctx context.Context, text string) (*ModerationResult, error)
}
