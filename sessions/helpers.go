package sessions

import (
	"github.com/nishanttomar21/openai-chatbot-assistant/messages"
)

// CopyHistory creates a defensive copy of the history slice
func CopyHistory(history []messages.ChatMessage) []messages.ChatMessage {
	result := make([]messages.ChatMessage, len(history))
	copy(result, history)
	return result
}
