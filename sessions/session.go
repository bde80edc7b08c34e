package sessions

import (
	"github.com/nishanttomar21/openai-chatbot-assistant/messages"
)

// Session owns the in-memory conversation history for one interactive
// session. The system prompt is never stored here; it is prepended when a
// completion request is built. History grows without bound until Clear.
//
// All access is strictly sequential within the interactive loop, so the
// session carries no locking.
type Session struct {
	history []messages.ChatMessage
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// Append adds a message to the end of the history.
func (s *Session) Append(msg messages.ChatMessage) {
	s.history = append(s.history, msg)
}

// History returns a defensive copy of the full history.
func (s *Session) History() []messages.ChatMessage {
	return CopyHistory(s.history)
}

// Recent returns a copy of the last n history entries, or the whole history
// if it holds fewer than n.
func (s *Session) Recent(n int) []messages.ChatMessage {
	if n >= len(s.history) {
		return CopyHistory(s.history)
	}
	return CopyHistory(s.history[len(s.history)-n:])
}

// Len reports the number of stored history entries.
func (s *Session) Len() int {
	return len(s.history)
}

// Clear empties the history. The transcript file is unaffected; it is
// cumulative and never truncated.
func (s *Session) Clear() {
	s.history = s.history[:0]
}
