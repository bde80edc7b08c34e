package chat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nishanttomar21/openai-chatbot-assistant/llm"
	"github.com/nishanttomar21/openai-chatbot-assistant/messages"
	"github.com/nishanttomar21/openai-chatbot-assistant/sessions"
	"github.com/nishanttomar21/openai-chatbot-assistant/transcript"
)

// historyCutoff is the number of prior history entries (10 exchanges)
// included in each completion request.
const historyCutoff = 20

// errorReplyPrefix starts every synthesized reply produced when the
// completion call fails. Callers cannot distinguish such a reply from a
// genuine one except by its content.
const errorReplyPrefix = "Sorry, I encountered an error:"

// Assistant orchestrates one conversation: moderation screening, completion
// requests, in-memory history and transcript persistence. It owns its
// history, so multiple assistants could coexist in one process.
type Assistant struct {
	completer    llm.Completer
	moderator    llm.Moderator
	session      *sessions.Session
	transcript   *transcript.Writer
	systemPrompt string
	logger       *zap.SugaredLogger
}

// New creates an assistant with an empty history.
func New(completer llm.Completer, moderator llm.Moderator, systemPrompt string, tw *transcript.Writer, logger *zap.SugaredLogger) *Assistant {
	return &Assistant{
		completer:    completer,
		moderator:    moderator,
		session:      sessions.New(),
		transcript:   tw,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// Screen checks text against the moderation endpoint. Flagged content is
// rejected with a warning naming the categories. If the moderation call
// itself fails the content is allowed through unmoderated (fail-open):
// a moderation outage must not block the user.
func (a *Assistant) Screen(ctx context.Context, text string) bool {
	result, err := a.moderator.Moderate(ctx, text)
	if err != nil {
		a.logger.Errorf("Content moderation failed: %v", err)
		fmt.Println("Content moderation unavailable, proceeding without filtering...")
		return true
	}
	if result.Flagged {
		if flagged := result.FlaggedCategories(); len(flagged) > 0 {
			a.logger.Warnf("Content flagged for: %s", strings.Join(flagged, ", "))
		} else {
			a.logger.Warn("Content flagged by moderation, no categories reported")
		}
		return false
	}
	return true
}

// Respond sends the system prompt, recent history and the new user message
// to the completion endpoint and returns the reply text. It never returns
// an error: a remote failure is converted into an apology reply, which the
// loop displays and persists like any other assistant turn.
func (a *Assistant) Respond(ctx context.Context, userMessage string) string {
	reply, err := a.completer.Complete(ctx, a.buildMessages(userMessage))
	if err != nil {
		a.logger.Errorf("Error getting assistant response: %v", err)
		return fmt.Sprintf("%s %v", errorReplyPrefix, err)
	}
	return reply
}

// buildMessages assembles [system prompt] + last historyCutoff history
// entries + current user message. The message being asked about is never in
// history at this point; history is appended only after a reply arrives.
func (a *Assistant) buildMessages(userMessage string) []messages.ChatMessage {
	recent := a.session.Recent(historyCutoff)
	msgs := make([]messages.ChatMessage, 0, len(recent)+2)
	msgs = append(msgs, messages.ChatMessage{
		Role:    messages.MessageRoleSystem,
		Content: a.systemPrompt,
	})
	msgs = append(msgs, recent...)
	msgs = append(msgs, messages.ChatMessage{
		Role:    messages.MessageRoleUser,
		Content: userMessage,
	})
	return msgs
}

// Persist records the exchange in history (user first, then assistant) and
// appends one transcript block. A transcript write failure is logged and
// dropped; the exchange stays in memory either way.
func (a *Assistant) Persist(userMessage, reply string) {
	a.session.Append(messages.ChatMessage{
		Role:    messages.MessageRoleUser,
		Content: userMessage,
	})
	a.session.Append(messages.ChatMessage{
		Role:    messages.MessageRoleAssistant,
		Content: reply,
	})

	if err := a.transcript.Append(userMessage, reply); err != nil {
		a.logger.Errorf("Error saving conversation to transcript: %v", err)
	}
}

// Reset clears the in-memory history. The transcript file is untouched.
func (a *Assistant) Reset() {
	a.session.Clear()
}

// HistoryLen reports the number of stored history entries.
func (a *Assistant) HistoryLen() int {
	return a.session.Len()
}
