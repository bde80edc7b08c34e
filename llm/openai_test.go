package llm

import (
	"reflect"
	"testing"

	ai "github.com/sashabaranov/go-openai"

	"github.com/nishanttomar21/openai-chatbot-assistant/messages"
)

// TestResultToModeration verifies provider categories map onto the explicit
// key set
func TestResultToModeration(t *testing.T) {
	result := resultToModeration(ai.Result{
		Flagged: true,
		Categories: ai.ResultCategories{
			Hate:     true,
			Violence: true,
		},
	})

	if !result.Flagged {
		t.Error("Flagged verdict should carry over")
	}
	if !result.Categories[CategoryHate] || !result.Categories[CategoryViolence] {
		t.Error("Flagged categories should carry over")
	}
	if result.Categories[CategorySexual] {
		t.Error("Unflagged categories should remain false")
	}
	if len(result.Categories) != 11 {
		t.Errorf("Expected all 11 known categories present, got %d", len(result.Categories))
	}
}

// TestFlaggedCategoriesSorted verifies names come back sorted
func TestFlaggedCategoriesSorted(t *testing.T) {
	result := &ModerationResult{
		Flagged: true,
		Categories: map[string]bool{
			CategoryViolence:   true,
			CategoryHate:       true,
			CategoryHarassment: true,
			CategorySexual:     false,
		},
	}

	got := result.FlaggedCategories()
	want := []string{CategoryHarassment, CategoryHate, CategoryViolence}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestFlaggedCategoriesEmpty verifies a clean result yields no names
func TestFlaggedCategoriesEmpty(t *testing.T) {
	result := &ModerationResult{Categories: map[string]bool{CategoryHate: false}}

	if got := result.FlaggedCategories(); len(got) != 0 {
		t.Errorf("Expected no flagged categories, got %v", got)
	}
}

// TestMessagesToOpenAI verifies role and content conversion
func TestMessagesToOpenAI(t *testing.T) {
	msgs := []messages.ChatMessage{
		{Role: messages.MessageRoleSystem, Content: "be helpful"},
		{Role: messages.MessageRoleUser, Content: "Hello"},
		{Role: messages.MessageRoleAssistant, Content: "Hi there!"},
	}

	converted := MessagesToOpenAI(msgs)
	if len(converted) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(converted))
	}
	for i, msg := range msgs {
		if converted[i].Role != msg.Role {
			t.Errorf("Message %d: expected role %s, got %s", i, msg.Role, converted[i].Role)
		}
		if converted[i].Content != msg.Content {
			t.Errorf("Message %d: expected content %q, got %q", i, msg.Content, converted[i].Content)
		}
	}
}
