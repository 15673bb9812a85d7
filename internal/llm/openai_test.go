package llm

import (
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestBuildOpenAIMessages_TextOnly(t *testing.T) {
	req := Request{
		System: "be terse",
		Messages: []Message{
			{Role: RoleUser, Content: "hello"},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != "be terse" {
		t.Errorf("unexpected system message: %+v", msgs[0])
	}
	if msgs[1].Role != openai.ChatMessageRoleUser || msgs[1].Content != "hello" {
		t.Errorf("unexpected user message: %+v", msgs[1])
	}
}

func TestBuildOpenAIMessages_MediaOnLastUserMessage(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "describe this"},
		},
		Media: []Media{
			{MimeType: "image/png", Data: []byte{0x89, 0x50}},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	parts := msgs[0].MultiContent
	if len(parts) != 2 {
		t.Fatalf("expected text + image parts, got %d", len(parts))
	}
	if parts[0].Type != openai.ChatMessagePartTypeText || parts[0].Text != "describe this" {
		t.Errorf("unexpected text part: %+v", parts[0])
	}
	if parts[1].Type != openai.ChatMessagePartTypeImageURL {
		t.Fatalf("expected image part, got %+v", parts[1])
	}
	if !strings.HasPrefix(parts[1].ImageURL.URL, "data:image/png;base64,") {
		t.Errorf("unexpected data URL: %q", parts[1].ImageURL.URL)
	}
}

func TestBuildOpenAIMessages_AssistantTurnKept(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "refine this question"},
			{Role: RoleAssistant, Content: `{"id":"q1"}`},
			{Role: RoleUser, Content: "make it harder"},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[1].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("expected assistant role, got %q", msgs[1].Role)
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
