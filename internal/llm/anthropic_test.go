package llm

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
)

func TestBuildAnthropicMessages_TextOnly(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "hello"},
			{Role: RoleAssistant, Content: "hi"},
		},
	}

	msgs := buildAnthropicMessages(req)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != anthropic.MessageParamRoleUser {
		t.Errorf("expected user role, got %q", msgs[0].Role)
	}
	if msgs[1].Role != anthropic.MessageParamRoleAssistant {
		t.Errorf("expected assistant role, got %q", msgs[1].Role)
	}
	if len(msgs[0].Content) != 1 {
		t.Errorf("expected a single text block, got %d", len(msgs[0].Content))
	}
}

func TestBuildAnthropicMessages_MediaBlocks(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "what does this show"},
		},
		Media: []Media{
			{MimeType: "image/png", Data: []byte{1, 2, 3}},
		},
	}

	msgs := buildAnthropicMessages(req)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if len(msgs[0].Content) != 2 {
		t.Fatalf("expected text + image blocks, got %d", len(msgs[0].Content))
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("claude-sonnet", anthropicModels); got != "claude-sonnet-4-20250514" {
		t.Errorf("unexpected mapping: %q", got)
	}
	// Unmapped names pass through so direct model IDs work.
	if got := resolveModel("claude-exotic-preview", anthropicModels); got != "claude-exotic-preview" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestNewAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
