package llm

import "testing"

func TestBuildGeminiContents_Roles(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "question"},
			{Role: RoleAssistant, Content: "answer"},
		},
	}

	contents := buildGeminiContents(req)
	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" {
		t.Errorf("expected user role, got %q", contents[0].Role)
	}
	if contents[1].Role != "model" {
		t.Errorf("expected model role, got %q", contents[1].Role)
	}
}

func TestBuildGeminiContents_MediaAttached(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "extract the question"},
		},
		Media: []Media{
			{MimeType: "image/jpeg", Data: []byte{0xff, 0xd8}},
		},
	}

	contents := buildGeminiContents(req)
	if len(contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(contents))
	}
	parts := contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("expected text + image parts, got %d", len(parts))
	}
	if parts[0].Text != "extract the question" {
		t.Errorf("unexpected text part: %q", parts[0].Text)
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MIMEType != "image/jpeg" {
		t.Errorf("expected inline image/jpeg data, got %+v", parts[1])
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
