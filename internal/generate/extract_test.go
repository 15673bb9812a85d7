package generate

import "testing"

func TestExtractJSON_Bare(t *testing.T) {
	raw := `{"questions": []}`
	got, ok := ExtractJSON(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if string(got) != raw {
		t.Errorf("got %q, want %q", got, raw)
	}
}

func TestExtractJSON_FencedBlock(t *testing.T) {
	raw := "Here you go:\n```json\n{\"questions\": []}\n```\nLet me know if you need more."
	got, ok := ExtractJSON(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if string(got) != `{"questions": []}` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSON_FencedWithoutLanguage(t *testing.T) {
	raw := "```\n[1, 2, 3]\n```"
	got, ok := ExtractJSON(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if string(got) != "[1, 2, 3]" {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSON_ProseWrapped(t *testing.T) {
	raw := `Sure! The corrected object is {"a": 1, "b": [2, 3]} as requested.`
	got, ok := ExtractJSON(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if string(got) != `{"a": 1, "b": [2, 3]}` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"question_text": "What does { mean in set notation?"}`
	got, ok := ExtractJSON(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if string(got) != raw {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSON_EscapedQuotes(t *testing.T) {
	raw := `prefix {"text": "she said \"hello\" {loudly}"} suffix`
	got, ok := ExtractJSON(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if string(got) != `{"text": "she said \"hello\" {loudly}"}` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSON_NoJSON(t *testing.T) {
	for _, raw := range []string{"", "no json here", "{broken", "{]"} {
		if _, ok := ExtractJSON(raw); ok {
			t.Errorf("expected failure for %q", raw)
		}
	}
}

// Extracting from already-extracted output must be the identity.
func TestExtractJSON_Idempotent(t *testing.T) {
	raw := "The answer:\n```json\n{\"questions\": [{\"id\": \"q1\"}]}\n```"
	first, ok := ExtractJSON(raw)
	if !ok {
		t.Fatal("first extraction failed")
	}
	second, ok := ExtractJSON(string(first))
	if !ok {
		t.Fatal("second extraction failed")
	}
	if string(first) != string(second) {
		t.Errorf("extraction not idempotent: %q vs %q", first, second)
	}
}
