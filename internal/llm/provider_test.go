package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: "first"},
		MockResponse{Content: "second"},
	)

	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "first" {
		t.Errorf("expected first response, got %q", resp.Content)
	}

	resp, _ = mock.Generate(context.Background(), Request{})
	if resp.Content != "second" {
		t.Errorf("expected second response, got %q", resp.Content)
	}

	// Queue exhausted.
	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected *ErrProviderUnavailable, got %T", err)
	}

	if mock.CallCount() != 3 {
		t.Errorf("expected 3 recorded calls, got %d", mock.CallCount())
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("expected mock model ID, got %q", p.ModelID())
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "does-not-exist"

	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"openrouter without key", func(c *Config) { c.Provider = "openrouter" }, true},
		{"openrouter with key", func(c *Config) {
			c.Provider = "openrouter"
			c.OpenRouter.APIKey = "sk-test"
		}, false},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"unknown provider", func(c *Config) { c.Provider = "bogus" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if got != 12.5 {
		t.Errorf("expected 12.5 USD, got %v", got)
	}

	if LookupCost("made-up-model") != nil {
		t.Error("expected nil for unknown model")
	}
}
