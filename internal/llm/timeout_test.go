package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// slowProvider blocks until its context is done.
type slowProvider struct{}

func (s *slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *slowProvider) ModelID() string { return "slow" }

func TestTimeout_SlowCallMapped(t *testing.T) {
	p := WithTimeout(&slowProvider{}, 5*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var timeout *ErrTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("expected *ErrTimeout, got %T: %v", err, err)
	}
}

func TestTimeout_CallerCancelPassesThrough(t *testing.T) {
	p := WithTimeout(&slowProvider{}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var timeout *ErrTimeout
	if errors.As(err, &timeout) {
		t.Fatal("caller cancel must not be reported as a gateway timeout")
	}
}

func TestTimeout_DisabledWhenZero(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "ok"})
	p := WithTimeout(mock, 0)

	if p != Provider(mock) {
		t.Fatal("zero timeout should return the inner provider unchanged")
	}
}

func TestTimeout_FastCallUntouched(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "ok"})
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "ok" {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
}
