package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/domain"
	"github.com/ashutosh-sx/Emergo/internal/mocks"
)

func TestChatServiceImpl_Ask(t *testing.T) {
	provider := mocks.NewMockChatProvider()
	var seenPrompt string
	provider.GenerateReplyFunc = func(ctx context.Context, prompt string) (string, error) {
		seenPrompt = prompt
		return "That could be a migraine. I am an AI, please consult a doctor.", nil
	}

	svc := NewChatService(provider, zerolog.Nop())
	reply, err := svc.Ask(context.Background(), "I have a bad headache")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply == "" {
		t.Error("expected a reply")
	}

	// The system prompt wraps the user message and pins the assistant role.
	if !strings.Contains(seenPrompt, "I have a bad headache") {
		t.Error("prompt does not carry the user message")
	}
	if !strings.Contains(seenPrompt, "Emergo") {
		t.Error("prompt does not pin the platform persona")
	}
	if !strings.Contains(seenPrompt, "disclaimer") {
		t.Error("prompt does not require the disclaimer")
	}
	if !strings.Contains(seenPrompt, "unrelated to health") {
		t.Error("prompt does not restrict off-topic questions")
	}
}

func TestChatServiceImpl_UpstreamFailure(t *testing.T) {
	provider := mocks.NewMockChatProvider()
	provider.GenerateReplyFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", domain.ErrUpstream
	}

	svc := NewChatService(provider, zerolog.Nop())
	_, err := svc.Ask(context.Background(), "hello")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestChatServiceImpl_MissingKey(t *testing.T) {
	provider := mocks.NewMockChatProvider()
	provider.GenerateReplyFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", domain.ErrChatUnavailable
	}

	svc := NewChatService(provider, zerolog.Nop())
	_, err := svc.Ask(context.Background(), "hello")
	if !errors.Is(err, domain.ErrChatUnavailable) {
		t.Fatalf("expected ErrChatUnavailable, got %v", err)
	}
}
