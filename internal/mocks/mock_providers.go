package mocks

import (
	"context"

	"github.com/ashutosh-sx/Emergo/domain"
)

// MockChatProvider implements domain.ChatProvider interface for testing
type MockChatProvider struct {
	GenerateReplyFunc func(ctx context.Context, prompt string) (string, error)
}

// NewMockChatProvider creates a new MockChatProvider with default behaviors
func NewMockChatProvider() *MockChatProvider {
	return &MockChatProvider{}
}

// GenerateReply produces a model reply for a prompt
func (m *MockChatProvider) GenerateReply(ctx context.Context, prompt string) (string, error) {
	if m.GenerateReplyFunc != nil {
		return m.GenerateReplyFunc(ctx, prompt)
	}
	// Default behavior: canned triage reply
	return "Please consult a doctor. I am an AI assistant, not a medical professional.", nil
}

// MockDirectionsProvider implements domain.DirectionsProvider interface for testing
type MockDirectionsProvider struct {
	GetDirectionsFunc func(ctx context.Context, origin, destination string) (*domain.Route, error)
}

// NewMockDirectionsProvider creates a new MockDirectionsProvider with default behaviors
func NewMockDirectionsProvider() *MockDirectionsProvider {
	return &MockDirectionsProvider{}
}

// GetDirections returns a route between two points
func (m *MockDirectionsProvider) GetDirections(ctx context.Context, origin, destination string) (*domain.Route, error) {
	if m.GetDirectionsFunc != nil {
		return m.GetDirectionsFunc(ctx, origin, destination)
	}
	// Default behavior: short fixed route
	return &domain.Route{Distance: "12 km", Duration: "15m0s"}, nil
}

// Compile-time interface compliance verification
var (
	_ domain.ChatProvider       = (*MockChatProvider)(nil)
	_ domain.DirectionsProvider = (*MockDirectionsProvider)(nil)
)
