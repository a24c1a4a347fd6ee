package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/domain"
)

// triagePrompt constrains the model to health-triage advice. The disclaimer
// requirement is part of the prompt contract, not post-processing.
const triagePrompt = `You are a helpful and empathetic medical assistant for an ambulance booking platform called Emergo.
Your goal is to help users by asking about their symptoms and suggesting possible illnesses or advice.

- If the user provides symptoms, suggest possible causes but ALWAYS include a disclaimer that you are an AI and they should consult a doctor.
- If the symptoms seem clear (e.g., chest pain, difficulty breathing), advise them to book an ambulance immediately or call emergency services.
- Keep your responses concise and easy to read.
- Do not answer questions unrelated to health or the platform.

User: %s
Assistant:`

// ChatServiceImpl implements domain.ChatService
type ChatServiceImpl struct {
	provider domain.ChatProvider
	log      zerolog.Logger
}

// NewChatService creates a new symptom-triage chat service
func NewChatService(provider domain.ChatProvider, log zerolog.Logger) domain.ChatService {
	return &ChatServiceImpl{
		provider: provider,
		log:      log.With().Str("component", "chat").Logger(),
	}
}

// Ask implements domain.ChatService
func (s *ChatServiceImpl) Ask(ctx context.Context, message string) (string, error) {
	reply, err := s.provider.GenerateReply(ctx, fmt.Sprintf(triagePrompt, message))
	if err != nil {
		s.log.Error().Err(err).Msg("chat upstream failure")
		return "", err
	}
	return reply, nil
}
