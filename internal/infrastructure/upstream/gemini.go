package upstream

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ashutosh-sx/Emergo/domain"
)

// geminiModel has higher quota than the pro models and is available on the
// free tier.
const geminiModel = "gemini-2.5-flash"

// GeminiProvider implements domain.ChatProvider against Google's
// generative-language API.
type GeminiProvider struct {
	apiKey string
}

// NewGeminiProvider creates a Gemini-backed chat provider. The key may be
// empty; GenerateReply then fails with ErrChatUnavailable so the handler can
// surface a configuration error instead of a crash.
func NewGeminiProvider(apiKey string) domain.ChatProvider {
	return &GeminiProvider{apiKey: apiKey}
}

// GenerateReply implements domain.ChatProvider
func (g *GeminiProvider) GenerateReply(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", domain.ErrChatUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", domain.ErrUpstream)
	}

	var reply string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			reply += string(text)
		}
	}
	if reply == "" {
		return "", fmt.Errorf("%w: no text in response", domain.ErrUpstream)
	}
	return reply, nil
}
