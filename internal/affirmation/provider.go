// Package affirmation fetches the short supportive message shown after a
// mood check-in. A remote model supplies the text when configured; every
// failure resolves to a fixed local message for the mood.
package affirmation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/julianstephens/resurs/internal/constants"
	apperrors "github.com/julianstephens/resurs/internal/errors"
	"github.com/julianstephens/resurs/internal/models"
)

// Provider produces an affirmation for a mood. Implementations return
// errors.ErrAffirmationUnavailable when they cannot be used at all.
type Provider interface {
	Affirm(ctx context.Context, mood models.MoodType, userName string) (string, error)
}

// GenAIProvider asks a Gemini model for the affirmation.
type GenAIProvider struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

func NewGenAIProvider(apiKey, model string) *GenAIProvider {
	if model == "" {
		model = constants.DefaultAffirmationModel
	}
	return &GenAIProvider{
		apiKey: strings.TrimSpace(apiKey),
		model:  model,
	}
}

// Configured reports whether an API key is present.
func (p *GenAIProvider) Configured() bool {
	return p.apiKey != ""
}

func (p *GenAIProvider) getClient(ctx context.Context) (*genai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	p.client = client
	return client, nil
}

func (p *GenAIProvider) Affirm(ctx context.Context, mood models.MoodType, userName string) (string, error) {
	if !p.Configured() {
		return "", apperrors.ErrAffirmationUnavailable
	}

	client, err := p.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrAffirmationUnavailable, err)
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(Prompt(mood, userName)), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
