package services

import (
	"context"

	"gitscribe/internal/llm/client"
)

// MessageGenerator submits one assembled prompt to the generation service.
type MessageGenerator interface {
	Generate(ctx context.Context, apiKey, model, prompt string) (string, error)
}

// geminiGenerator builds a fresh client per call. Runs are single-shot
// and user-initiated, so there is no connection state worth keeping.
type geminiGenerator struct{}

func NewGeminiGenerator() MessageGenerator {
	return &geminiGenerator{}
}

func (geminiGenerator) Generate(ctx context.Context, apiKey, model, prompt string) (string, error) {
	c, err := client.NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		return "", err
	}
	return c.GenerateCommitMessage(ctx, prompt)
}
