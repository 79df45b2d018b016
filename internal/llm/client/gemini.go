package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Sentinel errors for the two API failures that get a dedicated
// user-facing message. Everything else surfaces as a generic API error
// carrying the raw diagnostic.
var (
	ErrAuthInvalid   = errors.New("the configured Gemini API key is not valid")
	ErrQuotaExceeded = errors.New("the Gemini API quota has been exceeded")
)

// BlockedError reports a generation stopped by the service's safety layer.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("generation blocked by the safety filter: %s", e.Reason)
}

// GeminiClient is a single-shot text generation client. No retries, no
// streaming, no conversation state.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client bound to one model identifier.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("api key is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("model is required")
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{client: c, model: model}, nil
}

// safetySettings applies the fixed moderation policy: every harm category
// is blocked at medium-and-above sensitivity. Not user-configurable.
func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return settings
}

// GenerateCommitMessage submits the assembled prompt and returns the
// model's plain text. Failures are reclassified with ClassifyAPIError;
// responses without usable candidate content become a BlockedError.
func (g *GeminiClient) GenerateCommitMessage(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SafetySettings: safetySettings(),
	})
	if err != nil {
		return "", ClassifyAPIError(err)
	}

	text := candidateText(resp)
	if text == "" {
		return "", &BlockedError{Reason: blockReason(resp)}
	}
	return strings.TrimSpace(text), nil
}

// candidateText extracts the plain text of the first candidate, if any.
func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// blockReason extracts whatever block metadata the service attached.
func blockReason(resp *genai.GenerateContentResponse) string {
	if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return string(resp.PromptFeedback.BlockReason)
	}
	return "no candidate content"
}

// ClassifyAPIError maps known substrings of the service's error text to
// the dedicated failure kinds. This is inherently brittle against upstream
// message changes, which is why it is the only place that inspects error
// text; swap it for structured error codes when the SDK exposes them.
func ClassifyAPIError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key not valid"):
		return fmt.Errorf("%w: %s", ErrAuthInvalid, msg)
	case strings.Contains(strings.ToLower(msg), "quota"):
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, msg)
	default:
		return fmt.Errorf("gemini api error: %w", err)
	}
}
