package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// SDKGenerator goes through the official Go SDK instead of raw HTTP.
type SDKGenerator struct {
	Options []option.ClientOption
}

func (g *SDKGenerator) GenerateText(ctx context.Context, cfg GenerateTextConfig) (string, error) {
	opts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, g.Options...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(cfg.model())
	model.SetTemperature(cfg.Temperature)
	model.SetMaxOutputTokens(cfg.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(cfg.Prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", fmt.Errorf("%w: %s", ErrEmptyResult, blocked)
		}
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return "", &APIError{StatusCode: gerr.Code, Message: gerr.Message}
		}
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	text := firstText(resp)
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c.Content == nil || len(c.Content.Parts) == 0 {
		return ""
	}
	if t, ok := c.Content.Parts[0].(genai.Text); ok {
		return string(t)
	}
	return ""
}
