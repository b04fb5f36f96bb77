package gemini

import (
	"context"
	"errors"
	"fmt"
)

const DefaultModel = "gemini-1.5-flash"

// ErrEmptyResult is returned when the service answered successfully but the
// first candidate carries no text.
var ErrEmptyResult = errors.New("no text in the first candidate")

// APIError is a non-success reply from the generation service.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "Unknown error"
	}
	if e.Status != "" {
		return fmt.Sprintf("status %d (%s): %s", e.StatusCode, e.Status, msg)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, msg)
}

type GenerateTextConfig struct {
	APIKey          string
	ModelName       string // empty for DefaultModel
	Prompt          string
	Temperature     float32
	MaxOutputTokens int32
}

func (c *GenerateTextConfig) model() string {
	if c.ModelName == "" {
		return DefaultModel
	}
	return c.ModelName
}

// Generator performs exactly one generation call per GenerateText.
type Generator interface {
	GenerateText(ctx context.Context, cfg GenerateTextConfig) (string, error)
}
