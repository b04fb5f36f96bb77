package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// RESTGenerator talks to the v1beta generateContent endpoint over plain
// JSON/HTTP.
type RESTGenerator struct {
	BaseURL string
	Client  *http.Client
}

func NewRESTGenerator(baseURL string, client *http.Client) *RESTGenerator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &RESTGenerator{
		BaseURL: baseURL,
		Client:  client,
	}
}

func (g *RESTGenerator) endpoint(cfg *GenerateTextConfig) string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(g.BaseURL, "/"), url.PathEscape(cfg.model()), url.QueryEscape(cfg.APIKey))
}

func (g *RESTGenerator) GenerateText(ctx context.Context, cfg GenerateTextConfig) (string, error) {
	body, err := json.Marshal(&GenerateContentRequest{
		Contents: []*Content{
			{Parts: []*Part{{Text: cfg.Prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(&cfg), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		// the url carries the key, don't leak it through *url.Error
		if uerr, ok := err.(*url.Error); ok {
			err = uerr.Err
		}
		return "", fmt.Errorf("request %s: %w", cfg.model(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if err := json.Unmarshal(data, &eb); err == nil {
			apiErr.Message = eb.Error.Message
			apiErr.Status = eb.Error.Status
		}
		log.Debugf("gemini error response, status: %d, body: %s", resp.StatusCode, data)
		return "", apiErr
	}

	var gr GenerateContentResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	text := gr.FirstText()
	if text == "" {
		log.Debugf("no text in gemini response: %s", data)
		return "", ErrEmptyResult
	}
	return text, nil
}
