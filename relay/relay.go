package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zjx20/benglish-gemini/config"
	"github.com/zjx20/benglish-gemini/gemini"
)

type ConversionRequest struct {
	Text         string `json:"text"`
	LanguagePair string `json:"languagePair"`
}

func (req *ConversionRequest) Validate() error {
	if strings.TrimSpace(req.Text) == "" || req.LanguagePair == "" {
		return InputError("Text and language pair are required")
	}
	return nil
}

// Bind implements render.Binder.
func (req *ConversionRequest) Bind(r *http.Request) error {
	return req.Validate()
}

type GrammarRequest struct {
	Text string `json:"text"`
}

func (req *GrammarRequest) Validate() error {
	if strings.TrimSpace(req.Text) == "" {
		return InputError("Text is required")
	}
	return nil
}

// Bind implements render.Binder.
func (req *GrammarRequest) Bind(r *http.Request) error {
	return req.Validate()
}

// Relay turns a request into one prompt and one outbound generation call.
// It holds no per-request state and is safe for concurrent use.
type Relay struct {
	Generator gemini.Generator
	// Config is read once per request so reloads apply to the next call.
	Config func() *config.Config
}

func New(gen gemini.Generator) *Relay {
	return &Relay{
		Generator: gen,
		Config:    config.ReadConfig,
	}
}

func (rl *Relay) Convert(ctx context.Context, req *ConversionRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	cfg := rl.Config()
	if !KnownPair(req.LanguagePair) {
		log.Debugf("unknown language pair %q, falling back to %s", req.LanguagePair, DefaultPair)
	}
	return rl.call(ctx, "convert-script", cfg, gemini.GenerateTextConfig{
		APIKey:          cfg.APIKey,
		ModelName:       cfg.ConvertModel,
		Prompt:          ConversionPrompt(req.LanguagePair, req.Text),
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.ConvertMaxTokens,
	}, log.Fields{"languagePair": req.LanguagePair, "textLen": len(req.Text)})
}

func (rl *Relay) CheckGrammar(ctx context.Context, req *GrammarRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	cfg := rl.Config()
	return rl.call(ctx, "grammar-check", cfg, gemini.GenerateTextConfig{
		APIKey:          cfg.APIKey,
		ModelName:       cfg.GrammarModel,
		Prompt:          GrammarPrompt(req.Text),
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.GrammarMaxTokens,
	}, log.Fields{"textLen": len(req.Text)})
}

func (rl *Relay) call(ctx context.Context, op string, cfg *config.Config, gc gemini.GenerateTextConfig, fields log.Fields) (string, error) {
	entry := log.WithFields(fields).WithField("op", op)
	if cfg.APIKey == "" {
		entry.Error("GEMINI_API_KEY environment variable not found")
		return "", &Error{Kind: KindConfiguration, Msg: "GEMINI_API_KEY not configured"}
	}

	entry = entry.WithField("model", gc.ModelName)
	entry.Debug("relaying request")
	text, err := rl.Generator.GenerateText(ctx, gc)
	if err != nil {
		if errors.Is(err, gemini.ErrEmptyResult) {
			entry.Errorf("no text in response: %s", err)
			return "", &Error{Kind: KindEmptyResult, Msg: "No response from API", Err: err}
		}
		entry.Errorf("gemini err: %T %q", err, err.Error())
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			return "", &Error{Kind: KindUpstream, Msg: fmt.Sprintf("API Error: %s", apiErr.Error()), Err: err}
		}
		return "", &Error{Kind: KindUpstream, Msg: "API Error: request failed", Err: err}
	}
	if text == "" {
		return "", &Error{Kind: KindEmptyResult, Msg: "No response from API"}
	}
	entry.Debugf("relayed %d bytes", len(text))
	return text, nil
}
