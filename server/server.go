package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"

	"github.com/zjx20/benglish-gemini/config"
	"github.com/zjx20/benglish-gemini/convert"
	"github.com/zjx20/benglish-gemini/gemini"
	"github.com/zjx20/benglish-gemini/grammar"
	"github.com/zjx20/benglish-gemini/relay"
	"github.com/zjx20/benglish-gemini/util"
	"github.com/zjx20/benglish-gemini/util/httpclient"
	"github.com/zjx20/benglish-gemini/util/middleware"
)

const shutdownTimeout = 10 * time.Second

// NewGenerator builds the generation backend selected by cfg. Backend,
// base url and ping interval are fixed at startup; the rest of the config
// is read per request.
func NewGenerator(cfg *config.Config) (gemini.Generator, error) {
	switch cfg.Backend {
	case config.BackendSDK:
		return &gemini.SDKGenerator{}, nil
	case config.BackendREST, "":
		client, err := httpclient.CustomPingInterval(cfg.PingInterval)
		if err != nil {
			return nil, err
		}
		return gemini.NewRESTGenerator(cfg.BaseURL, client), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func NewRouter(rl *relay.Relay) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		util.WriteError(w, r, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		util.WriteError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Post("/convert-script", convert.Handler(rl))
	r.Post("/grammar-check", grammar.Handler(rl))
	return r
}

// Serve runs until ctx is done, then shuts the server down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Infof("Server listening at %s", l.Addr())

	srv := &http.Server{Handler: h}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Infof("shutting down, reason: %s", ctx.Err())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
