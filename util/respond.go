package util

import (
	"net/http"

	m "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"

	"github.com/zjx20/benglish-gemini/config"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError answers with {"error": msg} and the given status.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, &ErrorResponse{Error: msg})
}

// InternalError is the last-resort answer after a recovered panic.
func InternalError(w http.ResponseWriter, r *http.Request, rvr interface{}) {
	log.Errorln(rvr)
	if config.GetIsDebug() {
		m.PrintPrettyStack(rvr)
	}
	WriteError(w, r, http.StatusInternalServerError, "internal server error")
}

