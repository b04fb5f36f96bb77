package relay

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/zjx20/benglish-gemini/util"
)

// WriteError maps a relay error to its status and client message.
// Anything else came from decoding the request body.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var rerr *Error
	if errors.As(err, &rerr) {
		util.WriteError(w, r, rerr.Status(), rerr.Msg)
		return
	}
	log.Debugf("bad request: %s", err)
	util.WriteError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
}
