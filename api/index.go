package api

import (
	"net/http"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/zjx20/benglish-gemini/config"
	"github.com/zjx20/benglish-gemini/relay"
	"github.com/zjx20/benglish-gemini/server"
	"github.com/zjx20/benglish-gemini/util"
)

var (
	once    sync.Once
	handler http.Handler
	initErr error
)

func setup() {
	if initErr = config.Init(""); initErr != nil {
		return
	}
	log.SetLevel(config.GetLogLevel())
	gen, err := server.NewGenerator(config.ReadConfig())
	if err != nil {
		initErr = err
		return
	}
	handler = server.NewRouter(relay.New(gen))
}

// Handler is the serverless entry point, serving the same routes as the
// standalone server.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if initErr != nil {
		log.Errorf("init failed: %s", initErr)
		util.WriteError(w, r, http.StatusInternalServerError, initErr.Error())
		return
	}
	handler.ServeHTTP(w, r)
}
