package convert

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/zjx20/benglish-gemini/relay"
)

type Response struct {
	ConvertedText string `json:"convertedText"`
}

func Handler(rl *relay.Relay) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &relay.ConversionRequest{}
		if err := render.Bind(r, req); err != nil {
			relay.WriteError(w, r, err)
			return
		}
		text, err := rl.Convert(r.Context(), req)
		if err != nil {
			relay.WriteError(w, r, err)
			return
		}
		render.JSON(w, r, &Response{ConvertedText: text})
	}
}
