package http

import (
	"io"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/helloapi/pkg/domain/interfaces"
)

// handleGreeting returns a handler writing the use case's greeting as the
// whole response body
func handleGreeting(uc interfaces.GreetingUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := ctxlog.From(ctx)

		msg, err := uc.GetHello(ctx)
		if err != nil {
			logger.Error("Failed to get greeting", "error", err)
			writeError(ctx, w, goerr.Wrap(err, "failed to get greeting"), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := io.WriteString(w, msg); err != nil {
			logger.Warn("Failed to write greeting response", "error", err)
		}
	}
}
