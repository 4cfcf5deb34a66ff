package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/helloapi/pkg/domain/model"
)

// handleHealth answers the liveness probe. It has no dependencies and
// always reports up.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(model.NewHealthStatus())
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		ctxlog.From(r.Context()).Warn("Failed to write health response", "error", err)
	}
}
