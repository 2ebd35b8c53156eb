package handler

import (
	"net/http"
	"time"

	"github.com/plumeworks/plume/internal/model"
)

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// NotFound is the fallback for routes no pattern matches
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, model.NewNotFoundError("resource"))
}
