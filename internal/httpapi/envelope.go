package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"soundcrate/internal/app"
)

// envelope is the uniform response wrapper. Success mirrors the status
// class; errors carry no internal detail beyond the message and optional
// errorType payload.
type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Success bool   `json:"success"`
}

func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusNoContent {
		// net/http suppresses 204 bodies; don't fight it.
		return
	}
	_ = json.NewEncoder(w).Encode(envelope{
		Status:  status,
		Message: message,
		Data:    data,
		Success: status >= 200 && status < 400,
	})
}

// writeError is the single conversion point from errors to the envelope.
// Unexpected errors render as a generic 500 and are logged with request
// context; taxonomy errors render their own status and message.
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	if apiErr, ok := app.AsError(err); ok {
		var data any
		if apiErr.Tag != "" {
			data = map[string]string{"errorType": apiErr.Tag}
		}
		writeEnvelope(w, apiErr.Status, apiErr.Message, data)
		return
	}

	logger.Error().Err(err).Msg("request failed")
	writeEnvelope(w, http.StatusInternalServerError, "Internal Server Error", nil)
}
