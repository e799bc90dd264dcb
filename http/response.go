package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/joeyg6393/fincalcs/service"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Envelope wraps every JSON response of the calculator API.
type Envelope struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

// statusCode maps a calculator status onto an HTTP status code.
func statusCode(status service.Status) int {
	switch status {
	case service.StatusOK:
		return http.StatusOK
	case service.StatusInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func outcomeEnvelope(outcome service.Outcome) Envelope {
	env := Envelope{
		Success: outcome.Status == service.StatusOK,
		Status:  string(outcome.Status),
		Error:   outcome.Reason,
		Field:   outcome.Field,
	}
	if len(outcome.Result) > 0 {
		env.Data = outcome.Result
	}
	return env
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, Envelope{Success: false, Error: msg})
}

// writeJSON encodes into a buffer first so a failed encode does not leave a
// half-written response.
func writeJSON(w http.ResponseWriter, code int, body any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}
