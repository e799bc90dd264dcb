package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/joeyg6393/fincalcs/service"
)

// LoanHandler serves the /loan/* routes. Each route is bound to
// one calculator and answers with the bare result object on success and a
// plain-text error otherwise.
type LoanHandler struct {
	service *service.CalculatorService
}

func NewLoanHandler(service *service.CalculatorService) *LoanHandler {
	return &LoanHandler{service: service}
}

// CalculateLoan handles POST /loan/calculate.
func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "loan", false)
}

func (h *LoanHandler) serve(w http.ResponseWriter, r *http.Request, id string, requireJSON bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if requireJSON && !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil || !json.Valid(body) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.service.Run(r.Context(), id, body)
	if errors.Is(err, service.ErrUnknownCalculator) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("calculator run failed", "calculator", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if outcome.Status != service.StatusOK {
		slog.Debug("calculator rejected input", "calculator", id, "status", outcome.Status, "reason", outcome.Reason)
		http.Error(w, outcome.Reason, statusCode(outcome.Status))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(outcome.Result); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}
