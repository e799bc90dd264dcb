package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/joeyg6393/fincalcs/export"
	"github.com/joeyg6393/fincalcs/service"
)

type CalculatorHandler struct {
	service *service.CalculatorService
}

func NewCalculatorHandler(service *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{service: service}
}

// List handles GET /calculators.
func (h *CalculatorHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Status:  string(service.StatusOK),
		Data:    h.service.Registry().List(),
	})
}

// Calculate handles POST /calculators/{id}.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	outcome, ok := h.run(w, r, r.PathValue("id"))
	if !ok {
		return
	}
	writeJSON(w, statusCode(outcome.Status), outcomeEnvelope(outcome))
}

// Export handles POST /calculators/{id}/export and answers with an xlsx
// workbook. Failed runs get the usual JSON envelope.
func (h *CalculatorHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	outcome, ok := h.run(w, r, id)
	if !ok {
		return
	}
	if len(outcome.Result) == 0 {
		writeJSON(w, statusCode(outcome.Status), outcomeEnvelope(outcome))
		return
	}

	calc, err := h.service.Registry().Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, calc, outcome); err != nil {
		slog.Error("failed to render workbook", "calculator", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render workbook")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, id))
	w.Header().Set("X-Calculator-Status", string(outcome.Status))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write workbook", "calculator", id, "error", err)
	}
}

// History handles GET /history?calculator=&limit=.
func (h *CalculatorHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.service.History(r.Context(), q.Get("calculator"), limit)
	if err != nil {
		slog.Error("failed to list history", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list history")
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Status: string(service.StatusOK), Data: records})
}

// run reads the request body and runs calculator id. It writes the error
// response itself and returns false when there is no outcome to report.
func (h *CalculatorHandler) run(w http.ResponseWriter, r *http.Request, id string) (service.Outcome, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return service.Outcome{}, false
	}

	outcome, err := h.service.Run(r.Context(), id, json.RawMessage(body))
	if errors.Is(err, service.ErrUnknownCalculator) {
		writeError(w, http.StatusNotFound, err.Error())
		return service.Outcome{}, false
	}
	if err != nil {
		slog.Error("calculator run failed", "calculator", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return service.Outcome{}, false
	}
	return outcome, true
}
