package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/joeyg6393/fincalcs/domain"
	"github.com/joeyg6393/fincalcs/repository"
)

// Outcome is the tagged result of one calculator run.
type Outcome struct {
	Calculator string          `json:"calculator"`
	Status     Status          `json:"status"`
	Result     json.RawMessage `json:"result,omitempty"`
	Reason     string          `json:"reason,omitempty"`
	Field      string          `json:"field,omitempty"`
}

// CalculatorService runs registered calculators with caching and history.
// The cache and the history repository are optional.
type CalculatorService struct {
	registry *Registry
	cache    repository.CacheRepository
	history  repository.HistoryRepository
	today    func() domain.Date
	now      func() time.Time
}

// NewCalculatorService creates a CalculatorService. Pass nil for cache or
// history to disable them.
func NewCalculatorService(registry *Registry,
	cache repository.CacheRepository,
	history repository.HistoryRepository,
) *CalculatorService {
	return &CalculatorService{
		registry: registry,
		cache:    cache,
		history:  history,
		today:    domain.Today,
		now:      time.Now,
	}
}

// WithToday overrides the date used for inputs that omit asOf.
func (s *CalculatorService) WithToday(today func() domain.Date) *CalculatorService {
	s.today = today
	return s
}

func (s *CalculatorService) Registry() *Registry {
	return s.registry
}

// Run decodes raw for calculator id, computes it and records the run. The
// returned error is non-nil only when the calculator is unknown; formula
// errors are reported through Outcome.Status.
func (s *CalculatorService) Run(ctx context.Context, id string, raw json.RawMessage) (Outcome, error) {
	calc, err := s.registry.Get(id)
	if err != nil {
		return Outcome{}, err
	}

	today := s.today()
	input := compactInput(raw)
	key := cacheKey(id, input, today)

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			var outcome Outcome
			if err := json.Unmarshal([]byte(cached), &outcome); err == nil {
				slog.Debug("calculator cache hit", "calculator", id)
				s.record(ctx, input, outcome)
				return outcome, nil
			}
			slog.Warn("discarding unreadable cache entry", "calculator", id)
		}
	}

	outcome := s.compute(calc, input, today)

	if s.cache != nil {
		if data, err := json.Marshal(outcome); err == nil {
			// Caching is best effort.
			if err := s.cache.Set(key, string(data)); err != nil {
				slog.Warn("failed to cache calculator outcome", "calculator", id, "error", err)
			}
		}
	}
	s.record(ctx, input, outcome)

	return outcome, nil
}

func (s *CalculatorService) compute(calc Calculator, input json.RawMessage, today domain.Date) Outcome {
	outcome := Outcome{Calculator: calc.ID}

	result, err := calc.Compute(input, today)
	outcome.Status = StatusOf(err)
	if err != nil {
		outcome.Reason = err.Error()
		var verr *ValidationError
		if errors.As(err, &verr) {
			outcome.Field = verr.Field
		}
	}
	if result == nil {
		return outcome
	}

	data, merr := json.Marshal(result)
	if merr != nil {
		outcome.Status = StatusDegenerate
		outcome.Reason = fmt.Sprintf("result could not be encoded: %v", merr)
		return outcome
	}
	outcome.Result = data
	return outcome
}

// History lists recorded runs, newest first.
func (s *CalculatorService) History(ctx context.Context, calculator string, limit int) ([]domain.HistoryRecord, error) {
	if s.history == nil {
		return []domain.HistoryRecord{}, nil
	}
	return s.history.List(ctx, calculator, limit)
}

// record appends the run to history. Failures are logged and ignored.
func (s *CalculatorService) record(ctx context.Context, input json.RawMessage, outcome Outcome) {
	if s.history == nil {
		return
	}
	rec := domain.HistoryRecord{
		ID:         uuid.NewString(),
		Calculator: outcome.Calculator,
		Input:      input,
		Result:     outcome.Result,
		Status:     string(outcome.Status),
		Reason:     outcome.Reason,
		CreatedAt:  s.now().UTC(),
	}
	if !json.Valid(rec.Input) {
		quoted, _ := json.Marshal(string(input))
		rec.Input = quoted
	}
	if err := s.history.Save(ctx, rec); err != nil {
		slog.Warn("failed to save calculator history", "calculator", outcome.Calculator, "error", err)
	}
}

// compactInput strips insignificant whitespace so equivalent requests share a
// cache entry. Malformed JSON is returned unchanged and fails in decoding.
func compactInput(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("{}")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return trimmed
	}
	return buf.Bytes()
}

// cacheKey hashes the input together with the as-of day, since calculators
// that default asOf produce different results on different days.
func cacheKey(id string, input json.RawMessage, today domain.Date) string {
	d := xxhash.New()
	_, _ = d.Write(input)
	_, _ = d.WriteString("|" + today.String())
	return id + ":" + strconv.FormatUint(d.Sum64(), 16)
}
