package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeyg6393/fincalcs/domain"
	"github.com/joeyg6393/fincalcs/repository"
)

type MockHistoryRepository struct {
	Saved      []domain.HistoryRecord
	ForceError bool
}

func (m *MockHistoryRepository) Save(_ context.Context, rec domain.HistoryRecord) error {
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, rec)
	return nil
}

func (m *MockHistoryRepository) List(_ context.Context, _ string, _ int) ([]domain.HistoryRecord, error) {
	return m.Saved, nil
}

type MockCache struct {
	Data       map[string]string
	Gets       int
	ForceError bool
}

func (m *MockCache) Get(key string) (string, bool) {
	m.Gets++
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value string) error {
	if m.ForceError {
		return errors.New("cache down")
	}
	m.Data[key] = value
	return nil
}

func newTestService(cache repository.CacheRepository, history repository.HistoryRepository) *CalculatorService {
	return NewCalculatorService(NewRegistry(), cache, history).
		WithToday(func() domain.Date { return testAsOf })
}

func TestCalculatorService_RunOK(t *testing.T) {
	history := &MockHistoryRepository{}
	svc := newTestService(nil, history)

	outcome, err := svc.Run(context.Background(), "loan", json.RawMessage(`{"amount":10000,"interestRate":12,"termMonths":24}`))
	require.NoError(t, err)

	assert.Equal(t, StatusOK, outcome.Status)
	assert.Empty(t, outcome.Reason)
	var result domain.LoanResult
	require.NoError(t, json.Unmarshal(outcome.Result, &result))
	assert.Equal(t, 470.73, result.MonthlyPayment)

	require.Len(t, history.Saved, 1)
	rec := history.Saved[0]
	assert.Equal(t, "loan", rec.Calculator)
	assert.Equal(t, "ok", rec.Status)
	assert.NotEmpty(t, rec.ID)
	assert.JSONEq(t, `{"amount":10000,"interestRate":12,"termMonths":24}`, string(rec.Input))
}

func TestCalculatorService_UnknownCalculator(t *testing.T) {
	history := &MockHistoryRepository{}
	svc := newTestService(nil, history)

	_, err := svc.Run(context.Background(), "overtime-pay", nil)
	assert.ErrorIs(t, err, ErrUnknownCalculator)
	assert.Empty(t, history.Saved)
}

func TestCalculatorService_Statuses(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		raw    string
		status Status
		field  string
	}{
		{"invalid amount", "loan", `{"amount":0,"interestRate":10,"termMonths":12}`, StatusInvalid, "amount"},
		{"malformed body", "loan", `{invalid-json}`, StatusInvalid, "input"},
		{"flat market", "beta", `{"stockReturns":[1,2,3],"marketReturns":[1,1,1]}`, StatusDegenerate, ""},
		{"payment below interest", "loan-payoff", `{"loanAmount":10000,"interestRate":24,"monthlyPayment":100}`, StatusNotConverged, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := newTestService(nil, nil).Run(context.Background(), tt.id, json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.status, outcome.Status)
			assert.NotEmpty(t, outcome.Reason)
			assert.Equal(t, tt.field, outcome.Field)
		})
	}
}

func TestCalculatorService_NotConvergedCarriesPartialResult(t *testing.T) {
	outcome, err := newTestService(nil, nil).Run(context.Background(), "loan-payoff",
		json.RawMessage(`{"loanAmount":10000,"interestRate":24,"monthlyPayment":100}`))
	require.NoError(t, err)

	var result domain.PayoffResult
	require.NoError(t, json.Unmarshal(outcome.Result, &result))
	assert.Equal(t, MaxPayoffMonths, result.MonthsToPayoff)
}

func TestCalculatorService_CacheHitSkipsCompute(t *testing.T) {
	cache := &MockCache{Data: map[string]string{}}
	history := &MockHistoryRepository{}
	svc := newTestService(cache, history)
	ctx := context.Background()

	first, err := svc.Run(ctx, "loan", json.RawMessage(`{"amount":1200,"interestRate":0,"termMonths":12}`))
	require.NoError(t, err)
	require.Len(t, cache.Data, 1)

	// Poison the cached entry: a hit must return it instead of recomputing.
	for k := range cache.Data {
		cache.Data[k] = `{"calculator":"loan","status":"ok","result":{"monthlyPayment":1}}`
	}

	second, err := svc.Run(ctx, "loan", json.RawMessage("{\n  \"amount\": 1200, \"interestRate\": 0, \"termMonths\": 12\n}"))
	require.NoError(t, err)
	assert.NotEqual(t, first.Result, second.Result)
	assert.JSONEq(t, `{"monthlyPayment":1}`, string(second.Result))
	assert.Len(t, history.Saved, 2)
}

func TestCalculatorService_CacheKeyDependsOnDate(t *testing.T) {
	input := json.RawMessage(`{"amount":1}`)
	assert.NotEqual(t,
		cacheKey("credit-card", input, testAsOf),
		cacheKey("credit-card", input, domain.Date{Time: testAsOf.AddDate(0, 0, 1)}))
	assert.NotEqual(t, cacheKey("loan", input, testAsOf), cacheKey("mortgage", input, testAsOf))
}

func TestCalculatorService_SideEffectFailuresAreIgnored(t *testing.T) {
	cache := &MockCache{Data: map[string]string{}, ForceError: true}
	history := &MockHistoryRepository{ForceError: true}
	svc := newTestService(cache, history)

	outcome, err := svc.Run(context.Background(), "loan", json.RawMessage(`{"amount":1200,"interestRate":0,"termMonths":12}`))
	require.NoError(t, err)
	assert.Equal(t, StatusOK, outcome.Status)
	assert.Empty(t, cache.Data)
}

func TestCalculatorService_HistoryWithMemoryRepository(t *testing.T) {
	svc := newTestService(repository.NewMemoryCache(), repository.NewHistoryRepositoryMemory())
	ctx := context.Background()

	_, err := svc.Run(ctx, "loan", json.RawMessage(`{"amount":1200,"interestRate":0,"termMonths":12}`))
	require.NoError(t, err)
	_, err = svc.Run(ctx, "rule-72", json.RawMessage(`{"interestRate":8}`))
	require.NoError(t, err)

	all, err := svc.History(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "rule-72", all[0].Calculator)

	loans, err := svc.History(ctx, "loan", 10)
	require.NoError(t, err)
	assert.Len(t, loans, 1)

	none, err := newTestService(nil, nil).History(ctx, "", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
