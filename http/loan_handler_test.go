package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeyg6393/fincalcs/domain"
	"github.com/joeyg6393/fincalcs/repository"
	"github.com/joeyg6393/fincalcs/service"
)

func newLoanHandler() *LoanHandler {
	svc := service.NewCalculatorService(service.NewRegistry(), repository.NewMemoryCache(), repository.NewHistoryRepositoryMemory())
	return NewLoanHandler(svc)
}

func TestCalculateLoanHandler_OK(t *testing.T) {
	handler := newLoanHandler()

	body := []byte(`{
		"amount": 10000,
		"interestRate": 12,
		"termMonths": 24
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.LoanResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 470.73, result.MonthlyPayment)
}

func TestCalculateLoanHandler_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/loan/calculate", nil)
	w := httptest.NewRecorder()

	newLoanHandler().CalculateLoan(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateLoanHandler_BadRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBuffer([]byte(`{invalid-json}`)))
	w := httptest.NewRecorder()

	newLoanHandler().CalculateLoan(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateLoanHandler_InvalidAmount(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/loan/calculate",
		bytes.NewBufferString(`{"amount":0,"interestRate":10,"termMonths":12}`))
	w := httptest.NewRecorder()

	newLoanHandler().CalculateLoan(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "amount")
}

func TestRecommendTermHandler(t *testing.T) {
	body := `{"amount":10000,"interestRate":12,"minTermMonths":12,"maxTermMonths":36,"maxMonthlyPayment":500,"preference":"balanced"}`

	req := httptest.NewRequest(http.MethodPost, "/loan/recommend-term", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	newLoanHandler().RecommendTerm(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/loan/recommend-term", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	newLoanHandler().RecommendTerm(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.TermRecommendationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Recommendations)
	assert.GreaterOrEqual(t, result.RecommendedTerm, 22)
}

func TestDebtExitPlanHandler(t *testing.T) {
	body := `{
		"debts": [
			{"name": "Card", "amount": 2000, "interestRate": 18, "minimumPayment": 50},
			{"name": "Car", "amount": 5000, "interestRate": 6, "minimumPayment": 150}
		],
		"availableMonthlyPayment": 500,
		"strategy": "snowball"
	}`
	req := httptest.NewRequest(http.MethodPost, "/loan/debt-exit-plan", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	newLoanHandler().CalculateDebtExitPlan(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.DebtExitResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.PayoffReached)
	require.Len(t, result.Payoffs, 2)
	assert.Equal(t, "Card", result.Payoffs[0].DebtName)
}
