package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeyg6393/fincalcs/domain"
)

func TestRegistry_ComputeLoan(t *testing.T) {
	calc, err := NewRegistry().Get("loan")
	require.NoError(t, err)

	result, err := calc.Compute(json.RawMessage(`{"amount":1200,"interestRate":0,"termMonths":12}`), testAsOf)
	require.NoError(t, err)
	assert.Equal(t, domain.LoanResult{MonthlyPayment: 100, TotalPayment: 1200, TotalInterest: 0}, result)
}

func TestRegistry_UnknownCalculator(t *testing.T) {
	_, err := NewRegistry().Get("overtime-pay")
	assert.ErrorIs(t, err, ErrUnknownCalculator)
}

func TestRegistry_DecodeErrors(t *testing.T) {
	calc, err := NewRegistry().Get("loan")
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{"malformed", `{amount:`},
		{"unknown field", `{"amount":1000,"interestRate":5,"termMonths":12,"monto":1}`},
		{"trailing data", `{"amount":1000,"interestRate":5,"termMonths":12} {}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Compute(json.RawMessage(tt.raw), testAsOf)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "input", verr.Field)
		})
	}
}

func TestRegistry_TypeErrorsNameTheField(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name   string
		id     string
		raw    string
		field  string
		reason string
	}{
		{"string for number", "loan", `{"amount":"lots","interestRate":5,"termMonths":12}`, "amount", "must be a number, got string"},
		{"fractional years", "compound-interest", `{"principal":1000,"annualRate":5,"years":2.5}`, "years", "must be a whole number, got number 2.5"},
		{"nested field", "rental-roi", `{"purchasePrice":1,"monthlyExpenses":{"tax":"x"}}`, "monthlyExpenses.tax", "must be a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := registry.Get(tt.id)
			require.NoError(t, err)

			_, err = calc.Compute(json.RawMessage(tt.raw), testAsOf)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Contains(t, verr.Reason, tt.reason)
		})
	}
}

func TestRegistry_EmptyInputIsValidated(t *testing.T) {
	calc, err := NewRegistry().Get("loan")
	require.NoError(t, err)

	_, err = calc.Compute(nil, testAsOf)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
}

func TestRegistry_FillsAsOf(t *testing.T) {
	calc, err := NewRegistry().Get("credit-card")
	require.NoError(t, err)

	result, err := calc.Compute(json.RawMessage(`{"balance":5000,"interestRate":18,"monthlyPayment":150,"additionalPayment":50}`), testAsOf)
	require.NoError(t, err)
	payoff, ok := result.(domain.PayoffResult)
	require.True(t, ok)
	assert.Equal(t, "2026-09-15", payoff.PayoffDate.String())

	explicit, err := calc.Compute(json.RawMessage(`{"balance":5000,"interestRate":18,"monthlyPayment":150,"additionalPayment":50,"asOf":"2025-01-15"}`), testAsOf)
	require.NoError(t, err)
	assert.Equal(t, "2027-09-15", explicit.(domain.PayoffResult).PayoffDate.String())
}

func TestRegistry_NotConvergedKeepsPartialResult(t *testing.T) {
	calc, err := NewRegistry().Get("loan-payoff")
	require.NoError(t, err)

	result, err := calc.Compute(json.RawMessage(`{"loanAmount":10000,"interestRate":24,"monthlyPayment":100}`), testAsOf)
	assert.ErrorIs(t, err, ErrNotConverged)
	require.NotNil(t, result)
	assert.False(t, result.(domain.PayoffResult).PayoffReached)
}

func TestRegistry_List(t *testing.T) {
	list := NewRegistry().List()

	ids := make(map[string]bool, len(list))
	for i, c := range list {
		assert.NotEmpty(t, c.Title, c.ID)
		assert.NotEmpty(t, c.Category, c.ID)
		ids[c.ID] = true
		if i > 0 {
			prev := list[i-1]
			assert.True(t, prev.Category < c.Category || (prev.Category == c.Category && prev.ID < c.ID))
		}
	}

	for _, id := range []string{
		"mortgage", "black-scholes", "debt-avalanche", "savings", "savings-goal",
		"cap-rate", "interest-only", "landlord-expenses", "term-recommendation", "debt-exit-plan",
	} {
		assert.True(t, ids[id], id)
	}
	assert.Len(t, list, 56)
}
