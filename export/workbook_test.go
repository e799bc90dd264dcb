package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joeyg6393/fincalcs/service"
)

func TestWorkbook_SummaryAndSchedules(t *testing.T) {
	calc := service.Calculator{ID: "debt-exit-plan", Title: "Debt Exit Plan"}
	outcome := service.Outcome{
		Calculator: "debt-exit-plan",
		Status:     service.StatusOK,
		Result: json.RawMessage(`{
			"totalDebt": 1500,
			"payoffs": [{"name": "Card", "month": 3, "lender": "Visa"}, {"name": "Car", "month": 8, "lender": "Bank"}],
			"comparison": {"snowballInterest": 10, "avalancheInterest": 8},
			"tips": ["pay early", "avoid fees"],
			"monthlyPlan": [{"month": 1, "payment": 200}]
		}`),
	}

	f, err := Workbook(calc, outcome)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, ScheduleSheet, "monthlyPlan"}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Field", "Value"},
		{"Calculator", "Debt Exit Plan"},
		{"ID", "debt-exit-plan"},
		{"Status", "ok"},
		{"totalDebt", "1500"},
		{"comparison.snowballInterest", "10"},
		{"comparison.avalancheInterest", "8"},
		{"tips", "pay early; avoid fees"},
	}, summary)

	schedule, err := f.GetRows(ScheduleSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"name", "month", "lender"},
		{"Card", "3", "Visa"},
		{"Car", "8", "Bank"},
	}, schedule)
}

func TestWorkbook_DistinctSheetNames(t *testing.T) {
	outcome := service.Outcome{
		Calculator: "investment-growth",
		Status:     service.StatusOK,
		Result: json.RawMessage(`{
			"schedule": [{"year": 1}],
			"SCHEDULE": [{"year": 2}],
			"yearlyBreakdownForTheConservativeScenario": [{"year": 3}],
			"yearlyBreakdownForTheConservativeScenarioAlt": [{"year": 4}],
			"summary": [{"year": 5}],
			"a/b": [{"year": 6}]
		}`),
	}

	f, err := Workbook(service.Calculator{ID: "investment-growth"}, outcome)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		SummarySheet,
		ScheduleSheet,
		"SCHEDULE_2",
		"yearlyBreakdownForTheConservati",
		"yearlyBreakdownForTheConserva_2",
		"summary_2",
		"a_b",
	}, f.GetSheetList())

	for i, sheet := range f.GetSheetList()[1:] {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		require.Len(t, rows, 2, sheet)
		assert.Equal(t, fmt.Sprint(i+1), rows[1][0], sheet)
	}
}

func TestWorkbook_FailedOutcome(t *testing.T) {
	outcome := service.Outcome{
		Calculator: "loan",
		Status:     service.StatusInvalid,
		Reason:     "amount: must be greater than zero, got 0",
	}

	f, err := Workbook(service.Calculator{ID: "loan", Title: "Loan Calculator"}, outcome)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet}, f.GetSheetList())
	reason, err := f.GetCellValue(SummarySheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, outcome.Reason, reason)
}

func TestWrite_MortgageSchedule(t *testing.T) {
	svc := service.NewCalculatorService(service.NewRegistry(), nil, nil)
	outcome, err := svc.Run(context.Background(), "mortgage",
		json.RawMessage(`{"loanAmount":300000,"downPayment":60000,"interestRate":4.5,"loanTerm":30}`))
	require.NoError(t, err)
	require.Equal(t, service.StatusOK, outcome.Status)

	calc, err := svc.Registry().Get("mortgage")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, calc, outcome))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ScheduleSheet)
	require.NoError(t, err)
	require.Len(t, rows, 361)
	assert.Equal(t, []string{"month", "payment", "principal", "interest", "balance"}, rows[0])
	assert.Equal(t, "900", rows[1][3])

	payment, err := f.GetCellValue(SummarySheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "1216.04", payment)
}

func TestWorkbook_RejectsBrokenResult(t *testing.T) {
	_, err := Workbook(service.Calculator{}, service.Outcome{Status: service.StatusOK, Result: json.RawMessage(`{"a":`)})
	assert.Error(t, err)
}
