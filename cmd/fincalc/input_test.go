package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeyg6393/fincalcs/domain"
	"github.com/joeyg6393/fincalcs/service"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadInput_YAML(t *testing.T) {
	path := writeFile(t, "mortgage.yaml", `
loanAmount: 300000
downPayment: 60000
interestRate: 4.5
loanTerm: 30
`)

	raw, err := readInput(path, []string{"interestRate=5"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"loanAmount":300000,"downPayment":60000,"interestRate":5,"loanTerm":30}`, string(raw))
}

func TestReadInput_JSONWithNestedSet(t *testing.T) {
	path := writeFile(t, "landlord.json", `{"monthlyRent":2000,"mortgage":{"payment":1100}}`)

	raw, err := readInput(path, []string{"mortgage.enabled=true", "expenses.insurance=1200", "destination=Lisbon"})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"monthlyRent": 2000,
		"mortgage": {"payment": 1100, "enabled": true},
		"expenses": {"insurance": 1200},
		"destination": "Lisbon"
	}`, string(raw))
}

func TestReadInput_SetsOnly(t *testing.T) {
	raw, err := readInput("", []string{"interestRate=8"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"interestRate":8}`, string(raw))
}

func TestReadInput_Errors(t *testing.T) {
	_, err := readInput("", []string{"novalue"})
	assert.Error(t, err)

	_, err = readInput("", []string{"a=1", "a.b=2"})
	assert.Error(t, err)

	_, err = readInput(writeFile(t, "bad.json", `{"a":`), nil)
	assert.Error(t, err)

	_, err = readInput(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestReadInput_RunsThroughRegistry(t *testing.T) {
	raw, err := readInput(writeFile(t, "rule.yml", "interestRate: 8\ninitialAmount: 1000\n"), nil)
	require.NoError(t, err)

	calc, err := service.NewRegistry().Get("rule-72")
	require.NoError(t, err)
	result, err := calc.Compute(raw, domain.Today())
	require.NoError(t, err)
	assert.Equal(t, 9.0, result.(domain.Rule72Result).YearsToDouble)
}

func TestPrintOutcome_JSON(t *testing.T) {
	var buf bytes.Buffer
	outcome := service.Outcome{Calculator: "rule-72", Status: service.StatusOK, Result: json.RawMessage(`{"yearsToDouble":9}`)}

	require.NoError(t, printOutcome(&buf, outcome, true))
	assert.JSONEq(t, `{"calculator":"rule-72","status":"ok","result":{"yearsToDouble":9}}`, buf.String())
}

func TestOutcomeErr(t *testing.T) {
	assert.NoError(t, outcomeErr(service.Outcome{Status: service.StatusOK}))
	assert.Error(t, outcomeErr(service.Outcome{Status: service.StatusDegenerate, Reason: "flat"}))
}
