package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeyg6393/fincalcs/domain"
)

func TestCalculateSalary(t *testing.T) {
	result, err := CalculateSalary(domain.SalaryInput{HourlyRate: 25, HoursPerWeek: 40, WeeksPerYear: 50})

	require.NoError(t, err)
	assert.Equal(t, domain.SalaryResult{
		AnnualSalary:   50000,
		MonthlySalary:  4167,
		BiweeklySalary: 2000,
		WeeklyPay:      1000,
		DailyPay:       200,
	}, result)
}

func TestCalculateSalary_Invalid(t *testing.T) {
	_, err := CalculateSalary(domain.SalaryInput{HourlyRate: 25, HoursPerWeek: 200, WeeksPerYear: 50})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateSalary(domain.SalaryInput{HourlyRate: -1, HoursPerWeek: 40, WeeksPerYear: 50})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateSelfEmploymentTax(t *testing.T) {
	result, err := CalculateSelfEmploymentTax(domain.SelfEmploymentInput{
		NetEarnings:       80000,
		Expenses:          10000,
		OtherIncome:       5000,
		BusinessMiles:     2000,
		HomeOfficePercent: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, 19310.0, result.Deductions)
	assert.Equal(t, 65690.0, result.TaxableIncome)
	assert.Equal(t, 8146.0, result.SocialSecurityTax)
	assert.Equal(t, 1905.0, result.MedicareTax)
	assert.Equal(t, 10051.0, result.SelfEmploymentTax)
	assert.Equal(t, 4976.0, result.EstimatedQuarterlyTax)
}

func TestCalculateSelfEmploymentTax_WageBaseCap(t *testing.T) {
	result, err := CalculateSelfEmploymentTax(domain.SelfEmploymentInput{NetEarnings: 200000})

	require.NoError(t, err)
	assert.Equal(t, 19865.0, result.SocialSecurityTax)
	assert.Equal(t, 5800.0, result.MedicareTax)
}

func TestCalculateSelfEmploymentTax_DeductionsAboveEarnings(t *testing.T) {
	result, err := CalculateSelfEmploymentTax(domain.SelfEmploymentInput{NetEarnings: 10000, Expenses: 20000})

	require.NoError(t, err)
	assert.Zero(t, result.TaxableIncome)
	assert.Zero(t, result.SelfEmploymentTax)
}

func TestCalculateNetIncome(t *testing.T) {
	result, err := CalculateNetIncome(domain.NetIncomeInput{
		GrossIncome:     61200,
		Retirement401k:  5,
		HealthInsurance: 200,
		OtherDeductions: 50,
	})

	require.NoError(t, err)
	assert.Equal(t, 5100.0, result.GrossPay)
	assert.Equal(t, 1066.0, result.FederalTax)
	assert.Equal(t, 291.0, result.StateTax)
	assert.Equal(t, 316.0, result.SocialSecurity)
	assert.Equal(t, 74.0, result.Medicare)
	assert.Equal(t, 255.0, result.Retirement401k)
	assert.Equal(t, 200.0, result.HealthInsurance)
	assert.Equal(t, 2848.0, result.NetPay)
}

func TestCalculateNetIncome_SocialSecurityCapped(t *testing.T) {
	result, err := CalculateNetIncome(domain.NetIncomeInput{GrossIncome: 300000})

	require.NoError(t, err)
	assert.Equal(t, 760.0, result.SocialSecurity)
}

func TestCalculateTaxWithholding(t *testing.T) {
	result, err := CalculateTaxWithholding(domain.TaxWithholdingInput{
		AnnualSalary:          72000,
		Allowances:            2,
		AdditionalWithholding: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, 603.0, result.FederalWithholding)
	assert.Equal(t, 360.0, result.StateWithholding)
	assert.Equal(t, 372.0, result.SocialSecurity)
	assert.Equal(t, 87.0, result.Medicare)
	assert.Equal(t, 1522.0, result.TotalWithholding)
	assert.Equal(t, 4478.0, result.NetPay)
}

func TestCalculateTaxWithholding_AllowancesFloorAtZero(t *testing.T) {
	result, err := CalculateTaxWithholding(domain.TaxWithholdingInput{AnnualSalary: 20000, Allowances: 5})

	require.NoError(t, err)
	assert.Zero(t, result.FederalWithholding)

	_, err = CalculateTaxWithholding(domain.TaxWithholdingInput{AnnualSalary: 20000, Allowances: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
