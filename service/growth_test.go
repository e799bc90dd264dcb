package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeyg6393/fincalcs/domain"
)

func TestCalculateSimpleInterest(t *testing.T) {
	result, err := CalculateSimpleInterest(domain.SimpleInterestInput{Principal: 10000, Rate: 5, Time: 3})
	require.NoError(t, err)

	assert.Equal(t, 1500.00, result.Interest)
	assert.Equal(t, 11500.00, result.FinalAmount)
	assert.Equal(t, 1.37, result.DailyInterest)
}

func TestCalculateRule72(t *testing.T) {
	result, err := CalculateRule72(domain.Rule72Input{InterestRate: 6, InitialAmount: 1000})
	require.NoError(t, err)

	assert.Equal(t, 12.0, result.YearsToDouble)
	assert.Equal(t, 2000.0, result.DoubledAmount)
	assert.Equal(t, 6.0, result.EffectiveRate)
}

func TestCalculateRule72_ZeroRate(t *testing.T) {
	_, err := CalculateRule72(domain.Rule72Input{InterestRate: 0, InitialAmount: 1000})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateCompoundInterest(t *testing.T) {
	result, err := CalculateCompoundInterest(domain.CompoundInterestInput{
		Principal: 10000, AnnualRate: 5, Years: 10, CompoundingFrequency: domain.Monthly, MonthlyContribution: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 31998.0, result.FinalAmount)
	assert.Equal(t, 22000.0, result.TotalContributions)
	assert.Equal(t, 9998.0, result.TotalInterest)
	require.Len(t, result.YearlyBreakdown, 10)
	assert.Equal(t, 1200.0, result.YearlyBreakdown[0].Contributions)
	assert.Equal(t, result.FinalAmount, result.YearlyBreakdown[9].Balance)
}

func TestCalculateCompoundInterest_AnnualWithoutContributions(t *testing.T) {
	result, err := CalculateCompoundInterest(domain.CompoundInterestInput{
		Principal: 1000, AnnualRate: 10, Years: 2, CompoundingFrequency: domain.Annually,
	})
	require.NoError(t, err)

	assert.Equal(t, 1210.0, result.FinalAmount)
	assert.Equal(t, 210.0, result.TotalInterest)
}

func TestCalculateCompoundInterest_UnknownFrequency(t *testing.T) {
	_, err := CalculateCompoundInterest(domain.CompoundInterestInput{
		Principal: 1000, AnnualRate: 10, Years: 2, CompoundingFrequency: "hourly",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateFutureValue(t *testing.T) {
	tests := []struct {
		name        string
		input       domain.FutureValueInput
		value       float64
		contributed float64
	}{
		{
			name: "monthly payments, monthly compounding",
			input: domain.FutureValueInput{PresentValue: 1000, Rate: 6, Years: 10, Payments: 100,
				PaymentFrequency: domain.Monthly, CompoundingFrequency: domain.Monthly},
			value: 18207, contributed: 13000,
		},
		{
			name: "monthly payments, daily compounding",
			input: domain.FutureValueInput{PresentValue: 1000, Rate: 6, Years: 10, Payments: 100,
				PaymentFrequency: domain.Monthly, CompoundingFrequency: domain.Daily},
			value: 18304, contributed: 13000,
		},
		{
			name: "annual payment, monthly compounding",
			input: domain.FutureValueInput{Rate: 5, Years: 1, Payments: 1000,
				PaymentFrequency: domain.Annually, CompoundingFrequency: domain.Monthly},
			value: 1047, contributed: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateFutureValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.value, result.FutureValue)
			assert.Equal(t, tt.contributed, result.TotalContributions)
			assert.InDelta(t, result.FutureValue-result.TotalContributions, result.TotalInterest, 1)
		})
	}
}

func TestCalculateInvestmentGrowth_RealTrailsNominal(t *testing.T) {
	result, err := CalculateInvestmentGrowth(domain.InvestmentGrowthInput{
		InitialAmount: 10000, MonthlyContribution: 500, Years: 20,
		ExpectedReturn: 7, InflationRate: 3, TaxRate: 15,
	})
	require.NoError(t, err)

	assert.Greater(t, result.NominalValue, result.RealValue)
	assert.Equal(t, 130000.0, result.TotalContributions)
	assert.Positive(t, result.TotalTaxes)
	require.Len(t, result.YearlyBreakdown, 20)
}

func TestCalculateInvestment(t *testing.T) {
	result, err := CalculateInvestment(domain.InvestmentInput{
		InitialInvestment: 1000, MonthlyContribution: 100, AnnualReturn: 6, TimeHorizon: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 2301.0, result.FinalBalance)
	assert.Equal(t, 2200.0, result.TotalContributions)
	assert.Equal(t, 101.0, result.TotalEarnings)
	assert.Len(t, result.MonthlyProjections, 12)
}

func TestCalculateRetirement(t *testing.T) {
	result, err := CalculateRetirement(domain.RetirementInput{
		Salary: 60000, Contribution: 6, EmployerMatch: 50, MatchLimit: 6,
		CurrentAge: 30, RetirementAge: 60, CurrentBalance: 10000, AnnualReturn: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, 300.0, result.MonthlyContribution)
	assert.Equal(t, 108000.0, result.TotalContributions)
	assert.Equal(t, 54000.0, result.EmployerContributions)
	assert.InDelta(t, 633354, result.ProjectedBalance, 1)
}

func TestCalculateRetirement_RetirementAgeBeforeCurrentAge(t *testing.T) {
	_, err := CalculateRetirement(domain.RetirementInput{Salary: 60000, CurrentAge: 65, RetirementAge: 60})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateSavingsGoal(t *testing.T) {
	result, err := CalculateSavingsGoal(domain.SavingsGoalInput{
		TargetAmount: 10000, Timeframe: 5, InitialSavings: 2000, InterestRate: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 109.0, result.MonthlyRequired)
	assert.Equal(t, 6558.0, result.TotalContributions)
	assert.Equal(t, 1442.0, result.TotalInterest)
	assert.Equal(t, 10000.0, result.FinalBalance)
}

func TestCalculateSavingsGoal_ZeroRateIsLinear(t *testing.T) {
	result, err := CalculateSavingsGoal(domain.SavingsGoalInput{TargetAmount: 12000, Timeframe: 1})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, result.MonthlyRequired)
	assert.Equal(t, 0.0, result.TotalInterest)
}

func TestCalculateSavingsGoal_AlreadyFunded(t *testing.T) {
	result, err := CalculateSavingsGoal(domain.SavingsGoalInput{
		TargetAmount: 1000, Timeframe: 2, InitialSavings: 5000, InterestRate: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.MonthlyRequired)
	assert.Greater(t, result.FinalBalance, 5000.0)
}

func TestCalculateCollegeSavings(t *testing.T) {
	result, err := CalculateCollegeSavings(domain.CollegeSavingsInput{
		ChildAge: 8, CollegeStartAge: 18, YearsInCollege: 4, AnnualCost: 20000,
		CurrentSavings: 10000, ExpectedReturn: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, 80000.0, result.TotalCost)
	assert.Equal(t, 377.0, result.MonthlyContribution)
	assert.Equal(t, 77561.0, result.ProjectedSavings)
	assert.Equal(t, 2439.0, result.Shortfall)
}

func TestCalculateCollegeSavings_ChildAlreadyInCollege(t *testing.T) {
	_, err := CalculateCollegeSavings(domain.CollegeSavingsInput{ChildAge: 18, CollegeStartAge: 18, YearsInCollege: 4})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateEmergencyFund(t *testing.T) {
	result, err := CalculateEmergencyFund(domain.EmergencyFundInput{MonthlyExpenses: 3000, DesiredMonths: 6, CurrentSavings: 6000})
	require.NoError(t, err)

	assert.Equal(t, 18000.0, result.TargetAmount)
	assert.Equal(t, 12000.0, result.AdditionalNeeded)
	assert.Equal(t, 1000.0, result.MonthlyContribution)
	assert.Equal(t, 12, result.TimeToReach)
}

func TestCalculateEmergencyFund_AlreadyFunded(t *testing.T) {
	result, err := CalculateEmergencyFund(domain.EmergencyFundInput{MonthlyExpenses: 1000, DesiredMonths: 3, CurrentSavings: 5000})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.AdditionalNeeded)
	assert.Equal(t, 0, result.TimeToReach)
}

func TestCalculateRainyDay(t *testing.T) {
	result, err := CalculateRainyDay(domain.RainyDayInput{
		MonthlyIncome: 5000, TargetPercentage: 20, CurrentSavings: 1000, Timeframe: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 6000.0, result.TargetAmount)
	assert.Equal(t, 417.0, result.MonthlyContribution)
	assert.Equal(t, 16.7, result.ProgressPercentage)
	assert.Equal(t, 1, result.TimeToReach)
}
