package service

import (
	"math"

	"github.com/joeyg6393/fincalcs/domain"
)

// CalculateSalary converts an hourly rate into pay per period, assuming a
// five-day work week.
func CalculateSalary(input domain.SalaryInput) (domain.SalaryResult, error) {
	err := firstErr(
		requireNonNegative("hourlyRate", input.HourlyRate),
		requireNonNegative("hoursPerWeek", input.HoursPerWeek),
		requireNonNegative("weeksPerYear", input.WeeksPerYear),
	)
	if err != nil {
		return domain.SalaryResult{}, err
	}
	if input.HoursPerWeek > 168 {
		return domain.SalaryResult{}, invalid("hoursPerWeek", "a week has 168 hours")
	}
	if input.WeeksPerYear > 52 {
		return domain.SalaryResult{}, invalid("weeksPerYear", "must not exceed 52")
	}

	weekly := input.HourlyRate * input.HoursPerWeek
	annual := weekly * input.WeeksPerYear

	return domain.SalaryResult{
		AnnualSalary:   roundWhole(annual),
		MonthlySalary:  roundWhole(annual / MonthsPerYear),
		BiweeklySalary: roundWhole(weekly * 2),
		WeeklyPay:      roundWhole(weekly),
		DailyPay:       roundWhole(weekly / 5),
	}, nil
}

// CalculateSelfEmploymentTax estimates SE tax after mileage and home office
// deductions. Social security stops at the wage base.
func CalculateSelfEmploymentTax(input domain.SelfEmploymentInput) (domain.SelfEmploymentResult, error) {
	err := firstErr(
		requireNonNegative("netEarnings", input.NetEarnings),
		requireNonNegative("expenses", input.Expenses),
		requireNonNegative("otherIncome", input.OtherIncome),
		requireNonNegative("businessMiles", input.BusinessMiles),
		requireNonNegative("homeOfficePercent", input.HomeOfficePercent),
	)
	if err != nil {
		return domain.SelfEmploymentResult{}, err
	}
	if input.HomeOfficePercent > 100 {
		return domain.SelfEmploymentResult{}, invalid("homeOfficePercent", "must not exceed 100")
	}

	deductions := input.Expenses + input.BusinessMiles*MileageRate +
		input.NetEarnings*input.HomeOfficePercent/100
	taxable := math.Max(0, input.NetEarnings-deductions+input.OtherIncome)

	socialSecurity := math.Min(taxable, SocialSecurityWageBase) * SelfEmploymentSSRate
	medicare := taxable * SelfEmploymentMedicare
	seTax := socialSecurity + medicare

	return domain.SelfEmploymentResult{
		SelfEmploymentTax:     roundWhole(seTax),
		SocialSecurityTax:     roundWhole(socialSecurity),
		MedicareTax:           roundWhole(medicare),
		TaxableIncome:         roundWhole(taxable),
		EstimatedQuarterlyTax: roundWhole((seTax + taxable*EstimatedIncomeTaxRate) / 4),
		Deductions:            roundWhole(deductions),
	}, nil
}

// payrollTaxes returns the monthly social security and medicare amounts on
// an annual salary.
func payrollTaxes(annual float64) (socialSecurity, medicare float64) {
	socialSecurity = math.Min(annual, PayrollWageBase) * SocialSecurityRate / MonthsPerYear
	medicare = annual * MedicareRate / MonthsPerYear
	return socialSecurity, medicare
}

// CalculateNetIncome estimates monthly take-home pay with flat federal and
// state rates applied after the 401(k) contribution.
func CalculateNetIncome(input domain.NetIncomeInput) (domain.NetIncomeResult, error) {
	err := firstErr(
		requireNonNegative("grossIncome", input.GrossIncome),
		requireNonNegative("retirement401k", input.Retirement401k),
		requireNonNegative("healthInsurance", input.HealthInsurance),
		requireNonNegative("otherDeductions", input.OtherDeductions),
	)
	if err != nil {
		return domain.NetIncomeResult{}, err
	}
	if input.Retirement401k > 100 {
		return domain.NetIncomeResult{}, invalid("retirement401k", "must not exceed 100%%")
	}

	gross := input.GrossIncome / MonthsPerYear
	retirement := input.GrossIncome * input.Retirement401k / 100 / MonthsPerYear
	taxable := input.GrossIncome * (1 - input.Retirement401k/100)
	federal := taxable * FederalTaxRate / MonthsPerYear
	state := taxable * StateTaxRate / MonthsPerYear
	socialSecurity, medicare := payrollTaxes(input.GrossIncome)

	deductions := federal + state + socialSecurity + medicare + retirement +
		input.HealthInsurance + input.OtherDeductions

	return domain.NetIncomeResult{
		GrossPay:        roundWhole(gross),
		FederalTax:      roundWhole(federal),
		StateTax:        roundWhole(state),
		SocialSecurity:  roundWhole(socialSecurity),
		Medicare:        roundWhole(medicare),
		Retirement401k:  roundWhole(retirement),
		HealthInsurance: roundWhole(input.HealthInsurance),
		OtherDeductions: roundWhole(input.OtherDeductions),
		NetPay:          roundWhole(gross - deductions),
	}, nil
}

// CalculateTaxWithholding estimates monthly paycheck withholding. Each
// allowance removes AllowanceValue from the federal base; federal
// withholding never goes below zero.
func CalculateTaxWithholding(input domain.TaxWithholdingInput) (domain.TaxWithholdingResult, error) {
	err := firstErr(
		requireNonNegative("annualSalary", input.AnnualSalary),
		requireNonNegative("additionalWithholding", input.AdditionalWithholding),
	)
	if err != nil {
		return domain.TaxWithholdingResult{}, err
	}
	if input.Allowances < 0 {
		return domain.TaxWithholdingResult{}, invalid("allowances", "must not be negative")
	}

	federal := math.Max(0, input.AnnualSalary*FederalTaxRate-float64(input.Allowances)*AllowanceValue) / MonthsPerYear
	state := input.AnnualSalary * StateTaxRate / MonthsPerYear
	socialSecurity, medicare := payrollTaxes(input.AnnualSalary)
	total := federal + state + socialSecurity + medicare + input.AdditionalWithholding

	return domain.TaxWithholdingResult{
		FederalWithholding: roundWhole(federal),
		StateWithholding:   roundWhole(state),
		SocialSecurity:     roundWhole(socialSecurity),
		Medicare:           roundWhole(medicare),
		TotalWithholding:   roundWhole(total),
		NetPay:             roundWhole(input.AnnualSalary/MonthsPerYear - total),
	}, nil
}
