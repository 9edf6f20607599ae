// Package derive computes the financial metrics behind each calculator
// report. Every function is a pure transform over normalized decimal inputs;
// division by a zero denominator yields a zero metric rather than an error,
// matching the engine-wide best-effort policy.
package derive

import "github.com/shopspring/decimal"

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// ratio returns num/den*100, or zero when den is zero.
func ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred)
}

// AffordabilityInputs are the normalized fields of an affordability check.
// DownPaymentPercent wins over DownPaymentAmount when both are supplied.
type AffordabilityInputs struct {
	HomePrice            decimal.Decimal
	DownPaymentPercent   decimal.Decimal
	DownPaymentAmount    decimal.Decimal
	PrincipalAndInterest decimal.Decimal
	AnnualPropertyTax    decimal.Decimal
	MonthlyInsurance     decimal.Decimal
	MonthlyPMI           decimal.Decimal
	MonthlyHOA           decimal.Decimal
	OtherMonthlyDebt     decimal.Decimal
	GrossMonthlyIncome   decimal.Decimal
}

// AffordabilityMetrics is the derived affordability picture. Qualification
// is decided by the caller, not here, so it is absent from this struct.
type AffordabilityMetrics struct {
	DownPayment        decimal.Decimal
	LoanAmount         decimal.Decimal
	MonthlyPropertyTax decimal.Decimal
	PITI               decimal.Decimal
	TotalMonthlyDebt   decimal.Decimal
	DTI                decimal.Decimal
}

// Affordability derives PITI and DTI from normalized inputs.
func Affordability(in AffordabilityInputs) AffordabilityMetrics {
	down := in.DownPaymentAmount
	if in.DownPaymentPercent.IsPositive() {
		down = in.HomePrice.Mul(in.DownPaymentPercent).Div(hundred)
	}

	monthlyTax := in.AnnualPropertyTax.Div(twelve)
	piti := in.PrincipalAndInterest.
		Add(monthlyTax).
		Add(in.MonthlyInsurance).
		Add(in.MonthlyPMI).
		Add(in.MonthlyHOA)
	totalDebt := piti.Add(in.OtherMonthlyDebt)

	return AffordabilityMetrics{
		DownPayment:        down,
		LoanAmount:         in.HomePrice.Sub(down),
		MonthlyPropertyTax: monthlyTax,
		PITI:               piti,
		TotalMonthlyDebt:   totalDebt,
		DTI:                ratio(totalDebt, in.GrossMonthlyIncome),
	}
}
