package report

import (
	"github.com/propforma/propforma/internal/derive"
	"github.com/propforma/propforma/internal/domain"
)

// prepareAffordability builds the affordability report payload. PITI is
// always recomputed from its components; DTI follows the trust-or-recompute
// policy; the qualification verdict is supplied by the caller and passed
// through untouched.
func prepareAffordability(r rawInput) domain.ReportPayload {
	in := derive.AffordabilityInputs{
		HomePrice:            r.dec("homePrice", "price", "purchasePrice"),
		DownPaymentPercent:   r.dec("downPaymentPercent", "downPaymentPct"),
		DownPaymentAmount:    r.dec("downPayment", "downPaymentAmount"),
		PrincipalAndInterest: r.dec("principalAndInterest", "principalInterest", "monthlyPI"),
		AnnualPropertyTax:    r.dec("annualPropertyTax", "propertyTaxes", "annualTaxes"),
		MonthlyInsurance:     r.dec("monthlyInsurance", "insurance"),
		MonthlyPMI:           r.dec("monthlyPMI", "pmi"),
		MonthlyHOA:           r.dec("monthlyHOA", "hoaFees", "hoa"),
		OtherMonthlyDebt:     r.dec("otherMonthlyDebt", "monthlyDebts", "otherDebt"),
		GrossMonthlyIncome:   r.dec("grossMonthlyIncome", "monthlyIncome"),
	}
	m := derive.Affordability(in)
	dti := r.metric(m.DTI, "dti")
	qualified := r.flag("qualified", "isQualified")

	qualifiedLabel := "Needs Review"
	if qualified {
		qualifiedLabel = "Likely Qualified"
	}

	return domain.ReportPayload{
		"purchase": map[string]any{
			"homePrice":          currency(in.HomePrice),
			"downPayment":        currency(m.DownPayment),
			"downPaymentPercent": percent(r.dec("downPaymentPercent", "downPaymentPct")),
			"loanAmount":         currency(m.LoanAmount),
			"hasDownPayment":     m.DownPayment.IsPositive(),
		},
		"payment": map[string]any{
			"principalAndInterest": currency(in.PrincipalAndInterest),
			"monthlyTax":           currency(m.MonthlyPropertyTax),
			"insurance":            currency(in.MonthlyInsurance),
			"pmi":                  currency(in.MonthlyPMI),
			"hoa":                  currency(in.MonthlyHOA),
			"piti":                 currency(m.PITI),
			"hasPMI":               in.MonthlyPMI.IsPositive(),
			"hasHOAFees":           in.MonthlyHOA.IsPositive(),
		},
		"income": map[string]any{
			"grossMonthlyIncome": currency(in.GrossMonthlyIncome),
			"otherMonthlyDebt":   currency(in.OtherMonthlyDebt),
			"totalMonthlyDebt":   currency(m.TotalMonthlyDebt),
			"hasOtherDebt":       in.OtherMonthlyDebt.IsPositive(),
		},
		"metrics": map[string]any{
			"dti":            percent(dti),
			"qualified":      qualified,
			"qualifiedLabel": qualifiedLabel,
		},
	}
}
