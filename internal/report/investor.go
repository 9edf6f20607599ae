package report

import (
	"github.com/propforma/propforma/internal/derive"
	"github.com/propforma/propforma/internal/domain"
)

// prepareInvestor builds the investor/deal analysis payload. Cap rate,
// cash-on-cash and DSCR follow the trust-or-recompute policy so figures the
// front-end calculator already showed the user are reproduced exactly.
func prepareInvestor(r rawInput) domain.ReportPayload {
	in := derive.InvestorInputs{
		PurchasePrice:      r.dec("purchasePrice", "price"),
		DownPayment:        r.dec("downPayment", "downPaymentAmount"),
		ClosingCosts:       r.dec("closingCosts"),
		MonthlyRent:        r.dec("monthlyRent", "rent"),
		OtherMonthlyIncome: r.dec("otherMonthlyIncome", "otherIncome"),
		MortgagePayment:    r.dec("mortgagePayment", "monthlyPayment", "monthlyPI"),
		AnnualPropertyTax:  r.dec("propertyTaxes", "annualPropertyTax", "annualTaxes"),
		AnnualInsurance:    r.dec("insurance", "annualInsurance"),
		AnnualMaintenance:  r.dec("maintenance", "annualMaintenance"),
		AnnualVacancy:      r.dec("vacancy", "annualVacancy"),
		AnnualManagement:   r.dec("management", "annualManagement", "propertyManagement"),
	}
	m := derive.Investor(in)

	capRate := r.metric(m.CapRate, "capRate")
	cashOnCash := r.metric(m.CashOnCash, "cashOnCash", "cashOnCashReturn")
	dscr := r.metric(m.DSCR, "dscr")

	return domain.ReportPayload{
		"purchase": map[string]any{
			"purchasePrice": currency(in.PurchasePrice),
			"downPayment":   currency(in.DownPayment),
			"closingCosts":  currency(m.ClosingCosts),
			"cashInvested":  currency(m.CashInvested),
		},
		"income": map[string]any{
			"monthlyRent":    currency(in.MonthlyRent),
			"otherIncome":    currency(in.OtherMonthlyIncome),
			"totalMonthly":   currency(m.MonthlyIncome),
			"hasOtherIncome": in.OtherMonthlyIncome.IsPositive(),
		},
		"expenses": map[string]any{
			"propertyTax":    currency(in.AnnualPropertyTax),
			"insurance":      currency(in.AnnualInsurance),
			"maintenance":    currency(in.AnnualMaintenance),
			"vacancy":        currency(in.AnnualVacancy),
			"management":     currency(in.AnnualManagement),
			"totalMonthly":   currency(m.MonthlyExpenses),
			"hasMaintenance": in.AnnualMaintenance.IsPositive(),
			"hasVacancy":     in.AnnualVacancy.IsPositive(),
			"hasManagement":  in.AnnualManagement.IsPositive(),
		},
		"cashflow": map[string]any{
			"monthlyNOI":      currency(m.MonthlyNOI),
			"annualNOI":       currency(m.AnnualNOI),
			"mortgagePayment": currency(in.MortgagePayment),
			"monthly":         currency(m.MonthlyCashFlow),
			"annual":          currency(m.AnnualCashFlow),
			"isPositive":      m.MonthlyCashFlow.IsPositive(),
		},
		"metrics": map[string]any{
			"capRate":        percent(capRate),
			"cashOnCash":     percent(cashOnCash),
			"dscr":           dscr.StringFixed(2),
			"onePercentRule": percent(m.OnePercentRule),
			"hasDSCR":        dscr.IsPositive(),
		},
	}
}
