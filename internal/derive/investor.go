package derive

import "github.com/shopspring/decimal"

// defaultClosingCostRate applies when an investor deal omits closing costs:
// 3% of the purchase price.
var defaultClosingCostRate = decimal.NewFromFloat(0.03)

// InvestorInputs are the normalized fields of an investor/deal analysis.
// Operating expense components are annual dollar figures.
type InvestorInputs struct {
	PurchasePrice      decimal.Decimal
	DownPayment        decimal.Decimal
	ClosingCosts       decimal.Decimal
	MonthlyRent        decimal.Decimal
	OtherMonthlyIncome decimal.Decimal
	MortgagePayment    decimal.Decimal
	AnnualPropertyTax  decimal.Decimal
	AnnualInsurance    decimal.Decimal
	AnnualMaintenance  decimal.Decimal
	AnnualVacancy      decimal.Decimal
	AnnualManagement   decimal.Decimal
}

// InvestorMetrics are the derived deal figures.
type InvestorMetrics struct {
	MonthlyIncome     decimal.Decimal
	MonthlyExpenses   decimal.Decimal
	MonthlyNOI        decimal.Decimal
	AnnualNOI         decimal.Decimal
	MonthlyCashFlow   decimal.Decimal
	AnnualCashFlow    decimal.Decimal
	CashInvested      decimal.Decimal
	ClosingCosts      decimal.Decimal
	CapRate           decimal.Decimal
	CashOnCash        decimal.Decimal
	DSCR              decimal.Decimal
	OnePercentRule    decimal.Decimal
	AnnualDebtService decimal.Decimal
}

// Investor derives NOI, cash flow, cap rate, cash-on-cash, DSCR and the 1%
// rule from normalized deal inputs.
func Investor(in InvestorInputs) InvestorMetrics {
	closing := in.ClosingCosts
	if closing.IsZero() {
		closing = in.PurchasePrice.Mul(defaultClosingCostRate)
	}

	income := in.MonthlyRent.Add(in.OtherMonthlyIncome)
	expenses := in.AnnualPropertyTax.
		Add(in.AnnualInsurance).
		Add(in.AnnualMaintenance).
		Add(in.AnnualVacancy).
		Add(in.AnnualManagement).
		Div(twelve)

	noi := income.Sub(expenses)
	annualNOI := noi.Mul(twelve)
	cashFlow := noi.Sub(in.MortgagePayment)
	annualCashFlow := cashFlow.Mul(twelve)
	invested := in.DownPayment.Add(closing)
	debtService := in.MortgagePayment.Mul(twelve)

	m := InvestorMetrics{
		MonthlyIncome:     income,
		MonthlyExpenses:   expenses,
		MonthlyNOI:        noi,
		AnnualNOI:         annualNOI,
		MonthlyCashFlow:   cashFlow,
		AnnualCashFlow:    annualCashFlow,
		CashInvested:      invested,
		ClosingCosts:      closing,
		AnnualDebtService: debtService,
		CapRate:           ratio(annualNOI, in.PurchasePrice),
		CashOnCash:        ratio(annualCashFlow, invested),
		OnePercentRule:    ratio(in.MonthlyRent, in.PurchasePrice),
	}
	if !debtService.IsZero() {
		m.DSCR = annualNOI.Div(debtService)
	}
	return m
}
