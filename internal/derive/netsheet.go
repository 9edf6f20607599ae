package derive

import "github.com/shopspring/decimal"

// NetSheetInputs are the normalized fields of a seller net sheet.
// CommissionRate (percent of sale price) wins over CommissionAmount when both
// are supplied.
type NetSheetInputs struct {
	SalePrice        decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	Concessions      decimal.Decimal
	TitleEscrow      decimal.Decimal
	RecordingFees    decimal.Decimal
	TransferTax      decimal.Decimal
	DocStamps        decimal.Decimal
	HOADues          decimal.Decimal
	Staging          decimal.Decimal
	OtherCosts       decimal.Decimal
	FirstLienPayoff  decimal.Decimal
	SecondLienPayoff decimal.Decimal
	ProratedTaxes    decimal.Decimal
}

// NetSheetMetrics is the seller's bottom line.
type NetSheetMetrics struct {
	Commission      decimal.Decimal
	ClosingCosts    decimal.Decimal
	TotalPayoffs    decimal.Decimal
	TotalDeductions decimal.Decimal
	EstimatedNet    decimal.Decimal
	NetPercent      decimal.Decimal
}

// NetSheet derives the seller's estimated net proceeds. EstimatedNet is
// exactly SalePrice minus TotalDeductions; the sheet balances by
// construction.
func NetSheet(in NetSheetInputs) NetSheetMetrics {
	commission := in.CommissionAmount
	if in.CommissionRate.IsPositive() {
		commission = in.SalePrice.Mul(in.CommissionRate).Div(hundred)
	}

	closingCosts := in.TitleEscrow.
		Add(in.RecordingFees).
		Add(in.TransferTax).
		Add(in.DocStamps).
		Add(in.HOADues).
		Add(in.Staging).
		Add(in.OtherCosts)
	payoffs := in.FirstLienPayoff.Add(in.SecondLienPayoff)

	deductions := commission.
		Add(in.Concessions).
		Add(closingCosts).
		Add(payoffs).
		Add(in.ProratedTaxes)
	net := in.SalePrice.Sub(deductions)

	return NetSheetMetrics{
		Commission:      commission,
		ClosingCosts:    closingCosts,
		TotalPayoffs:    payoffs,
		TotalDeductions: deductions,
		EstimatedNet:    net,
		NetPercent:      ratio(net, in.SalePrice),
	}
}
