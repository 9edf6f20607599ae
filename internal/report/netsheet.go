package report

import (
	"github.com/propforma/propforma/internal/derive"
	"github.com/propforma/propforma/internal/domain"
)

// prepareNetSheet builds the seller net sheet payload. Every line item gets
// a visibility flag so the template omits zero-value rows instead of
// printing a page of "$0".
func prepareNetSheet(r rawInput) domain.ReportPayload {
	in := derive.NetSheetInputs{
		SalePrice:        r.dec("salePrice", "price"),
		CommissionRate:   r.dec("commissionRate", "totalCommission"),
		CommissionAmount: r.dec("commissionAmount"),
		Concessions:      r.dec("sellerConcessions", "concessions"),
		TitleEscrow:      r.dec("titleEscrow", "titleFees"),
		RecordingFees:    r.dec("recordingFees", "recording"),
		TransferTax:      r.dec("transferTax"),
		DocStamps:        r.dec("docStamps", "documentaryStamps"),
		HOADues:          r.dec("hoaDues", "hoaFees", "hoa"),
		Staging:          r.dec("staging", "stagingCosts"),
		OtherCosts:       r.dec("otherCosts", "other"),
		FirstLienPayoff:  r.dec("firstMortgagePayoff", "firstLienPayoff", "mortgagePayoff"),
		SecondLienPayoff: r.dec("secondMortgagePayoff", "secondLienPayoff"),
		ProratedTaxes:    r.dec("proratedTaxes", "taxProration"),
	}
	m := derive.NetSheet(in)

	return domain.ReportPayload{
		"sale": map[string]any{
			"salePrice": currency(in.SalePrice),
		},
		"deductions": map[string]any{
			"commission":       currency(m.Commission),
			"concessions":      currency(in.Concessions),
			"titleEscrow":      currency(in.TitleEscrow),
			"recordingFees":    currency(in.RecordingFees),
			"transferTax":      currency(in.TransferTax),
			"docStamps":        currency(in.DocStamps),
			"hoaDues":          currency(in.HOADues),
			"staging":          currency(in.Staging),
			"otherCosts":       currency(in.OtherCosts),
			"proratedTaxes":    currency(in.ProratedTaxes),
			"firstLienPayoff":  currency(in.FirstLienPayoff),
			"secondLienPayoff": currency(in.SecondLienPayoff),
			"totalPayoffs":     currency(m.TotalPayoffs),
			"closingCosts":     currency(m.ClosingCosts),
			"total":            currency(m.TotalDeductions),
			"hasConcessions":   in.Concessions.IsPositive(),
			"hasTitleEscrow":   in.TitleEscrow.IsPositive(),
			"hasRecording":     in.RecordingFees.IsPositive(),
			"hasTransferTax":   in.TransferTax.IsPositive(),
			"hasDocStamps":     in.DocStamps.IsPositive(),
			"hasHOAFees":       in.HOADues.IsPositive(),
			"hasStaging":       in.Staging.IsPositive(),
			"hasOtherCosts":    in.OtherCosts.IsPositive(),
			"hasProrations":    in.ProratedTaxes.IsPositive(),
			"hasFirstLien":     in.FirstLienPayoff.IsPositive(),
			"hasSecondLien":    in.SecondLienPayoff.IsPositive(),
			"hasPayoffs":       m.TotalPayoffs.IsPositive(),
		},
		"metrics": map[string]any{
			"estimatedNet": currency(m.EstimatedNet),
			"netPercent":   percent(m.NetPercent),
			"isPositive":   m.EstimatedNet.IsPositive(),
		},
	}
}
