package report

import (
	"github.com/propforma/propforma/internal/derive"
	"github.com/propforma/propforma/internal/domain"
)

var sideLabels = map[derive.CommissionSide]string{
	derive.SideListing: "Listing Side",
	derive.SideBuyer:   "Buyer Side",
	derive.SideDual:    "Dual Agency",
}

// prepareCommission builds the commission split payload.
func prepareCommission(r rawInput) domain.ReportPayload {
	side := derive.CommissionSide(r.str("yourSide", "side"))
	in := derive.CommissionInputs{
		SalePrice:       r.dec("salePrice", "price"),
		CommissionRate:  r.dec("totalCommission", "commissionRate", "commissionPercent"),
		Side:            side,
		BrokerageSplit:  r.dec("brokerageSplit", "agentSplit", "split"),
		ReferralPercent: r.dec("referralPercent", "referralPct"),
		ReferralFee:     r.dec("referralFee"),
		TeamFee:         r.dec("teamFee", "teamSplit"),
		TransactionFee:  r.dec("transactionFee", "fixedFees", "deskFee"),
	}
	m := derive.Commission(in)

	label, ok := sideLabels[side]
	if !ok {
		label = "Your Side"
	}

	return domain.ReportPayload{
		"sale": map[string]any{
			"salePrice":      currency(in.SalePrice),
			"commissionRate": percent(in.CommissionRate),
			"side":           string(side),
			"sideLabel":      label,
			"isDual":         side == derive.SideDual,
		},
		"split": map[string]any{
			"gci":            currency(m.GCI),
			"sideGCI":        currency(m.SideGCI),
			"brokerageSplit": percent(in.BrokerageSplit),
			"agentGross":     currency(m.AgentGross),
		},
		"deductions": map[string]any{
			"referral":          currency(m.ReferralAmount),
			"teamFee":           currency(in.TeamFee),
			"transactionFee":    currency(in.TransactionFee),
			"total":             currency(m.TotalDeductions),
			"hasReferral":       m.ReferralAmount.IsPositive(),
			"hasTeamFee":        in.TeamFee.IsPositive(),
			"hasTransactionFee": in.TransactionFee.IsPositive(),
			"hasDeductions":     m.TotalDeductions.IsPositive(),
		},
		"metrics": map[string]any{
			"takeHome":      currency(m.TakeHome),
			"effectiveRate": percent(m.EffectiveRate),
		},
	}
}
