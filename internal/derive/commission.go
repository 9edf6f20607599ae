package derive

import "github.com/shopspring/decimal"

// CommissionSide is which side of the transaction the agent represents.
type CommissionSide string

const (
	SideListing CommissionSide = "listing"
	SideBuyer   CommissionSide = "buyer"
	SideDual    CommissionSide = "dual"
)

var half = decimal.NewFromFloat(0.5)

// SideShare is the fraction of gross commission the agent's side earns:
// listing and buyer sides split the GCI evenly, a dual agent keeps all of it.
// Unknown sides are treated as a single-side split.
func (s CommissionSide) Share() decimal.Decimal {
	if s == SideDual {
		return decimal.NewFromInt(1)
	}
	return half
}

// CommissionInputs are the normalized fields of a commission split.
// ReferralPercent (of side GCI) wins over ReferralFee when both are supplied.
type CommissionInputs struct {
	SalePrice       decimal.Decimal
	CommissionRate  decimal.Decimal
	Side            CommissionSide
	BrokerageSplit  decimal.Decimal
	ReferralPercent decimal.Decimal
	ReferralFee     decimal.Decimal
	TeamFee         decimal.Decimal
	TransactionFee  decimal.Decimal
}

// CommissionMetrics is the agent's take-home breakdown.
type CommissionMetrics struct {
	GCI             decimal.Decimal
	SideGCI         decimal.Decimal
	AgentGross      decimal.Decimal
	ReferralAmount  decimal.Decimal
	TotalDeductions decimal.Decimal
	TakeHome        decimal.Decimal
	EffectiveRate   decimal.Decimal
}

// Commission derives the take-home split from sale price through deductions.
func Commission(in CommissionInputs) CommissionMetrics {
	gci := in.SalePrice.Mul(in.CommissionRate).Div(hundred)
	sideGCI := gci.Mul(in.Side.Share())
	agentGross := sideGCI.Mul(in.BrokerageSplit).Div(hundred)

	referral := in.ReferralFee
	if in.ReferralPercent.IsPositive() {
		referral = sideGCI.Mul(in.ReferralPercent).Div(hundred)
	}
	deductions := referral.Add(in.TeamFee).Add(in.TransactionFee)
	takeHome := agentGross.Sub(deductions)

	return CommissionMetrics{
		GCI:             gci,
		SideGCI:         sideGCI,
		AgentGross:      agentGross,
		ReferralAmount:  referral,
		TotalDeductions: deductions,
		TakeHome:        takeHome,
		EffectiveRate:   ratio(takeHome, in.SalePrice),
	}
}
