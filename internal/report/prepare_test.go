package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propforma/propforma/internal/branding"
	"github.com/propforma/propforma/internal/domain"
	"github.com/propforma/propforma/internal/numeric"
)

func preparePayload(t *testing.T, tool domain.Tool, calc map[string]any) domain.ReportPayload {
	t.Helper()
	p := NewPreparer(nil)
	payload, err := p.Prepare(context.Background(), tool, calc, map[string]any{"address": "12 Oak St"}, nil)
	require.NoError(t, err)
	return payload
}

func TestPrepare_RejectsEmptyRequest(t *testing.T) {
	p := NewPreparer(nil)
	_, err := p.Prepare(context.Background(), domain.ToolInvestor, nil, nil, nil)
	assert.Error(t, err)

	_, err = p.Prepare(context.Background(), domain.ToolInvestor, map[string]any{}, map[string]any{}, nil)
	assert.Error(t, err)
}

func TestPrepare_UnknownTool(t *testing.T) {
	p := NewPreparer(nil)
	_, err := p.Prepare(context.Background(), domain.Tool("bogus"), map[string]any{"x": 1}, nil, nil)
	assert.Error(t, err)
}

func TestPrepareInvestor_EndToEnd(t *testing.T) {
	payload := preparePayload(t, domain.ToolInvestor, map[string]any{
		"purchasePrice": 450000,
		"downPayment":   90000,
		"monthlyRent":   "3,200",
		"propertyTaxes": 6500,
		"insurance":     1200,
		"capRate":       8.5,
		"cashOnCash":    12.3,
	})

	metrics := payload.Section("metrics")
	assert.Equal(t, "8.50%", metrics["capRate"], "supplied cap rate must be trusted, not recomputed")
	assert.Equal(t, "12.30%", metrics["cashOnCash"])

	purchase := payload.Section("purchase")
	assert.Equal(t, "$450,000", purchase["purchasePrice"])
	assert.Equal(t, "$90,000", purchase["downPayment"])
	assert.Equal(t, "$13,500", purchase["closingCosts"], "closing costs default to 3%% of price")
	assert.Equal(t, "$103,500", purchase["cashInvested"])
}

func TestPrepareInvestor_RecomputesMissingMetrics(t *testing.T) {
	payload := preparePayload(t, domain.ToolInvestor, map[string]any{
		"purchasePrice": 450000,
		"monthlyRent":   3200,
	})
	metrics := payload.Section("metrics")
	assert.NotEqual(t, "0.00%", metrics["capRate"], "absent cap rate must be recomputed from inputs")
}

func TestPrepareCommission_EndToEnd(t *testing.T) {
	payload := preparePayload(t, domain.ToolCommission, map[string]any{
		"salePrice":       500000,
		"totalCommission": 6.0,
		"yourSide":        "listing",
		"brokerageSplit":  70.0,
	})

	split := payload.Section("split")
	assert.Equal(t, "$30,000", split["gci"])
	assert.Equal(t, "$15,000", split["sideGCI"])
	assert.Equal(t, "$10,500", split["agentGross"])

	deductions := payload.Section("deductions")
	assert.Equal(t, false, deductions["hasReferral"])
	assert.Equal(t, false, deductions["hasDeductions"])
}

func TestPrepareAffordability_FlagsTrackValues(t *testing.T) {
	payload := preparePayload(t, domain.ToolAffordability, map[string]any{
		"homePrice":            "400,000",
		"downPaymentPercent":   20,
		"principalAndInterest": 2000,
		"annualPropertyTax":    2400,
		"monthlyInsurance":     100,
		"monthlyHOA":           150,
		"grossMonthlyIncome":   10000,
		"qualified":            true,
	})

	payment := payload.Section("payment")
	assert.Equal(t, "$2,450", payment["piti"])
	assert.Equal(t, true, payment["hasHOAFees"])
	assert.Equal(t, false, payment["hasPMI"], "zero PMI must not show a PMI row")

	metrics := payload.Section("metrics")
	assert.Equal(t, true, metrics["qualified"])
	assert.Equal(t, "Likely Qualified", metrics["qualifiedLabel"])
	assert.Equal(t, "24.50%", metrics["dti"])
}

func TestPrepareNetSheet_HidesZeroLineItems(t *testing.T) {
	payload := preparePayload(t, domain.ToolNetSheet, map[string]any{
		"salePrice":           500000,
		"commissionRate":      6,
		"firstMortgagePayoff": "275,000",
	})

	deductions := payload.Section("deductions")
	assert.Equal(t, true, deductions["hasFirstLien"])
	assert.Equal(t, false, deductions["hasSecondLien"])
	assert.Equal(t, false, deductions["hasStaging"])

	metrics := payload.Section("metrics")
	assert.Equal(t, "$195,000", metrics["estimatedNet"])
}

func TestPrepareTimeline_ExcludesPastDueRows(t *testing.T) {
	payload := preparePayload(t, domain.ToolTimeline, map[string]any{
		"closingDate": "2026-10-30",
		"milestones": []any{
			map[string]any{"name": "Open Escrow", "date": "2026-09-01", "status": "completed"},
			map[string]any{"name": "Inspection", "date": "2026-09-08", "status": "past-due"},
			map[string]any{"name": "Appraisal", "date": "2026-09-15", "status": "overdue"},
			map[string]any{"name": "Final Walkthrough", "date": "2026-10-29", "status": "upcoming"},
		},
	})

	timeline := payload.Section("timeline")
	rows, ok := timeline["milestones"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.NotContains(t, []string{"past-due", "overdue"}, row["status"])
	}
	assert.Equal(t, "4", timeline["totalCount"])
	assert.Equal(t, "25.00%", timeline["progressPercent"])
	assert.Equal(t, "October 30, 2026", timeline["closingDate"])
}

// Every preparer must fully populate the keys its template references, even
// for minimal input, so the renderer never hits an undefined variable.
func TestPrepare_PayloadCompleteness(t *testing.T) {
	minimal := map[domain.Tool]map[string]any{
		domain.ToolAffordability: {"homePrice": 1},
		domain.ToolInvestor:      {"purchasePrice": 1},
		domain.ToolCommission:    {"salePrice": 1},
		domain.ToolNetSheet:      {"salePrice": 1},
		domain.ToolTimeline:      {"closingDate": "2026-10-30"},
	}
	sections := map[domain.Tool][]string{
		domain.ToolAffordability: {"purchase", "payment", "income", "metrics"},
		domain.ToolInvestor:      {"purchase", "income", "expenses", "cashflow", "metrics"},
		domain.ToolCommission:    {"sale", "split", "deductions", "metrics"},
		domain.ToolNetSheet:      {"sale", "deductions", "metrics"},
		domain.ToolTimeline:      {"timeline"},
	}

	for tool, calc := range minimal {
		payload := preparePayload(t, tool, calc)
		for _, section := range append(sections[tool], "meta", "property", "branding") {
			assert.NotEmpty(t, payload.Section(section), "%s payload is missing section %s", tool, section)
		}
		brandingSection := payload.Section("branding")
		for _, key := range []string{"agentName", "brokerageName", "primaryColor", "logoUrl"} {
			_, present := brandingSection[key]
			assert.True(t, present, "%s branding section is missing key %s", tool, key)
		}
	}
}

// Already-formatted payload strings must survive a second pass through the
// formatters unchanged; formatting is applied exactly once per field.
func TestPrepare_NoDoubleFormatting(t *testing.T) {
	payload := preparePayload(t, domain.ToolInvestor, map[string]any{"purchasePrice": 450000})
	purchase := payload.Section("purchase")
	price := purchase["purchasePrice"].(string)
	assert.Equal(t, price, numeric.FormatCurrencyValue(price))
}

func TestPrepare_BrandingSoftFail(t *testing.T) {
	failing := branding.ProviderFunc(func(context.Context, string) (domain.BrandingProfile, error) {
		return domain.BrandingProfile{}, errors.New("branding store down")
	})
	p := NewPreparer(failing)
	payload, err := p.Prepare(context.Background(), domain.ToolCommission,
		map[string]any{"salePrice": 500000}, nil, &domain.User{ID: "u-1", Plan: "pro"})
	require.NoError(t, err, "a branding outage must not fail the report")

	b := payload.Section("branding")
	assert.Equal(t, "", b["agentName"])
	assert.Equal(t, false, b["showCustomBranding"])
	assert.Equal(t, string(domain.PlanFree), b["plan"])
}

func TestPrepare_PaidPlanBranding(t *testing.T) {
	provider := branding.Static(domain.BrandingProfile{
		AgentName:     "Jordan Reyes",
		BrokerageName: "Keystone Realty",
		PrimaryColor:  "#0b3d91",
		Plan:          domain.PlanPro,
	})
	p := NewPreparer(provider)
	payload, err := p.Prepare(context.Background(), domain.ToolNetSheet,
		map[string]any{"salePrice": 1}, nil, &domain.User{ID: "u-2"})
	require.NoError(t, err)

	b := payload.Section("branding")
	assert.Equal(t, "Jordan Reyes", b["agentName"])
	assert.Equal(t, "JR", b["agentInitials"])
	assert.Equal(t, "#0b3d91", b["primaryColor"])
	assert.Equal(t, true, b["showCustomBranding"])
}
