// Package report assembles presentation-ready payloads for the calculator
// report templates and renders them through pluggable formatters. Every
// numeric value in a payload is a pre-formatted display string; conditional
// template sections are driven by explicit boolean flags computed here.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propforma/propforma/internal/branding"
	"github.com/propforma/propforma/internal/domain"
	"github.com/propforma/propforma/internal/numeric"
)

// Logger is the minimal tracing interface the preparer uses in debug mode.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}

// Preparer turns raw calculator requests into report payloads. Branding is
// the only external collaborator; everything else is pure computation.
type Preparer struct {
	Branding branding.Provider
	logger   Logger
}

// NewPreparer creates a preparer backed by the given branding provider.
// A nil provider means every report carries default branding.
func NewPreparer(p branding.Provider) *Preparer {
	return &Preparer{Branding: p, logger: noopLogger{}}
}

// SetLogger enables debug tracing.
func (p *Preparer) SetLogger(l Logger) {
	if l != nil {
		p.logger = l
	}
}

// Prepare dispatches to the per-calculator preparer. The only rejected
// condition is an entirely absent request body; malformed fields inside an
// otherwise-present request degrade to zero values.
func (p *Preparer) Prepare(ctx context.Context, tool domain.Tool, calc, prop map[string]any, user *domain.User) (domain.ReportPayload, error) {
	if len(calc) == 0 && len(prop) == 0 {
		return nil, fmt.Errorf("calculation and property data are both empty")
	}

	in := rawInput{calc: calc, prop: prop}
	brand := branding.Resolve(ctx, p.Branding, user)
	p.logger.Debugf("preparing %s report (branding plan %s)", tool, brand.Plan)

	var payload domain.ReportPayload
	switch tool {
	case domain.ToolAffordability:
		payload = prepareAffordability(in)
	case domain.ToolInvestor:
		payload = prepareInvestor(in)
	case domain.ToolCommission:
		payload = prepareCommission(in)
	case domain.ToolNetSheet:
		payload = prepareNetSheet(in)
	case domain.ToolTimeline:
		payload = prepareTimeline(in)
	default:
		return nil, fmt.Errorf("unknown calculator tool: %s", tool)
	}

	payload["meta"] = metaSection(tool)
	payload["property"] = propertySection(in)
	payload["branding"] = brandingSection(brand)
	return payload, nil
}

// rawInput wraps the two request maps. Lookups scan the calculation data
// first, then property data, trying each alias a front-end may have used for
// the field.
type rawInput struct {
	calc map[string]any
	prop map[string]any
}

func (r rawInput) lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r.calc[k]; ok {
			return v, true
		}
	}
	for _, k := range keys {
		if v, ok := r.prop[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// dec normalizes the first present field to a decimal, zero when absent or
// malformed.
func (r rawInput) dec(keys ...string) decimal.Decimal {
	v, _ := r.lookup(keys...)
	return numeric.ParseDecimal(v, decimal.Zero)
}

func (r rawInput) str(keys ...string) string {
	if v, ok := r.lookup(keys...); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (r rawInput) flag(keys ...string) bool {
	if v, ok := r.lookup(keys...); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// metric applies the trust-or-recompute policy for derived figures: a
// nonzero caller-supplied value wins, otherwise the recomputed one is used.
func (r rawInput) metric(computed decimal.Decimal, keys ...string) decimal.Decimal {
	supplied := r.dec(keys...)
	if !supplied.IsZero() {
		return supplied
	}
	return computed
}

func metaSection(tool domain.Tool) map[string]any {
	return map[string]any{
		"reportId":    uuid.NewString(),
		"tool":        string(tool),
		"title":       reportTitles[tool],
		"generatedAt": time.Now().Format("January 2, 2006"),
	}
}

var reportTitles = map[domain.Tool]string{
	domain.ToolAffordability: "Home Affordability Report",
	domain.ToolInvestor:      "Investment Property Analysis",
	domain.ToolCommission:    "Commission Split Breakdown",
	domain.ToolNetSheet:      "Seller Net Sheet",
	domain.ToolTimeline:      "Closing Timeline",
}

func propertySection(r rawInput) map[string]any {
	address := r.str("address", "propertyAddress", "street")
	city := r.str("city")
	state := r.str("state")
	zip := r.str("zip", "zipCode", "postalCode")
	cityStateZip := city
	if state != "" {
		if cityStateZip != "" {
			cityStateZip += ", "
		}
		cityStateZip += state
	}
	if zip != "" {
		if cityStateZip != "" {
			cityStateZip += " "
		}
		cityStateZip += zip
	}
	photo := r.str("photoUrl", "photo", "imageUrl")
	return map[string]any{
		"address":      address,
		"cityStateZip": cityStateZip,
		"photoUrl":     photo,
		"hasAddress":   address != "",
		"hasPhoto":     photo != "",
	}
}

func brandingSection(b domain.BrandingProfile) map[string]any {
	return map[string]any{
		"agentName":          b.AgentName,
		"agentInitials":      b.Initials(),
		"agentEmail":         b.AgentEmail,
		"agentPhone":         b.AgentPhone,
		"brokerageName":      b.BrokerageName,
		"primaryColor":       b.PrimaryColor,
		"accentColor":        b.AccentColor,
		"logoUrl":            b.LogoURL,
		"plan":               string(b.Plan),
		"hasAgent":           b.AgentName != "",
		"hasBrokerage":       b.BrokerageName != "",
		"hasLogo":            b.LogoURL != "",
		"showCustomBranding": b.Plan.Paid(),
	}
}

// currency and percent are the formatting shorthands used by every preparer.
func currency(v decimal.Decimal) string { return numeric.FormatCurrency(v) }
func percent(v decimal.Decimal) string  { return numeric.FormatPercentage(v) }
