package domain

import "strings"

// Plan is the billing tier a branding profile belongs to. Custom colors and
// logos are gated behind paid tiers.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
	PlanTeam Plan = "team"
)

// ParsePlan maps a stored plan string to a Plan, defaulting unknown values
// to FREE so a bad subscription record can never unlock paid branding.
func ParsePlan(s string) Plan {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case PlanPro:
		return PlanPro
	case PlanTeam:
		return PlanTeam
	}
	return PlanFree
}

// Paid reports whether the plan unlocks custom branding.
func (p Plan) Paid() bool { return p == PlanPro || p == PlanTeam }

// BrandingProfile is the display identity merged into every report under the
// `branding` key. All fields are optional; zero values render as empty
// strings in the template.
type BrandingProfile struct {
	AgentName     string `yaml:"agentName" json:"agentName"`
	AgentEmail    string `yaml:"agentEmail" json:"agentEmail"`
	AgentPhone    string `yaml:"agentPhone" json:"agentPhone"`
	BrokerageName string `yaml:"brokerageName" json:"brokerageName"`
	PrimaryColor  string `yaml:"primaryColor" json:"primaryColor"`
	AccentColor   string `yaml:"accentColor" json:"accentColor"`
	LogoURL       string `yaml:"logoUrl" json:"logoUrl"`
	Plan          Plan   `yaml:"plan" json:"plan"`
}

// Initials derives the agent's display initials from their name, at most two
// characters.
func (b BrandingProfile) Initials() string {
	fields := strings.Fields(b.AgentName)
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(fields[0][:1])
	default:
		return strings.ToUpper(fields[0][:1] + fields[len(fields)-1][:1])
	}
}

// DefaultBranding is the all-empty FREE-tier profile substituted whenever the
// branding store has no data or fails to answer.
func DefaultBranding() BrandingProfile {
	return BrandingProfile{Plan: PlanFree}
}
