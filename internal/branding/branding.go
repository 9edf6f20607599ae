// Package branding resolves the display identity (agent, brokerage, colors,
// logo) merged into every report. Lookups are best-effort: any store failure
// degrades to the FREE-tier default profile so a branding outage can never
// fail a report.
package branding

import (
	"context"

	"github.com/propforma/propforma/internal/domain"
)

// Provider looks up the branding profile for a user.
type Provider interface {
	Lookup(ctx context.Context, userID string) (domain.BrandingProfile, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, userID string) (domain.BrandingProfile, error)

func (f ProviderFunc) Lookup(ctx context.Context, userID string) (domain.BrandingProfile, error) {
	return f(ctx, userID)
}

// Static returns a provider that answers every lookup with the same profile.
func Static(profile domain.BrandingProfile) Provider {
	return ProviderFunc(func(context.Context, string) (domain.BrandingProfile, error) {
		return profile, nil
	})
}

// Resolve looks up branding for a user and applies plan gating, substituting
// the default profile when the user is anonymous or the provider fails.
func Resolve(ctx context.Context, p Provider, user *domain.User) domain.BrandingProfile {
	if user == nil || user.ID == "" || p == nil {
		return domain.DefaultBranding()
	}
	profile, err := p.Lookup(ctx, user.ID)
	if err != nil {
		return domain.DefaultBranding()
	}
	if profile.Plan == "" {
		profile.Plan = domain.ParsePlan(user.Plan)
	}
	return Gate(profile)
}

// Gate strips paid-tier branding from profiles on the FREE plan. Profile
// text (agent name, brokerage) survives on every tier; colors and logo do
// not.
func Gate(profile domain.BrandingProfile) domain.BrandingProfile {
	if profile.Plan.Paid() {
		return profile
	}
	profile.PrimaryColor = ""
	profile.AccentColor = ""
	profile.LogoURL = ""
	profile.Plan = domain.PlanFree
	return profile
}
