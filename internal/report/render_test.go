package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propforma/propforma/internal/domain"
)

func TestRenderHTML_Investor(t *testing.T) {
	payload := preparePayload(t, domain.ToolInvestor, map[string]any{
		"purchasePrice": 450000,
		"monthlyRent":   3200,
		"capRate":       8.5,
	})

	html, err := RenderHTML(domain.ToolInvestor, payload)
	require.NoError(t, err)

	assert.Contains(t, html, "$450,000")
	assert.Contains(t, html, "8.50%")
	assert.Contains(t, html, "12 Oak St")
	assert.NotContains(t, html, "{{", "unresolved template tags leaked into output")
}

func TestRenderHTML_TimelineOmitsStaleRows(t *testing.T) {
	payload := preparePayload(t, domain.ToolTimeline, map[string]any{
		"milestones": []any{
			map[string]any{"name": "Open Escrow", "date": "2026-09-01", "status": "completed"},
			map[string]any{"name": "Expired Contingency", "date": "2026-08-01", "status": "past-due"},
		},
	})

	html, err := RenderHTML(domain.ToolTimeline, payload)
	require.NoError(t, err)
	assert.Contains(t, html, "Open Escrow")
	assert.NotContains(t, html, "Expired Contingency")
}

func TestRenderHTML_DefaultBrandingColor(t *testing.T) {
	payload := preparePayload(t, domain.ToolNetSheet, map[string]any{"salePrice": 500000})
	html, err := RenderHTML(domain.ToolNetSheet, payload)
	require.NoError(t, err)
	assert.Contains(t, html, "#1f3a5f", "FREE-tier reports use the stock header color")
}

func TestRenderHTML_EveryToolHasATemplate(t *testing.T) {
	minimal := map[domain.Tool]map[string]any{
		domain.ToolAffordability: {"homePrice": 1},
		domain.ToolInvestor:      {"purchasePrice": 1},
		domain.ToolCommission:    {"salePrice": 1},
		domain.ToolNetSheet:      {"salePrice": 1},
		domain.ToolTimeline:      {"closingDate": "2026-10-30"},
	}
	for _, tool := range domain.KnownTools {
		payload := preparePayload(t, tool, minimal[tool])
		html, err := RenderHTML(tool, payload)
		require.NoError(t, err, "tool %s", tool)
		assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"), "tool %s", tool)
		assert.NotContains(t, html, "{{", "tool %s rendered with unresolved tags", tool)
	}
}

func TestRenderHTML_UnknownTool(t *testing.T) {
	_, err := RenderHTML(domain.Tool("bogus"), domain.ReportPayload{})
	assert.Error(t, err)
}

func TestPrepare_ContextIgnoredByPureTools(t *testing.T) {
	// A canceled context must not break a report with no branding lookup.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPreparer(nil)
	_, err := p.Prepare(ctx, domain.ToolCommission, map[string]any{"salePrice": 1}, nil, nil)
	assert.NoError(t, err)
}
