package report

import (
	"embed"
	"fmt"

	"github.com/cbroglie/mustache"

	"github.com/propforma/propforma/internal/domain"
)

//go:embed templates/*.mustache
var templateFS embed.FS

// RenderHTML merges a prepared payload into the calculator's Mustache
// template. Payload values are pre-formatted trusted strings, so the
// templates use triple-stache interpolation; missing variables render as
// empty per the library default, which the preparers compensate for by
// populating every key a template references.
func RenderHTML(tool domain.Tool, payload domain.ReportPayload) (string, error) {
	src, err := templateFS.ReadFile(fmt.Sprintf("templates/%s.mustache", tool))
	if err != nil {
		return "", fmt.Errorf("no report template for tool %s: %w", tool, err)
	}
	html, err := mustache.Render(string(src), map[string]any(payload))
	if err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tool, err)
	}
	return html, nil
}
