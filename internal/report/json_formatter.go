package report

import (
	"encoding/json"

	"github.com/propforma/propforma/internal/domain"
)

// JSONFormatter dumps the raw payload, mainly for the debug endpoint and
// snapshot tests.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(_ domain.Tool, payload domain.ReportPayload) ([]byte, error) {
	return json.MarshalIndent(payload, "", "  ")
}
