package report

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/propforma/propforma/internal/domain"
)

// defaultBrandRGB is the header color for FREE-tier reports.
var defaultBrandRGB = [3]int{31, 58, 95}

// PDFFormatter prints a payload straight to PDF. The hosted pipeline
// rasterizes the HTML output through a headless browser instead; this
// formatter covers CLI use where no browser is available.
type PDFFormatter struct{}

func (PDFFormatter) Name() string { return "pdf" }

func (PDFFormatter) Format(tool domain.Tool, payload domain.ReportPayload) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	branding := payload.Section("branding")
	rgb := defaultBrandRGB
	if show, _ := branding["showCustomBranding"].(bool); show {
		if c, ok := parseHexColor(stringOr(branding, "primaryColor")); ok {
			rgb = c
		}
	}

	meta := payload.Section("meta")
	pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 14, stringOr(meta, "title"), "", 1, "L", true, 0, "")

	pdf.SetTextColor(90, 90, 90)
	pdf.SetFont("Helvetica", "", 9)
	property := payload.Section("property")
	subtitle := stringOr(property, "address")
	if csz := stringOr(property, "cityStateZip"); csz != "" {
		if subtitle != "" {
			subtitle += ", "
		}
		subtitle += csz
	}
	if subtitle != "" {
		pdf.CellFormat(0, 6, subtitle, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, "Generated "+stringOr(meta, "generatedAt"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	lastSection := ""
	for _, l := range consoleLayout[tool] {
		section := payload.Section(l.section)
		value := stringOr(section, l.key)
		if value == "" {
			continue
		}
		if l.section != lastSection {
			pdf.Ln(2)
			pdf.SetTextColor(rgb[0], rgb[1], rgb[2])
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 8, sectionHeading(l.section), "B", 1, "L", false, 0, "")
			lastSection = l.section
		}
		pdf.SetTextColor(60, 60, 60)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(80, 7, l.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 7, value, "", 1, "R", false, 0, "")
	}

	if tool == domain.ToolTimeline {
		writePDFMilestones(pdf, payload, rgb)
	}

	if agent := stringOr(branding, "agentName"); agent != "" {
		pdf.Ln(6)
		pdf.SetTextColor(120, 120, 120)
		pdf.SetFont("Helvetica", "I", 9)
		footer := "Prepared by " + agent
		if brokerage := stringOr(branding, "brokerageName"); brokerage != "" {
			footer += ", " + brokerage
		}
		pdf.CellFormat(0, 6, footer, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePDFMilestones(pdf *gofpdf.Fpdf, payload domain.ReportPayload, rgb [3]int) {
	timeline := payload.Section("timeline")
	rows, ok := timeline["milestones"].([]map[string]any)
	if !ok || len(rows) == 0 {
		return
	}
	pdf.Ln(2)
	pdf.SetTextColor(rgb[0], rgb[1], rgb[2])
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "MILESTONES", "B", 1, "L", false, 0, "")
	for _, row := range rows {
		pdf.SetTextColor(60, 60, 60)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(80, 7, stringOr(row, "name"), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, stringOr(row, "date"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 7, stringOr(row, "statusLabel"), "", 1, "R", false, 0, "")
	}
}

func stringOr(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// parseHexColor converts "#1f3a5f" (or "1f3a5f") to RGB components.
func parseHexColor(s string) ([3]int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return [3]int{}, false
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]int{}, false
		}
		rgb[i] = int(v)
	}
	return rgb, true
}
