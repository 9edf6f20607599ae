package report

import "github.com/propforma/propforma/internal/domain"

// HTMLFormatter produces the HTML document an external rasterizer turns into
// a PDF.
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }

func (HTMLFormatter) Format(tool domain.Tool, payload domain.ReportPayload) ([]byte, error) {
	html, err := RenderHTML(tool, payload)
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}
