package report

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propforma/propforma/internal/domain"
)

func TestFormatterFunc(t *testing.T) {
	called := false
	f := FormatterFunc{
		ID: "test-formatter",
		F: func(tool domain.Tool, payload domain.ReportPayload) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	assert.Equal(t, "test-formatter", f.Name())
	out, err := f.Format(domain.ToolInvestor, domain.ReportPayload{})
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []byte("test output"), out)
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"html", "json", "console", "pdf"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %s should be registered", name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("non-existent"))
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	f := FormatterFunc{
		ID: "test-formatter",
		F: func(domain.Tool, domain.ReportPayload) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(f, domain.ToolNetSheet, domain.ReportPayload{}, "txt")
	require.NoError(t, err)
	assert.Contains(t, filename, "propforma_netsheet_")
	assert.Contains(t, filename, ".txt")

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	f := FormatterFunc{
		ID: "error-formatter",
		F: func(domain.Tool, domain.ReportPayload) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}
	_, err := WriteFormatted(f, domain.ToolNetSheet, domain.ReportPayload{}, "txt")
	assert.Error(t, err)
}

func TestJSONFormatter_RoundTripsPayloadKeys(t *testing.T) {
	payload := preparePayload(t, domain.ToolCommission, map[string]any{
		"salePrice":       500000,
		"totalCommission": 6.0,
		"yourSide":        "dual",
		"brokerageSplit":  80.0,
	})

	out, err := JSONFormatter{}.Format(domain.ToolCommission, payload)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"sideGCI": "$30,000"`, "dual agency keeps the full GCI")
}

func TestConsoleFormatter_RendersSummary(t *testing.T) {
	payload := preparePayload(t, domain.ToolInvestor, map[string]any{
		"purchasePrice": 450000,
		"monthlyRent":   3200,
	})
	out, err := ConsoleFormatter{}.Format(domain.ToolInvestor, payload)
	require.NoError(t, err)
	assert.Contains(t, string(out), "$450,000")
	assert.Contains(t, string(out), "Cap Rate")
}

func TestPDFFormatter_ProducesDocument(t *testing.T) {
	payload := preparePayload(t, domain.ToolNetSheet, map[string]any{
		"salePrice":      500000,
		"commissionRate": 6,
	})
	out, err := PDFFormatter{}.Format(domain.ToolNetSheet, payload)
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestParseHexColor(t *testing.T) {
	rgb, ok := parseHexColor("#0b3d91")
	require.True(t, ok)
	assert.Equal(t, [3]int{11, 61, 145}, rgb)

	_, ok = parseHexColor("")
	assert.False(t, ok)
	_, ok = parseHexColor("#zzzzzz")
	assert.False(t, ok)
	_, ok = parseHexColor("#fff")
	assert.False(t, ok)
}
