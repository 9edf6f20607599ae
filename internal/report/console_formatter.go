package report

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/propforma/propforma/internal/domain"
)

var (
	consoleTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24")).
				Padding(0, 1)
	consoleHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))
	consoleLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Width(26)
	consoleValueStyle = lipgloss.NewStyle().
				Bold(true)
	consoleMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// consoleLine maps one payload value to a labelled console row.
type consoleLine struct {
	section string
	key     string
	label   string
}

var consoleLayout = map[domain.Tool][]consoleLine{
	domain.ToolAffordability: {
		{"purchase", "homePrice", "Home Price"},
		{"purchase", "downPayment", "Down Payment"},
		{"purchase", "loanAmount", "Loan Amount"},
		{"payment", "principalAndInterest", "Principal & Interest"},
		{"payment", "monthlyTax", "Property Tax (monthly)"},
		{"payment", "insurance", "Insurance"},
		{"payment", "pmi", "PMI"},
		{"payment", "hoa", "HOA"},
		{"payment", "piti", "Total PITI"},
		{"income", "grossMonthlyIncome", "Gross Monthly Income"},
		{"income", "totalMonthlyDebt", "Total Monthly Debt"},
		{"metrics", "dti", "Debt-to-Income"},
		{"metrics", "qualifiedLabel", "Qualification"},
	},
	domain.ToolInvestor: {
		{"purchase", "purchasePrice", "Purchase Price"},
		{"purchase", "downPayment", "Down Payment"},
		{"purchase", "closingCosts", "Closing Costs"},
		{"purchase", "cashInvested", "Cash Invested"},
		{"income", "totalMonthly", "Monthly Income"},
		{"expenses", "totalMonthly", "Monthly Expenses"},
		{"cashflow", "monthlyNOI", "Monthly NOI"},
		{"cashflow", "monthly", "Monthly Cash Flow"},
		{"cashflow", "annual", "Annual Cash Flow"},
		{"metrics", "capRate", "Cap Rate"},
		{"metrics", "cashOnCash", "Cash-on-Cash"},
		{"metrics", "dscr", "DSCR"},
		{"metrics", "onePercentRule", "1% Rule"},
	},
	domain.ToolCommission: {
		{"sale", "salePrice", "Sale Price"},
		{"sale", "commissionRate", "Commission Rate"},
		{"sale", "sideLabel", "Representation"},
		{"split", "gci", "Gross Commission (GCI)"},
		{"split", "sideGCI", "Your Side GCI"},
		{"split", "brokerageSplit", "Brokerage Split"},
		{"split", "agentGross", "Agent Gross"},
		{"deductions", "total", "Total Deductions"},
		{"metrics", "takeHome", "Take-Home"},
		{"metrics", "effectiveRate", "Effective Rate"},
	},
	domain.ToolNetSheet: {
		{"sale", "salePrice", "Sale Price"},
		{"deductions", "commission", "Commission"},
		{"deductions", "closingCosts", "Closing Costs"},
		{"deductions", "totalPayoffs", "Loan Payoffs"},
		{"deductions", "proratedTaxes", "Prorated Taxes"},
		{"deductions", "total", "Total Deductions"},
		{"metrics", "estimatedNet", "Estimated Net"},
		{"metrics", "netPercent", "Net % of Sale"},
	},
	domain.ToolTimeline: {
		{"timeline", "closingDate", "Closing Date"},
		{"timeline", "completedCount", "Completed"},
		{"timeline", "upcomingCount", "Upcoming"},
		{"timeline", "progressPercent", "Progress"},
	},
}

// ConsoleFormatter renders a styled terminal summary, used by the preview
// subcommand.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(tool domain.Tool, payload domain.ReportPayload) ([]byte, error) {
	var buf bytes.Buffer

	meta := payload.Section("meta")
	title, _ := meta["title"].(string)
	if title == "" {
		title = string(tool)
	}
	fmt.Fprintln(&buf, consoleTitleStyle.Render(title))

	property := payload.Section("property")
	if addr, _ := property["address"].(string); addr != "" {
		line := addr
		if csz, _ := property["cityStateZip"].(string); csz != "" {
			line += " · " + csz
		}
		fmt.Fprintln(&buf, consoleMutedStyle.Render(line))
	}
	fmt.Fprintln(&buf)

	lastSection := ""
	for _, l := range consoleLayout[tool] {
		section := payload.Section(l.section)
		value, _ := section[l.key].(string)
		if value == "" {
			continue
		}
		if l.section != lastSection {
			if lastSection != "" {
				fmt.Fprintln(&buf)
			}
			fmt.Fprintln(&buf, consoleHeaderStyle.Render(sectionHeading(l.section)))
			lastSection = l.section
		}
		fmt.Fprintf(&buf, "%s %s\n", consoleLabelStyle.Render(l.label), consoleValueStyle.Render(value))
	}

	if tool == domain.ToolTimeline {
		writeConsoleMilestones(&buf, payload)
	}

	branding := payload.Section("branding")
	if agent, _ := branding["agentName"].(string); agent != "" {
		fmt.Fprintln(&buf)
		footer := "Prepared by " + agent
		if brokerage, _ := branding["brokerageName"].(string); brokerage != "" {
			footer += ", " + brokerage
		}
		fmt.Fprintln(&buf, consoleMutedStyle.Render(footer))
	}

	return buf.Bytes(), nil
}

func writeConsoleMilestones(buf *bytes.Buffer, payload domain.ReportPayload) {
	timeline := payload.Section("timeline")
	rows, ok := timeline["milestones"].([]map[string]any)
	if !ok || len(rows) == 0 {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, consoleHeaderStyle.Render("MILESTONES"))
	for _, row := range rows {
		name, _ := row["name"].(string)
		date, _ := row["date"].(string)
		status, _ := row["statusLabel"].(string)
		fmt.Fprintf(buf, "%s %s %s\n",
			consoleLabelStyle.Render(name),
			consoleValueStyle.Render(date),
			consoleMutedStyle.Render("("+status+")"))
	}
}

var sectionHeadings = map[string]string{
	"purchase":   "PURCHASE",
	"payment":    "MONTHLY PAYMENT",
	"income":     "INCOME",
	"expenses":   "OPERATING EXPENSES",
	"cashflow":   "CASH FLOW",
	"sale":       "SALE",
	"split":      "COMMISSION SPLIT",
	"deductions": "DEDUCTIONS",
	"metrics":    "KEY METRICS",
	"timeline":   "TIMELINE",
}

func sectionHeading(section string) string {
	if h, ok := sectionHeadings[section]; ok {
		return h
	}
	return section
}
