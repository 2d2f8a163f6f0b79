package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/retirement-planner/internal/domain"
)

// Theme colors (Flexoki Dark)
var (
	colorBorder = lipgloss.Color("#575653")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorRed    = lipgloss.Color("#D14D41")
	colorMuted  = lipgloss.Color("#6F6E69")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	goodStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	badStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorBorder)
)

// ConsoleVerboseFormatter renders the full year-by-year projection as bordered tables.
type ConsoleVerboseFormatter struct {
	Currency string
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render("RETIREMENT PORTFOLIO PROJECTION"))
	fmt.Fprintln(&buf, borderStyle.Render(strings.Repeat("=", 64)))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, headerStyle.Render("KEY ASSUMPTIONS:"))
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		fmt.Fprintln(&buf, headerStyle.Render(fmt.Sprintf("SCENARIO %d: %s", i+1, sc.Name)))
		fmt.Fprintln(&buf, mutedStyle.Render(fmt.Sprintf("Start: %s at age %d, expenses %s, income %s",
			FormatCurrency(sc.Parameters.PortfolioBalance, c.Currency), sc.Parameters.StartingAge,
			FormatCurrency(sc.Parameters.AnnualExpenses, c.Currency), FormatCurrency(sc.Parameters.NonPortfolioIncome, c.Currency))))
		if len(sc.Projection) == 0 {
			fmt.Fprintf(&buf, "No years to project: starting age is past %d.\n\n", domain.MaxProjectionAge)
			continue
		}
		buf.WriteString(renderTable(projectionTable(sc, c.Currency)))
		writeScenarioTotals(&buf, sc, c.Currency)
		fmt.Fprintln(&buf)
	}

	writeLongTermAnalysis(&buf, results)

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintf(&buf, "Recommended: %s (final balance %s, %s vs. start)\n",
			rec.ScenarioName, FormatCurrency(rec.FinalBalance, c.Currency), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}

// consoleTable is a bordered text table; the first column is left aligned,
// the rest right aligned.
type consoleTable struct {
	Headers []string
	Rows    [][]string
}

func projectionTable(sc domain.ScenarioSummary, currency string) consoleTable {
	t := consoleTable{Headers: []string{"Age", "Portfolio Value", "Withdrawal", "Taxes", "Growth", "Remaining Balance"}}
	for _, y := range sc.Projection {
		t.Rows = append(t.Rows, []string{
			intToString(y.Age),
			FormatCurrency(y.PortfolioValue, currency),
			FormatCurrency(y.Withdrawal, currency),
			FormatCurrency(y.Taxes, currency),
			FormatCurrency(y.PortfolioGrowth, currency),
			FormatCurrency(y.RemainingBalance, currency),
		})
	}
	return t
}

func renderTable(t consoleTable) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	rule := func(left, mid, right string) {
		b.WriteString(borderStyle.Render(left))
		for i, w := range widths {
			b.WriteString(borderStyle.Render(strings.Repeat("─", w+2)))
			if i < len(widths)-1 {
				b.WriteString(borderStyle.Render(mid))
			}
		}
		b.WriteString(borderStyle.Render(right))
		b.WriteString("\n")
	}
	line := func(cells []string, style lipgloss.Style) {
		b.WriteString(borderStyle.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", w-lipgloss.Width(cell))
			if i == 0 {
				b.WriteString(style.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(style.Render(" " + pad + cell + " "))
			}
			if i < len(widths)-1 {
				b.WriteString(borderStyle.Render("│"))
			}
		}
		b.WriteString(borderStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	line(t.Headers, headerStyle)
	rule("├", "┼", "┤")
	for _, row := range t.Rows {
		line(row, valueStyle)
	}
	rule("╰", "┴", "╯")
	return b.String()
}

func writeScenarioTotals(buf *bytes.Buffer, sc domain.ScenarioSummary, currency string) {
	fmt.Fprintf(buf, "Final Balance:    %s\n", FormatCurrency(sc.FinalBalance, currency))
	fmt.Fprintf(buf, "Peak Balance:     %s\n", FormatCurrency(sc.PeakBalance, currency))
	fmt.Fprintf(buf, "Total Withdrawn:  %s\n", FormatCurrency(sc.TotalWithdrawn, currency))
	fmt.Fprintf(buf, "Total Taxes:      %s\n", FormatCurrency(sc.TotalTaxes, currency))
	fmt.Fprintf(buf, "Total Growth:     %s\n", FormatCurrency(sc.TotalGrowth, currency))
	fmt.Fprintf(buf, "First Withdrawal: %s\n", ageOrDash(sc.FirstWithdrawalAge, sc.WithdrawalNeeded))
	if sc.IsSustainable() {
		fmt.Fprintf(buf, "Depletion:        %s\n", goodStyle.Render(fmt.Sprintf("never (funded through %d)", domain.MaxProjectionAge)))
	} else {
		fmt.Fprintf(buf, "Depletion:        %s\n", badStyle.Render(fmt.Sprintf("age %d", sc.DepletionAge)))
	}
	fmt.Fprintf(buf, "Success Rate:     %s\n", FormatPercentage(sc.SuccessRate))
}

func writeLongTermAnalysis(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	lt := results.LongTermProjection
	if lt.RiskAssessment == "" && lt.BestScenarioForBalance == "" {
		return
	}
	fmt.Fprintln(buf, headerStyle.Render("LONG-TERM ANALYSIS:"))
	if lt.BestScenarioForBalance != "" {
		fmt.Fprintf(buf, "Best for final balance: %s\n", lt.BestScenarioForBalance)
	}
	if lt.BestScenarioForLongevity != "" {
		fmt.Fprintf(buf, "Best for longevity:     %s\n", lt.BestScenarioForLongevity)
	}
	if lt.RiskAssessment != "" {
		fmt.Fprintf(buf, "Risk: %s\n", lt.RiskAssessment)
	}
	for _, r := range lt.Recommendations {
		fmt.Fprintf(buf, "  - %s\n", r)
	}
	fmt.Fprintln(buf)
}
