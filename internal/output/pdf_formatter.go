package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/retirement-planner/internal/domain"
)

// PDFFormatter renders an A4 report: summary table, portfolio chart and yearly tables.
type PDFFormatter struct {
	Currency string
}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfPageWidth    = 210.0
	pdfPageHeight   = 297.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
	pdfChartHeight  = 85.0
	pdfRowHeight    = 5.5
)

type pdfReport struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	currency string
	results  *domain.ScenarioComparison
}

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	r := &pdfReport{
		pdf:      fpdf.New("P", "mm", "A4", ""),
		currency: p.Currency,
		results:  results,
	}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.SetCreationDate(nowFunc())
	r.pdf.SetTitle("Retirement Portfolio Projection", true)

	r.addSummaryPage()
	for i, sc := range results.Scenarios {
		r.addScenarioPage(i, sc)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addSummaryPage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 12, "Retirement Portfolio Projection", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(100, 100, 100)
	r.pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Projected through age %d", domain.MaxProjectionAge), "", 1, "C", false, 0, "")
	r.pdf.Ln(4)

	r.drawSectionHeader("Scenario Summary")
	headers := []string{"Scenario", "Start", "Final Balance", "Withdrawn", "Taxes", "Depletes", "Success"}
	widths := []float64{44, 14, 32, 30, 26, 16, 18}
	r.drawTableHeader(headers, widths)
	for _, sc := range r.results.Scenarios {
		depletes := "never"
		if !sc.IsSustainable() {
			depletes = intToString(sc.DepletionAge)
		}
		r.drawTableRow([]string{
			sc.Name,
			intToString(sc.Parameters.StartingAge),
			FormatCurrency(sc.FinalBalance, r.currency),
			FormatCurrency(sc.TotalWithdrawn, r.currency),
			FormatCurrency(sc.TotalTaxes, r.currency),
			depletes,
			FormatPercentage(sc.SuccessRate),
		}, widths, false)
	}
	r.pdf.Ln(4)

	r.drawSectionHeader("Portfolio Value by Age")
	r.drawChart(BuildChart(r.results, pdfContentWidth, pdfChartHeight, r.currency))

	r.drawSectionHeader("Analysis")
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	lt := r.results.LongTermProjection
	if lt.RiskAssessment != "" {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr(lt.RiskAssessment), "", "L", false)
	}
	if rec := AnalyzeScenarios(r.results); rec.ScenarioName != "" {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr(fmt.Sprintf("Recommended: %s (final balance %s)",
			rec.ScenarioName, FormatCurrency(rec.FinalBalance, r.currency))), "", "L", false)
	}
	for _, line := range lt.Recommendations {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr("- "+line), "", "L", false)
	}
	r.pdf.Ln(2)

	r.drawSectionHeader("Key Assumptions")
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	for _, a := range assumptionsFor(r.results) {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr("- "+a), "", "L", false)
	}
}

func (r *pdfReport) addScenarioPage(i int, sc domain.ScenarioSummary) {
	r.pdf.AddPage()
	r.drawSectionHeader(fmt.Sprintf("Scenario %d: %s", i+1, sc.Name))

	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(80, 80, 80)
	params := sc.Parameters
	r.pdf.MultiCell(pdfContentWidth, 5, r.tr(fmt.Sprintf(
		"Balance %s, expenses %s, income %s, starting age %d, return %s, tax %s, inflation %s",
		FormatCurrency(params.PortfolioBalance, r.currency), FormatCurrency(params.AnnualExpenses, r.currency),
		FormatCurrency(params.NonPortfolioIncome, r.currency), params.StartingAge,
		FormatPercentage(params.ROI), FormatPercentage(params.TaxRate), FormatPercentage(params.InflationRate))), "", "L", false)
	r.pdf.Ln(2)

	if len(sc.Projection) == 0 {
		r.pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("No years to project: starting age is past %d.", domain.MaxProjectionAge), "", 1, "L", false, 0, "")
		return
	}

	headers := []string{"Age", "Portfolio Value", "Withdrawal", "Taxes", "Growth", "Remaining"}
	widths := []float64{14, 36, 32, 28, 32, 38}
	r.drawTableHeader(headers, widths)
	for _, y := range sc.Projection {
		if r.pdf.GetY()+pdfRowHeight > pdfPageHeight-pdfMarginBottom {
			r.pdf.AddPage()
			r.drawTableHeader(headers, widths)
		}
		r.drawTableRow([]string{
			intToString(y.Age),
			FormatCurrency(y.PortfolioValue, r.currency),
			FormatCurrency(y.Withdrawal, r.currency),
			FormatCurrency(y.Taxes, r.currency),
			FormatCurrency(y.PortfolioGrowth, r.currency),
			FormatCurrency(y.RemainingBalance, r.currency),
		}, widths, y.IsDepleted())
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, r.tr(title), "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(3)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, highlight bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFont("Arial", "", 9)
	if highlight {
		r.pdf.SetFillColor(255, 235, 230)
		r.pdf.SetTextColor(175, 48, 41)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], pdfRowHeight, r.tr(cell), "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

// drawChart plots each series at the current position.
func (r *pdfReport) drawChart(c Chart) {
	if c.Empty() {
		r.pdf.SetFont("Arial", "I", 9)
		r.pdf.CellFormat(pdfContentWidth, 6, "Nothing to chart.", "", 1, "L", false, 0, "")
		return
	}
	if r.pdf.GetY()+c.Height > pdfPageHeight-pdfMarginBottom {
		r.pdf.AddPage()
	}
	x0, y0 := pdfMarginLeft, r.pdf.GetY()

	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetTextColor(110, 110, 105)
	r.pdf.SetLineWidth(0.1)
	r.pdf.SetDrawColor(225, 222, 210)
	for _, t := range c.YTicks {
		r.pdf.Line(x0+c.Left, y0+t.Pos, x0+c.Right(), y0+t.Pos)
		r.pdf.Text(x0+1, y0+t.Pos+1, r.tr(t.Label))
	}
	for _, t := range c.XTicks {
		r.pdf.Text(x0+t.Pos-2, y0+c.Bottom()+4, t.Label)
	}
	r.pdf.SetDrawColor(135, 133, 128)
	r.pdf.Line(x0+c.Left, y0+c.ZeroY(), x0+c.Right(), y0+c.ZeroY())

	r.pdf.SetLineWidth(0.5)
	legendX := x0 + c.Left
	for _, s := range c.Series {
		red, green, blue := hexRGB(s.Color)
		r.pdf.SetDrawColor(red, green, blue)
		for i := 1; i < len(s.Points); i++ {
			a, b := s.Points[i-1], s.Points[i]
			r.pdf.Line(x0+a.X, y0+a.Y, x0+b.X, y0+b.Y)
		}
		r.pdf.Line(legendX, y0+c.Height, legendX+5, y0+c.Height)
		r.pdf.Text(legendX+6, y0+c.Height+1, r.tr(s.Name))
		legendX += 8 + r.pdf.GetStringWidth(r.tr(s.Name))
	}
	r.pdf.SetLineWidth(0.2)
	r.pdf.SetY(y0 + c.Height + 5)
}

// hexRGB parses "#RRGGBB"; anything else is black.
func hexRGB(color string) (int, int, int) {
	if len(color) != 7 || color[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(color[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
