package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"strconv"

	calc "github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart.
type HTMLFormatter struct {
	Currency string
}

func (h HTMLFormatter) Name() string { return "html" }

const (
	htmlChartWidth  = 760
	htmlChartHeight = 360
)

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  func(d decimal.Decimal) string { return FormatCurrency(d, "") },
	"pct":   FormatPercentage,
	"age":   ageOrDash,
	"add":   func(i, j int) int { return i + j },
	"fixed": func(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) },
	"json":  jsonJS,
}).Parse(htmlTemplateSource))

// jsonJS embeds v as a script literal. A marshal error aborts template execution.
func jsonJS(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	rec := AnalyzeScenarios(results)

	tmpl, err := htmlTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{
		"curr": func(d decimal.Decimal) string { return FormatCurrency(d, h.Currency) },
	})

	// Where the first two scenarios trade places, if they do
	var crossover *domain.BalanceCrossover
	if len(results.Scenarios) >= 2 {
		projA := results.Scenarios[0].Projection
		projB := results.Scenarios[1].Projection
		if co, err := calc.CalculateBalanceCrossover(projA, projB); err == nil && co != nil {
			crossover = co
		}
	}
	crossoverLeader := ""
	if crossover != nil {
		crossoverLeader = results.Scenarios[0].Name
		if crossover.Leader == "b" {
			crossoverLeader = results.Scenarios[1].Name
		}
	}

	data := struct {
		*domain.ScenarioComparison
		Recommendation  Recommendation
		Assumptions     []string
		Chart           Chart
		Crossover       *domain.BalanceCrossover
		CrossoverLeader string
		MaxAge          int
	}{
		ScenarioComparison: results,
		Recommendation:     rec,
		Assumptions:        assumptionsFor(results),
		Chart:              BuildChart(results, htmlChartWidth, htmlChartHeight, h.Currency),
		Crossover:          crossover,
		CrossoverLeader:    crossoverLeader,
		MaxAge:             domain.MaxProjectionAge,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
