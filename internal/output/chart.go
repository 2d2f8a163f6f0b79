package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/rpgo/retirement-planner/internal/domain"
	money "github.com/rpgo/retirement-planner/pkg/decimal"
)

// chartPalette cycles through series colors.
var chartPalette = []string{"#4385BE", "#DA702C", "#879A39", "#8B7EC8", "#D14D41", "#3AA99F", "#D0A215"}

// ChartPoint is one plotted value in chart coordinates.
type ChartPoint struct {
	Age   int
	Value float64
	X, Y  float64
}

// ChartSeries is one scenario's portfolio value line.
type ChartSeries struct {
	Name   string
	Color  string
	Points []ChartPoint
}

// ChartTick is an axis label and its position along the axis.
type ChartTick struct {
	Label string
	Pos   float64
}

// Chart is the geometry of a portfolio value line chart: age on the x-axis,
// start-of-year portfolio value on the y-axis. Coordinates grow downward.
type Chart struct {
	Width, Height float64
	Left, Top     float64
	PlotW, PlotH  float64
	MinAge        int
	MaxAge        int
	MinValue      float64
	MaxValue      float64
	Series        []ChartSeries
	XTicks        []ChartTick
	YTicks        []ChartTick
}

// ZeroY is the y coordinate of a zero balance.
func (c Chart) ZeroY() float64 { return c.yFor(0) }

// Bottom is the y coordinate of the x-axis.
func (c Chart) Bottom() float64 { return c.Top + c.PlotH }

// Right is the x coordinate of the plot's right edge.
func (c Chart) Right() float64 { return c.Left + c.PlotW }

// Empty reports whether there is nothing to plot.
func (c Chart) Empty() bool { return len(c.Series) == 0 }

func (c Chart) xFor(age int) float64 {
	if c.MaxAge == c.MinAge {
		return c.Left + c.PlotW/2
	}
	return c.Left + float64(age-c.MinAge)/float64(c.MaxAge-c.MinAge)*c.PlotW
}

func (c Chart) yFor(v float64) float64 {
	return c.Top + (c.MaxValue-v)/(c.MaxValue-c.MinValue)*c.PlotH
}

// SVGPoints renders the series as an SVG polyline points attribute.
func (s ChartSeries) SVGPoints() string {
	parts := make([]string, len(s.Points))
	for i, p := range s.Points {
		parts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

// BuildChart lays out every scenario's projection inside a width x height canvas.
// The y-axis always includes zero so depletion is visible.
func BuildChart(results *domain.ScenarioComparison, width, height float64, currency string) Chart {
	const (
		marginLeft   = 0.14
		marginRight  = 0.04
		marginTop    = 0.06
		marginBottom = 0.12
	)
	c := Chart{
		Width:  width,
		Height: height,
		Left:   width * marginLeft,
		Top:    height * marginTop,
		PlotW:  width * (1 - marginLeft - marginRight),
		PlotH:  height * (1 - marginTop - marginBottom),
	}

	first := true
	for _, sc := range results.Scenarios {
		for _, y := range sc.Projection {
			v := y.PortfolioValue.InexactFloat64()
			if first {
				c.MinAge, c.MaxAge = y.Age, y.Age
				c.MinValue, c.MaxValue = v, v
				first = false
				continue
			}
			c.MinAge = min(c.MinAge, y.Age)
			c.MaxAge = max(c.MaxAge, y.Age)
			c.MinValue = math.Min(c.MinValue, v)
			c.MaxValue = math.Max(c.MaxValue, v)
		}
	}
	if first {
		return c
	}
	c.MinValue = math.Min(c.MinValue, 0)
	c.MaxValue = math.Max(c.MaxValue, 0)
	if c.MaxValue == c.MinValue {
		c.MaxValue = c.MinValue + 1
	}

	for i, sc := range results.Scenarios {
		if len(sc.Projection) == 0 {
			continue
		}
		series := ChartSeries{Name: sc.Name, Color: chartPalette[i%len(chartPalette)]}
		for _, y := range sc.Projection {
			v := y.PortfolioValue.InexactFloat64()
			series.Points = append(series.Points, ChartPoint{Age: y.Age, Value: v, X: c.xFor(y.Age), Y: c.yFor(v)})
		}
		c.Series = append(c.Series, series)
	}

	const yTicks = 4
	symbol := money.Symbol(currency)
	for i := 0; i <= yTicks; i++ {
		v := c.MinValue + (c.MaxValue-c.MinValue)*float64(i)/yTicks
		c.YTicks = append(c.YTicks, ChartTick{Label: compactAmount(v, symbol), Pos: c.yFor(v)})
	}
	step := 5
	if c.MaxAge-c.MinAge <= 10 {
		step = 1
	}
	for age := c.MinAge; age <= c.MaxAge; age++ {
		if age == c.MinAge || age == c.MaxAge || age%step == 0 {
			c.XTicks = append(c.XTicks, ChartTick{Label: intToString(age), Pos: c.xFor(age)})
		}
	}
	return c
}

// compactAmount renders axis labels such as "$2.1M" or "-$500K".
func compactAmount(v float64, symbol string) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%s%s%.1fB", sign, symbol, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s%s%.1fM", sign, symbol, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s%s%.0fK", sign, symbol, v/1e3)
	}
	return fmt.Sprintf("%s%s%.0f", sign, symbol, v)
}
