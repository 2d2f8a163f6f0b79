package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_crossover <scenario-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Rows are keyed by age; scenarios may start at different ages
	minAge, maxAge := -1, -1
	for _, s := range res.Scenarios {
		if len(s.Projection) == 0 {
			continue
		}
		if minAge == -1 || s.Projection[0].Age < minAge {
			minAge = s.Projection[0].Age
		}
		maxAge = s.Projection[len(s.Projection)-1].Age
	}
	if minAge == -1 {
		fmt.Println("no projection data")
		return
	}

	// Header
	header := "Age"
	for i := range res.Scenarios {
		header += fmt.Sprintf(",S%d_Value,S%d_Withdrawal,S%d_Taxes,S%d_Growth,S%d_Remaining", i+1, i+1, i+1, i+1, i+1)
	}
	fmt.Println(header)

	for age := minAge; age <= maxAge; age++ {
		row := fmt.Sprintf("%d", age)
		for _, s := range res.Scenarios {
			idx := age - s.Parameters.StartingAge
			if idx < 0 || idx >= len(s.Projection) {
				row += ",,,,,"
				continue
			}
			y := s.Projection[idx]
			row += fmt.Sprintf(",%s,%s,%s,%s,%s", y.PortfolioValue.StringFixed(0), y.Withdrawal.StringFixed(0),
				y.Taxes.StringFixed(0), y.PortfolioGrowth.StringFixed(0), y.RemainingBalance.StringFixed(0))
		}
		fmt.Println(row)
	}

	// If at least two scenarios, show the balance gap and crossover for the first two
	if len(res.Scenarios) >= 2 {
		a := res.Scenarios[0].Projection
		b := res.Scenarios[1].Projection
		for _, ya := range a {
			for _, yb := range b {
				if ya.Age == yb.Age {
					fmt.Printf("Age %d: a=%s b=%s diff=%s\n", ya.Age, ya.PortfolioValue.StringFixed(0),
						yb.PortfolioValue.StringFixed(0), ya.PortfolioValue.Sub(yb.PortfolioValue).StringFixed(0))
				}
			}
		}
		co, err := calc.CalculateBalanceCrossover(a, b)
		fmt.Printf("\nCrossover: %+v, err=%v\n", co, err)
	}
}
