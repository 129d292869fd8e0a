package main

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/dashboard"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

func TestDREMarkdown(t *testing.T) {
	r, _ := valueobject.ParseDateRange("2024-01-01", "2024-01-31")
	out := &dashboard.GetDREOutput{
		Basis: dashboard.BasisCompetence,
		DRE: dashboard.DREResult{
			Range: r,
			RevenueBuckets: []dashboard.Bucket{
				{Key: "sales", Name: dashboard.BucketSales, Total: decimal.NewFromInt(1000)},
			},
			GrossRevenue:       decimal.NewFromInt(1000),
			OperatingExpense:   decimal.NewFromInt(200),
			ContributionMargin: decimal.NewFromInt(800),
			FixedCost:          decimal.NewFromInt(300),
			NetResult:          decimal.NewFromInt(500),
			Ratios:             dashboard.Ratios{ContributionMargin: 80, NetMargin: 50, ExpenseRatio: 20, FixedCostRatio: 30},
		},
	}

	md := dreMarkdown(out)

	for _, want := range []string{
		"# DRE 2024-01-01..2024-01-31",
		"Basis: competence",
		"| **Gross revenue** | R$1.000,00 |",
		"| &nbsp;&nbsp;Sales | R$1.000,00 |",
		"| **(=) Net result** | R$500,00 |",
		"* Net margin: 50.00%",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
	if strings.Contains(md, "variable cost") {
		t.Error("expected no variable cost note when there is none")
	}
}

func TestDREMarkdown_VariableCostNote(t *testing.T) {
	r, _ := valueobject.ParseDateRange("2024-01-01", "2024-01-31")
	out := &dashboard.GetDREOutput{
		Basis: dashboard.BasisCash,
		DRE: dashboard.DREResult{
			Range:                    r,
			UnclassifiedVariableCost: dashboard.Bucket{Total: decimal.NewFromInt(75)},
		},
	}

	md := dreMarkdown(out)
	if !strings.Contains(md, "R$75,00 classified as variable cost") {
		t.Errorf("expected variable cost note\n%s", md)
	}
}

func TestEstimateMarkdown(t *testing.T) {
	r, _ := valueobject.ParseDateRange("2024-01-01", "2024-01-31")
	out := &dashboard.GetEstimateOutput{
		Range: r,
		Today: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Revenue: dashboard.EstimateResult{
			Current:        decimal.NewFromInt(1000),
			DailyAverage:   decimal.NewFromInt(100),
			EstimatedTotal: decimal.NewFromInt(3100),
			DaysElapsed:    10,
			TotalDays:      31,
		},
		Expense: dashboard.EstimateResult{
			Current:        decimal.NewFromInt(500),
			DailyAverage:   decimal.NewFromInt(50),
			EstimatedTotal: decimal.NewFromInt(1550),
			DaysElapsed:    10,
			TotalDays:      31,
		},
		EstimatedResult: decimal.NewFromInt(1550),
	}

	md := estimateMarkdown(out)

	for _, want := range []string{
		"Day 10 of 31 (today is 2024-01-10)",
		"| Revenue | R$1.000,00 | R$100,00 | R$3.100,00 |",
		"| Expense | R$500,00 | R$50,00 | R$1.550,00 |",
		"**Estimated result: R$1.550,00**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}
