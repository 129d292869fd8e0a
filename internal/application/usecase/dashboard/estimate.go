package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// EstimateResult is a linear projection of a running total to the end of a range.
type EstimateResult struct {
	Current        decimal.Decimal
	DailyAverage   decimal.Decimal
	EstimatedTotal decimal.Decimal
	DaysElapsed    int
	TotalDays      int
}

// Estimate projects current, accumulated from r.Start up to today, over the
// whole range. Days are counted inclusively; a range that has not started
// yet has no elapsed days and projects to zero.
func Estimate(current decimal.Decimal, r valueobject.DateRange, today time.Time) EstimateResult {
	result := EstimateResult{
		Current:        current,
		DailyAverage:   decimal.Zero,
		EstimatedTotal: decimal.Zero,
		DaysElapsed:    DaysElapsed(r, today),
		TotalDays:      r.Days(),
	}
	if result.DaysElapsed == 0 {
		return result
	}

	elapsed := decimal.NewFromInt(int64(result.DaysElapsed))
	result.DailyAverage = current.Div(elapsed).Round(2)
	result.EstimatedTotal = current.Mul(decimal.NewFromInt(int64(result.TotalDays))).Div(elapsed).Round(2)
	return result
}

// DaysElapsed counts the days of r from its start through min(today, r.End).
func DaysElapsed(r valueobject.DateRange, today time.Time) int {
	last := today
	if r.End.Before(today) {
		last = r.End
	}
	n := valueobject.DaysBetween(r.Start, last)
	if n < 0 {
		return 0
	}
	return n + 1
}
