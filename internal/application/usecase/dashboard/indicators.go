package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// OpenBalance sums open entries of one direction.
type OpenBalance struct {
	Pending      decimal.Decimal
	PendingCount int
	Overdue      decimal.Decimal
	OverdueCount int
}

// Total returns pending plus overdue.
func (b OpenBalance) Total() decimal.Decimal {
	return b.Pending.Add(b.Overdue)
}

// Indicators are the headline figures of the dashboard.
type Indicators struct {
	Revenue          decimal.Decimal
	OperatingExpense decimal.Decimal
	FixedCost        decimal.Decimal
	VariableCost     decimal.Decimal
	TotalExpense     decimal.Decimal
	NetResult        decimal.Decimal
	Receivables      OpenBalance
	Payables         OpenBalance
	OrderCount       int
	AverageTicket    decimal.Decimal
}

// ComputeIndicators derives indicators from a period statement, the open
// entries of the company and the orders of the period. Open entries past
// their due date on today count as overdue even before the worker flags them.
func ComputeIndicators(dre DREResult, open []*entity.LedgerEntry, orders []*entity.SalesOrder, today time.Time) Indicators {
	ind := Indicators{
		Revenue:          dre.GrossRevenue,
		OperatingExpense: dre.OperatingExpense,
		FixedCost:        dre.FixedCost,
		VariableCost:     dre.UnclassifiedVariableCost.Total,
		TotalExpense:     dre.TotalExpense(),
		NetResult:        dre.NetResult,
		AverageTicket:    decimal.Zero,
	}

	for _, e := range open {
		if !e.Status.IsOpen() {
			continue
		}
		balance := &ind.Payables
		if e.Type == entity.EntryTypeRevenue {
			balance = &ind.Receivables
		}
		if e.Status == entity.EntryStatusOverdue || e.IsOverdueOn(today) {
			balance.Overdue = balance.Overdue.Add(e.Amount)
			balance.OverdueCount++
			continue
		}
		balance.Pending = balance.Pending.Add(e.Amount)
		balance.PendingCount++
	}

	sales := decimal.Zero
	for _, o := range orders {
		if !o.Status.CountsAsRevenue() || !dre.Range.Contains(o.OrderDate) {
			continue
		}
		sales = sales.Add(o.Total)
		ind.OrderCount++
	}
	if ind.OrderCount > 0 {
		ind.AverageTicket = sales.Div(decimal.NewFromInt(int64(ind.OrderCount))).Round(2)
	}

	return ind
}
