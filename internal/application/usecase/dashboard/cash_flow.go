package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// CashFlowPoint is the money movement of one period.
type CashFlowPoint struct {
	PeriodInfo
	Inflow         decimal.Decimal
	Outflow        decimal.Decimal
	Net            decimal.Decimal
	RunningBalance decimal.Decimal
}

// CashFlow is a gap-free series of periods over a range.
type CashFlow struct {
	Range        valueobject.DateRange
	Granularity  Granularity
	Points       []CashFlowPoint
	TotalInflow  decimal.Decimal
	TotalOutflow decimal.Decimal
	Net          decimal.Decimal
}

// BuildCashFlow buckets settled entries by the day money moved. Entries
// that are not settled or fall outside r are skipped. Periods without
// movement are kept with zero values.
func BuildCashFlow(entries []*entity.LedgerEntry, r valueobject.DateRange, granularity Granularity) CashFlow {
	type sums struct{ in, out decimal.Decimal }
	byPeriod := make(map[string]*sums)

	for _, e := range entries {
		if !e.Status.IsSettled() {
			continue
		}
		date := e.CashDate()
		if !r.Contains(date) {
			continue
		}
		key := GetPeriodKeyForDate(date, granularity)
		s, ok := byPeriod[key]
		if !ok {
			s = &sums{in: decimal.Zero, out: decimal.Zero}
			byPeriod[key] = s
		}
		if e.Type == entity.EntryTypeRevenue {
			s.in = s.in.Add(e.Amount)
		} else {
			s.out = s.out.Add(e.Amount)
		}
	}

	flow := CashFlow{
		Range:        r,
		Granularity:  granularity,
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
	}
	balance := decimal.Zero
	for _, period := range GeneratePeriodSeries(r.Start, r.End, granularity) {
		point := CashFlowPoint{PeriodInfo: period, Inflow: decimal.Zero, Outflow: decimal.Zero}
		if s, ok := byPeriod[period.Date.Format("2006-01-02")]; ok {
			point.Inflow = s.in
			point.Outflow = s.out
		}
		point.Net = point.Inflow.Sub(point.Outflow)
		balance = balance.Add(point.Net)
		point.RunningBalance = balance

		flow.TotalInflow = flow.TotalInflow.Add(point.Inflow)
		flow.TotalOutflow = flow.TotalOutflow.Add(point.Outflow)
		flow.Points = append(flow.Points, point)
	}
	flow.Net = flow.TotalInflow.Sub(flow.TotalOutflow)

	return flow
}
