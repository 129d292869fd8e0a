package dashboard

import (
	"testing"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

func TestComputeIndicators(t *testing.T) {
	r := mustRange("2024-06-01", "2024-06-30")
	today := day("2024-06-15")
	variable := expenseCategory("Matéria-prima", entity.DREClassificationVariableCost)

	periodEntries := []*entity.LedgerEntry{
		revenueEntry("1000", "2024-06-02", nil),
		expenseEntry("300", "2024-06-03", nil),
		expenseEntry("120", "2024-06-04", &variable.ID),
	}
	orders := []*entity.SalesOrder{
		order("100", "2024-06-05", entity.SalesOrderStatusConfirmed),
		order("300", "2024-06-06", entity.SalesOrderStatusDelivered),
		order("999", "2024-06-07", entity.SalesOrderStatusDraft),
	}
	dre := Aggregate(periodEntries, orders, []*entity.Category{variable}, r)

	flagged := revenueEntry("80", "2024-05-01", nil)
	flagged.Status = entity.EntryStatusOverdue
	open := []*entity.LedgerEntry{
		revenueEntry("250", "2024-06-20", nil),
		revenueEntry("70", "2024-06-10", nil),
		flagged,
		expenseEntry("40", "2024-06-30", nil),
	}

	ind := ComputeIndicators(dre, open, orders, today)

	if !ind.Revenue.Equal(dec("1400")) {
		t.Errorf("revenue = %s, want 1400", ind.Revenue)
	}
	if !ind.VariableCost.Equal(dec("120")) || !ind.TotalExpense.Equal(dec("420")) {
		t.Errorf("unexpected expenses variable=%s total=%s", ind.VariableCost, ind.TotalExpense)
	}
	if !ind.Receivables.Pending.Equal(dec("250")) || ind.Receivables.PendingCount != 1 {
		t.Errorf("unexpected pending receivables %s (%d)", ind.Receivables.Pending, ind.Receivables.PendingCount)
	}
	if !ind.Receivables.Overdue.Equal(dec("150")) || ind.Receivables.OverdueCount != 2 {
		t.Errorf("unexpected overdue receivables %s (%d)", ind.Receivables.Overdue, ind.Receivables.OverdueCount)
	}
	if !ind.Payables.Total().Equal(dec("40")) {
		t.Errorf("unexpected payables %s", ind.Payables.Total())
	}
	if ind.OrderCount != 2 || !ind.AverageTicket.Equal(dec("200")) {
		t.Errorf("unexpected orders %d ticket %s", ind.OrderCount, ind.AverageTicket)
	}
}
