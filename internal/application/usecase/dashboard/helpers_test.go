package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

func day(s string) time.Time {
	t, err := time.Parse(valueobject.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustRange(start, end string) valueobject.DateRange {
	r, err := valueobject.ParseDateRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

func revenueEntry(amount, date string, categoryID *uuid.UUID) *entity.LedgerEntry {
	return entity.NewLedgerEntry(uuid.Nil, entity.EntryTypeRevenue, "receita", dec(amount), day(date), day(date), categoryID, nil, "", uuid.Nil)
}

func expenseEntry(amount, date string, categoryID *uuid.UUID) *entity.LedgerEntry {
	return entity.NewLedgerEntry(uuid.Nil, entity.EntryTypeExpense, "despesa", dec(amount), day(date), day(date), categoryID, nil, "", uuid.Nil)
}

func expenseCategory(name string, classification entity.DREClassification) *entity.Category {
	var c *entity.DREClassification
	if classification != "" {
		c = entity.ClassificationPtr(classification)
	}
	return entity.NewCategory(uuid.Nil, name, "", entity.CategoryTypeExpense, c)
}

func order(total, date string, status entity.SalesOrderStatus) *entity.SalesOrder {
	return &entity.SalesOrder{
		ID:        uuid.New(),
		Number:    1,
		OrderDate: day(date),
		Status:    status,
		Total:     dec(total),
	}
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// fakeRepository serves in-memory rows and records the basis it was asked for.
type fakeRepository struct {
	entries    []*entity.LedgerEntry
	orders     []*entity.SalesOrder
	categories []*entity.Category
	err        error
	lastBasis  Basis
}

func (f *fakeRepository) ListEntriesInRange(_ context.Context, _ uuid.UUID, r valueobject.DateRange, basis Basis) ([]*entity.LedgerEntry, error) {
	f.lastBasis = basis
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.LedgerEntry
	for _, e := range f.entries {
		if e.Status == entity.EntryStatusCancelled || !r.Contains(e.TransactionDate) {
			continue
		}
		if basis == BasisCash && !e.Status.IsSettled() {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeRepository) ListSettledEntries(_ context.Context, _ uuid.UUID, r valueobject.DateRange) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range f.entries {
		if e.Status.IsSettled() && r.Contains(e.CashDate()) {
			out = append(out, e)
		}
	}
	return out, f.err
}

func (f *fakeRepository) ListOpenEntries(_ context.Context, _ uuid.UUID) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range f.entries {
		if e.Status.IsOpen() {
			out = append(out, e)
		}
	}
	return out, f.err
}

func (f *fakeRepository) ListSalesOrdersInRange(_ context.Context, _ uuid.UUID, _ valueobject.DateRange) ([]*entity.SalesOrder, error) {
	return f.orders, f.err
}

func (f *fakeRepository) ListCategories(_ context.Context, _ uuid.UUID) ([]*entity.Category, error) {
	return f.categories, f.err
}
