package dashboard

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// Bucket names used by the income statement.
const (
	BucketSales            = "Sales"
	BucketOtherRevenue     = "Other Revenue"
	BucketOperatingExpense = "Operating Expense"
	BucketFixedCost        = "Fixed Cost"
	BucketVariableCost     = "Variable Cost"
)

// Keys of the synthetic revenue buckets. Category buckets are keyed by category id.
const (
	salesBucketKey        = "sales"
	otherRevenueBucketKey = "other"
)

// LineItem is one source row that contributed to a bucket.
type LineItem struct {
	SourceID    uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// Bucket is a named sum with the line items behind it.
type Bucket struct {
	Key        string
	Name       string
	CategoryID *uuid.UUID
	Total      decimal.Decimal
	Items      []LineItem
}

func (b *Bucket) add(item LineItem) {
	b.Total = b.Total.Add(item.Amount)
	b.Items = append(b.Items, item)
}

// Ratios holds income statement percentages over gross revenue.
type Ratios struct {
	ContributionMargin float64
	NetMargin          float64
	ExpenseRatio       float64
	FixedCostRatio     float64
}

// DREResult is the income statement of a company for one date range.
type DREResult struct {
	Range              valueobject.DateRange
	RevenueBuckets     []Bucket
	OperatingExpenses  Bucket
	FixedCosts         Bucket
	GrossRevenue       decimal.Decimal
	OperatingExpense   decimal.Decimal
	ContributionMargin decimal.Decimal
	FixedCost          decimal.Decimal
	NetResult          decimal.Decimal
	Ratios             Ratios

	// UnclassifiedVariableCost holds expenses classified as variable cost.
	// They are reported here and kept out of every line of the statement.
	UnclassifiedVariableCost Bucket
}

// Aggregate builds the income statement for r from ledger entries, sales
// orders and the company's categories. It never fails and does not mutate
// its inputs. Rows outside r and cancelled rows are ignored, so callers may
// pass wider row sets than the range.
func Aggregate(
	entries []*entity.LedgerEntry,
	orders []*entity.SalesOrder,
	categories []*entity.Category,
	r valueobject.DateRange,
) DREResult {
	categoryByID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	result := DREResult{
		Range:                    r,
		OperatingExpenses:        Bucket{Key: string(entity.DREClassificationOperatingExpense), Name: BucketOperatingExpense},
		FixedCosts:               Bucket{Key: string(entity.DREClassificationFixedCost), Name: BucketFixedCost},
		UnclassifiedVariableCost: Bucket{Key: string(entity.DREClassificationVariableCost), Name: BucketVariableCost},
	}

	revenue := newBucketList()

	for _, o := range orders {
		if !o.Status.CountsAsRevenue() || !r.Contains(o.OrderDate) {
			continue
		}
		revenue.get(salesBucketKey, BucketSales, nil).add(LineItem{
			SourceID:    o.ID,
			Description: fmt.Sprintf("Pedido #%d", o.Number),
			Amount:      o.Total,
			Date:        o.OrderDate,
		})
	}

	for _, e := range entries {
		if e.Status == entity.EntryStatusCancelled || !r.Contains(e.TransactionDate) {
			continue
		}
		item := LineItem{
			SourceID:    e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        e.TransactionDate,
		}
		category := lookupCategory(categoryByID, e.CategoryID)

		switch e.Type {
		case entity.EntryTypeRevenue:
			if category == nil {
				revenue.get(otherRevenueBucketKey, BucketOtherRevenue, nil).add(item)
				continue
			}
			id := category.ID
			revenue.get(id.String(), category.Name, &id).add(item)
		case entity.EntryTypeExpense:
			switch category.Classification() {
			case "", entity.DREClassificationOperatingExpense:
				result.OperatingExpenses.add(item)
			case entity.DREClassificationFixedCost:
				result.FixedCosts.add(item)
			default:
				result.UnclassifiedVariableCost.add(item)
			}
		}
	}

	result.RevenueBuckets = revenue.buckets()
	for _, b := range result.RevenueBuckets {
		result.GrossRevenue = result.GrossRevenue.Add(b.Total)
	}
	result.OperatingExpense = result.OperatingExpenses.Total
	result.FixedCost = result.FixedCosts.Total
	result.ContributionMargin = result.GrossRevenue.Sub(result.OperatingExpense)
	result.NetResult = result.ContributionMargin.Sub(result.FixedCost)

	result.Ratios = Ratios{
		ContributionMargin: percentOf(result.ContributionMargin, result.GrossRevenue),
		NetMargin:          percentOf(result.NetResult, result.GrossRevenue),
		ExpenseRatio:       percentOf(result.OperatingExpense, result.GrossRevenue),
		FixedCostRatio:     percentOf(result.FixedCost, result.GrossRevenue),
	}

	return result
}

// Bucket returns the revenue bucket with the given name.
func (r DREResult) Bucket(name string) (Bucket, bool) {
	for _, b := range r.RevenueBuckets {
		if b.Name == name {
			return b, true
		}
	}
	return Bucket{}, false
}

// TotalExpense returns every non-cancelled expense in the range, variable cost included.
func (r DREResult) TotalExpense() decimal.Decimal {
	return r.OperatingExpense.Add(r.FixedCost).Add(r.UnclassifiedVariableCost.Total)
}

// lookupCategory resolves a category id; unknown ids resolve to nil.
func lookupCategory(byID map[uuid.UUID]*entity.Category, id *uuid.UUID) *entity.Category {
	if id == nil {
		return nil
	}
	return byID[*id]
}

// percentOf returns x / total * 100 rounded to two places, or 0 when total is zero.
func percentOf(x, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return x.Div(total).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

// bucketList keeps buckets in first-seen order.
type bucketList struct {
	order []string
	byKey map[string]*Bucket
}

func newBucketList() *bucketList {
	return &bucketList{byKey: make(map[string]*Bucket)}
}

func (l *bucketList) get(key, name string, categoryID *uuid.UUID) *Bucket {
	if b, ok := l.byKey[key]; ok {
		return b
	}
	b := &Bucket{Key: key, Name: name, CategoryID: categoryID}
	l.byKey[key] = b
	l.order = append(l.order, key)
	return b
}

func (l *bucketList) buckets() []Bucket {
	out := make([]Bucket, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, *l.byKey[key])
	}
	return out
}
