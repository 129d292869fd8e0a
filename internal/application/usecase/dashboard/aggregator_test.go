package dashboard

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

func TestAggregate_UncategorizedRevenueGoesToOtherRevenue(t *testing.T) {
	r := mustRange("2024-01-01", "2024-01-31")
	entries := []*entity.LedgerEntry{revenueEntry("1000", "2024-01-15", nil)}

	result := Aggregate(entries, nil, nil, r)

	if !result.GrossRevenue.Equal(dec("1000")) {
		t.Errorf("expected gross revenue 1000, got %s", result.GrossRevenue)
	}
	bucket, ok := result.Bucket(BucketOtherRevenue)
	if !ok {
		t.Fatal("expected Other Revenue bucket")
	}
	if !bucket.Total.Equal(dec("1000")) {
		t.Errorf("expected Other Revenue 1000, got %s", bucket.Total)
	}
	if len(bucket.Items) != 1 {
		t.Errorf("expected one line item, got %d", len(bucket.Items))
	}
}

func TestAggregate_FixedCostReducesNetResult(t *testing.T) {
	r := mustRange("2024-01-01", "2024-01-31")
	rent := expenseCategory("Aluguel", entity.DREClassificationFixedCost)
	entries := []*entity.LedgerEntry{expenseEntry("200", "2024-01-05", &rent.ID)}

	result := Aggregate(entries, nil, []*entity.Category{rent}, r)

	if !result.FixedCost.Equal(dec("200")) {
		t.Errorf("expected fixed cost 200, got %s", result.FixedCost)
	}
	if !result.OperatingExpense.IsZero() {
		t.Errorf("expected operating expense 0, got %s", result.OperatingExpense)
	}
	if !result.NetResult.Equal(dec("-200")) {
		t.Errorf("expected net result -200, got %s", result.NetResult)
	}
}

func TestAggregate_ExpenseClassification(t *testing.T) {
	r := mustRange("2024-01-01", "2024-01-31")
	marketing := expenseCategory("Marketing", entity.DREClassificationOperatingExpense)
	unclassified := expenseCategory("Diversos", "")
	rawMaterial := expenseCategory("Matéria-prima", entity.DREClassificationVariableCost)
	unknown := uuid.New()

	tests := []struct {
		name          string
		categoryID    *uuid.UUID
		wantOperating string
		wantFixed     string
		wantVariable  string
	}{
		{name: "no category", categoryID: nil, wantOperating: "50", wantFixed: "0", wantVariable: "0"},
		{name: "unknown category", categoryID: &unknown, wantOperating: "50", wantFixed: "0", wantVariable: "0"},
		{name: "no classification", categoryID: &unclassified.ID, wantOperating: "50", wantFixed: "0", wantVariable: "0"},
		{name: "operating expense", categoryID: &marketing.ID, wantOperating: "50", wantFixed: "0", wantVariable: "0"},
		{name: "variable cost is kept out of the statement", categoryID: &rawMaterial.ID, wantOperating: "0", wantFixed: "0", wantVariable: "50"},
	}

	categories := []*entity.Category{marketing, unclassified, rawMaterial}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []*entity.LedgerEntry{expenseEntry("50", "2024-01-10", tt.categoryID)}

			result := Aggregate(entries, nil, categories, r)

			if !result.OperatingExpense.Equal(dec(tt.wantOperating)) {
				t.Errorf("operating expense = %s, want %s", result.OperatingExpense, tt.wantOperating)
			}
			if !result.FixedCost.Equal(dec(tt.wantFixed)) {
				t.Errorf("fixed cost = %s, want %s", result.FixedCost, tt.wantFixed)
			}
			if !result.UnclassifiedVariableCost.Total.Equal(dec(tt.wantVariable)) {
				t.Errorf("variable cost = %s, want %s", result.UnclassifiedVariableCost.Total, tt.wantVariable)
			}
		})
	}
}

func TestAggregate_SalesOrders(t *testing.T) {
	r := mustRange("2024-01-01", "2024-01-31")
	orders := []*entity.SalesOrder{
		order("300", "2024-01-02", entity.SalesOrderStatusConfirmed),
		order("200", "2024-01-20", entity.SalesOrderStatusDelivered),
		order("999", "2024-01-03", entity.SalesOrderStatusDraft),
		order("999", "2024-01-04", entity.SalesOrderStatusCancelled),
		order("999", "2024-02-01", entity.SalesOrderStatusDelivered),
	}
	entries := []*entity.LedgerEntry{revenueEntry("100", "2024-01-10", nil)}

	result := Aggregate(entries, orders, nil, r)

	if len(result.RevenueBuckets) != 2 {
		t.Fatalf("expected 2 revenue buckets, got %d", len(result.RevenueBuckets))
	}
	if result.RevenueBuckets[0].Name != BucketSales {
		t.Errorf("expected Sales to be the first bucket, got %s", result.RevenueBuckets[0].Name)
	}
	if !result.RevenueBuckets[0].Total.Equal(dec("500")) {
		t.Errorf("expected Sales 500, got %s", result.RevenueBuckets[0].Total)
	}
	if !result.GrossRevenue.Equal(dec("600")) {
		t.Errorf("expected gross revenue 600, got %s", result.GrossRevenue)
	}
}

func TestAggregate_RevenueBucketsByCategory(t *testing.T) {
	r := mustRange("2024-01-01", "2024-01-31")
	services := entity.NewCategory(uuid.Nil, "Serviços", "", entity.CategoryTypeRevenue, nil)
	entries := []*entity.LedgerEntry{
		revenueEntry("100", "2024-01-01", &services.ID),
		revenueEntry("40", "2024-01-02", nil),
		revenueEntry("60", "2024-01-31", &services.ID),
	}

	result := Aggregate(entries, nil, []*entity.Category{services}, r)

	bucket, ok := result.Bucket("Serviços")
	if !ok {
		t.Fatal("expected Serviços bucket")
	}
	if !bucket.Total.Equal(dec("160")) || len(bucket.Items) != 2 {
		t.Errorf("expected Serviços 160 with 2 items, got %s with %d", bucket.Total, len(bucket.Items))
	}
	if bucket.CategoryID == nil || *bucket.CategoryID != services.ID {
		t.Error("expected bucket to carry the category id")
	}
	if result.RevenueBuckets[1].Name != BucketOtherRevenue {
		t.Errorf("expected buckets in first-seen order, got %s second", result.RevenueBuckets[1].Name)
	}
}

func TestAggregate_SkipsCancelledAndOutOfRange(t *testing.T) {
	r := mustRange("2024-01-01", "2024-01-31")
	cancelled := revenueEntry("500", "2024-01-10", nil)
	cancelled.Cancel()
	entries := []*entity.LedgerEntry{
		cancelled,
		revenueEntry("700", "2023-12-31", nil),
		revenueEntry("800", "2024-02-01", nil),
	}

	result := Aggregate(entries, nil, nil, r)

	if !result.GrossRevenue.IsZero() {
		t.Errorf("expected gross revenue 0, got %s", result.GrossRevenue)
	}
	if len(result.RevenueBuckets) != 0 {
		t.Errorf("expected no buckets, got %d", len(result.RevenueBuckets))
	}
}

func TestAggregate_RatiosAreZeroWithoutRevenue(t *testing.T) {
	r := mustRange("2024-01-01", "2024-01-31")
	entries := []*entity.LedgerEntry{expenseEntry("120", "2024-01-10", nil)}

	result := Aggregate(entries, nil, nil, r)

	if result.Ratios != (Ratios{}) {
		t.Errorf("expected all ratios to be 0, got %+v", result.Ratios)
	}
}

func TestAggregate_Ratios(t *testing.T) {
	r := mustRange("2024-01-01", "2024-01-31")
	rent := expenseCategory("Aluguel", entity.DREClassificationFixedCost)
	entries := []*entity.LedgerEntry{
		revenueEntry("1000", "2024-01-10", nil),
		expenseEntry("250", "2024-01-10", nil),
		expenseEntry("150", "2024-01-10", &rent.ID),
	}

	result := Aggregate(entries, nil, []*entity.Category{rent}, r)

	want := Ratios{ContributionMargin: 75, NetMargin: 60, ExpenseRatio: 25, FixedCostRatio: 15}
	if result.Ratios != want {
		t.Errorf("ratios = %+v, want %+v", result.Ratios, want)
	}
	if !result.ContributionMargin.Equal(dec("750")) || !result.NetResult.Equal(dec("600")) {
		t.Errorf("unexpected margins %s / %s", result.ContributionMargin, result.NetResult)
	}
}

func TestAggregate_Properties(t *testing.T) {
	r := mustRange("2024-03-01", "2024-03-31")
	fixed := expenseCategory("Salários", entity.DREClassificationFixedCost)
	variable := expenseCategory("Matéria-prima", entity.DREClassificationVariableCost)
	categories := []*entity.Category{fixed, variable}

	inputs := [][]*entity.LedgerEntry{
		nil,
		{revenueEntry("0.10", "2024-03-01", nil), revenueEntry("0.20", "2024-03-02", nil)},
		{revenueEntry("10", "2024-03-05", nil), expenseEntry("35.55", "2024-03-06", &fixed.ID)},
		{expenseEntry("9", "2024-03-07", &variable.ID), expenseEntry("1", "2024-03-08", nil)},
	}

	for i, entries := range inputs {
		first := Aggregate(entries, nil, categories, r)
		second := Aggregate(entries, nil, categories, r)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("input %d: expected identical results on repeated calls", i)
		}
		if first.GrossRevenue.IsNegative() {
			t.Errorf("input %d: gross revenue is negative", i)
		}
		identity := first.GrossRevenue.Sub(first.OperatingExpense).Sub(first.FixedCost)
		if !first.NetResult.Equal(identity) || !first.NetResult.Equal(first.ContributionMargin.Sub(first.FixedCost)) {
			t.Errorf("input %d: net result %s does not match identity %s", i, first.NetResult, identity)
		}
	}

	sums := Aggregate(inputs[1], nil, categories, r)
	if !sums.GrossRevenue.Equal(dec("0.3")) {
		t.Errorf("expected exact decimal sum 0.3, got %s", sums.GrossRevenue)
	}
}
