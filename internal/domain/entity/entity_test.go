package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSalesOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		from SalesOrderStatus
		to   SalesOrderStatus
		want bool
	}{
		{SalesOrderStatusDraft, SalesOrderStatusConfirmed, true},
		{SalesOrderStatusDraft, SalesOrderStatusCancelled, true},
		{SalesOrderStatusDraft, SalesOrderStatusDelivered, false},
		{SalesOrderStatusConfirmed, SalesOrderStatusDelivered, true},
		{SalesOrderStatusConfirmed, SalesOrderStatusCancelled, true},
		{SalesOrderStatusConfirmed, SalesOrderStatusDraft, false},
		{SalesOrderStatusDelivered, SalesOrderStatusCancelled, false},
		{SalesOrderStatusCancelled, SalesOrderStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSalesOrder_Total(t *testing.T) {
	items := []SalesOrderItem{
		{Description: "Camiseta", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.RequireFromString("49.90")},
		{Description: "Boné", Quantity: decimal.RequireFromString("1.5"), UnitPrice: decimal.NewFromInt(20)},
	}

	order := NewSalesOrder(uuid.New(), nil, time.Now(), decimal.RequireFromString("9.70"), "", items, uuid.New())

	if !order.Total.Equal(decimal.NewFromInt(170)) {
		t.Errorf("expected total 170, got %s", order.Total)
	}
	if order.Status != SalesOrderStatusDraft {
		t.Errorf("expected draft, got %s", order.Status)
	}
	for _, item := range order.Items {
		if item.OrderID != order.ID {
			t.Error("expected items to reference the order")
		}
	}

	big := NewSalesOrder(uuid.New(), nil, time.Now(), decimal.NewFromInt(1000), "", items, uuid.New())
	if !big.Total.IsZero() {
		t.Errorf("expected discount larger than items to floor at zero, got %s", big.Total)
	}
}

func TestSalesOrder_TransitionTo(t *testing.T) {
	order := NewSalesOrder(uuid.New(), nil, time.Now(), decimal.Zero, "", nil, uuid.New())
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	if order.TransitionTo(SalesOrderStatusDelivered, at) {
		t.Fatal("expected draft to refuse delivery")
	}
	if !order.TransitionTo(SalesOrderStatusConfirmed, at) || order.ConfirmedAt == nil {
		t.Fatal("expected confirmation to be stamped")
	}
	if !order.TransitionTo(SalesOrderStatusDelivered, at) || order.DeliveredAt == nil {
		t.Fatal("expected delivery to be stamped")
	}
	if order.TransitionTo(SalesOrderStatusCancelled, at) {
		t.Error("expected delivered order to be terminal")
	}
}

func TestLedgerEntry_Settle(t *testing.T) {
	revenue := NewLedgerEntry(uuid.New(), EntryTypeRevenue, "Venda", decimal.NewFromInt(10), time.Now(), time.Now(), nil, nil, "", uuid.New())
	expense := NewLedgerEntry(uuid.New(), EntryTypeExpense, "Luz", decimal.NewFromInt(10), time.Now(), time.Now(), nil, nil, "", uuid.New())
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	revenue.Settle(at)
	expense.Settle(at)

	if revenue.Status != EntryStatusReceived {
		t.Errorf("expected revenue to be received, got %s", revenue.Status)
	}
	if expense.Status != EntryStatusPaid {
		t.Errorf("expected expense to be paid, got %s", expense.Status)
	}
	if !revenue.CashDate().Equal(at) {
		t.Errorf("expected cash date %s, got %s", at, revenue.CashDate())
	}
}

func TestLedgerEntry_IsOverdueOn(t *testing.T) {
	due := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	entry := NewLedgerEntry(uuid.New(), EntryTypeExpense, "Aluguel", decimal.NewFromInt(1), due, due, nil, nil, "", uuid.New())

	if entry.IsOverdueOn(time.Date(2024, 5, 10, 23, 0, 0, 0, time.UTC)) {
		t.Error("expected entry due today not to be overdue")
	}
	if !entry.IsOverdueOn(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected entry to be overdue the day after")
	}

	entry.Cancel()
	if entry.IsOverdueOn(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected cancelled entry never to be overdue")
	}
}

func TestNewCategory_ClassificationOnlyOnExpense(t *testing.T) {
	fixed := ClassificationPtr(DREClassificationFixedCost)

	revenue := NewCategory(uuid.New(), "Serviços", "", CategoryTypeRevenue, fixed)
	if revenue.DREClassification != nil {
		t.Error("expected revenue category to drop the classification")
	}
	if revenue.Color != DefaultCategoryColor {
		t.Errorf("expected default color, got %s", revenue.Color)
	}

	expense := NewCategory(uuid.New(), "Aluguel", "#000000", CategoryTypeExpense, fixed)
	if expense.Classification() != DREClassificationFixedCost {
		t.Errorf("expected fixed cost, got %q", expense.Classification())
	}
}

func TestEmailJob_MarkFailed(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("temporary failure is rescheduled", func(t *testing.T) {
		job := NewEmailJob(TemplateNotification, "a@b.com", "A", "s", nil)
		job.MarkFailed(errors.New("timeout"), false, at)

		if job.Status != EmailStatusPending {
			t.Errorf("expected pending, got %s", job.Status)
		}
		if !job.ScheduledAt.Equal(at.Add(time.Minute)) {
			t.Errorf("expected retry in one minute, got %s", job.ScheduledAt)
		}
	})

	t.Run("permanent failure closes the job", func(t *testing.T) {
		job := NewEmailJob(TemplateNotification, "a@b.com", "A", "s", nil)
		job.MarkFailed(errors.New("422"), true, at)

		if job.Status != EmailStatusFailed || job.ProcessedAt == nil {
			t.Errorf("expected failed job with processed time, got %s", job.Status)
		}
	})

	t.Run("attempts are bounded", func(t *testing.T) {
		job := NewEmailJob(TemplateNotification, "a@b.com", "A", "s", nil)
		for i := 0; i < job.MaxAttempts; i++ {
			job.MarkFailed(errors.New("timeout"), false, at)
		}
		if job.Status != EmailStatusFailed {
			t.Errorf("expected failed after %d attempts, got %s", job.MaxAttempts, job.Status)
		}
	})
}
