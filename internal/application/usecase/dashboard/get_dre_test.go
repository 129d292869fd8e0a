package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

func testSession() entity.Session {
	return entity.Session{UserID: uuid.New(), CompanyID: uuid.New(), Role: entity.UserRoleOwner}
}

func TestGetDREUseCase_Validation(t *testing.T) {
	uc := NewGetDREUseCase(&fakeRepository{})

	tests := []struct {
		name     string
		input    GetDREInput
		wantCode domainerror.DashboardErrorCode
	}{
		{name: "missing start", input: GetDREInput{EndDate: day("2024-01-31")}, wantCode: domainerror.ErrCodeMissingStartDate},
		{name: "missing end", input: GetDREInput{StartDate: day("2024-01-01")}, wantCode: domainerror.ErrCodeMissingEndDate},
		{name: "inverted range", input: GetDREInput{StartDate: day("2024-02-01"), EndDate: day("2024-01-01")}, wantCode: domainerror.ErrCodeInvalidDateRange},
		{name: "range too long", input: GetDREInput{StartDate: day("1000-01-01"), EndDate: day("2024-12-31")}, wantCode: domainerror.ErrCodeRangeTooLong},
		{name: "one day past the limit", input: GetDREInput{StartDate: day("2020-01-01"), EndDate: day("2025-01-01")}, wantCode: domainerror.ErrCodeRangeTooLong},
		{name: "unknown basis", input: GetDREInput{StartDate: day("2024-01-01"), EndDate: day("2024-01-31"), Basis: "accrual"}, wantCode: domainerror.ErrCodeInvalidBasis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Session = testSession()
			_, err := uc.Execute(context.Background(), tt.input)

			var dashErr *domainerror.DashboardError
			if !errors.As(err, &dashErr) {
				t.Fatalf("expected DashboardError, got %v", err)
			}
			if dashErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", dashErr.Code, tt.wantCode)
			}
		})
	}
}

func TestValidateRange_AcceptsFiveYears(t *testing.T) {
	r, err := validateRange(day("2020-01-01"), day("2024-12-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Days() != MaxRangeDays {
		t.Errorf("Days() = %d, want %d", r.Days(), MaxRangeDays)
	}
}

func TestGetDREUseCase_CashBasisCountsSettledOnly(t *testing.T) {
	received := revenueEntry("400", "2024-01-10", nil)
	received.Settle(day("2024-01-11"))
	repo := &fakeRepository{
		entries: []*entity.LedgerEntry{received, revenueEntry("600", "2024-01-12", nil)},
	}
	uc := NewGetDREUseCase(repo)

	tests := []struct {
		basis Basis
		want  string
	}{
		{basis: "", want: "1000"},
		{basis: BasisCash, want: "400"},
	}

	for _, tt := range tests {
		t.Run(string(tt.basis), func(t *testing.T) {
			out, err := uc.Execute(context.Background(), GetDREInput{
				Session:   testSession(),
				StartDate: day("2024-01-01"),
				EndDate:   day("2024-01-31"),
				Basis:     tt.basis,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.DRE.GrossRevenue.Equal(dec(tt.want)) {
				t.Errorf("gross revenue = %s, want %s", out.DRE.GrossRevenue, tt.want)
			}
		})
	}
}

func TestGetDREUseCase_RepositoryFailure(t *testing.T) {
	repoErr := errors.New("connection refused")
	uc := NewGetDREUseCase(&fakeRepository{err: repoErr})

	_, err := uc.Execute(context.Background(), GetDREInput{
		Session:   testSession(),
		StartDate: day("2024-01-01"),
		EndDate:   day("2024-01-31"),
	})
	if !errors.Is(err, repoErr) {
		t.Errorf("expected wrapped repository error, got %v", err)
	}
}

func TestGetEstimateUseCase_DefaultsToCurrentMonth(t *testing.T) {
	repo := &fakeRepository{
		entries: []*entity.LedgerEntry{
			revenueEntry("1000", "2024-04-05", nil),
			expenseEntry("200", "2024-04-06", nil),
			revenueEntry("5000", "2024-03-31", nil),
		},
	}
	clock := fixedClock{now: time.Date(2024, 4, 10, 15, 0, 0, 0, time.UTC)}
	uc := NewGetEstimateUseCase(repo, clock)

	out, err := uc.Execute(context.Background(), GetEstimateInput{Session: testSession()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Range.String() != "2024-04-01..2024-04-30" {
		t.Errorf("unexpected range %s", out.Range)
	}
	if !out.Revenue.EstimatedTotal.Equal(dec("3000")) {
		t.Errorf("estimated revenue = %s, want 3000", out.Revenue.EstimatedTotal)
	}
	if !out.Expense.EstimatedTotal.Equal(dec("600")) {
		t.Errorf("estimated expense = %s, want 600", out.Expense.EstimatedTotal)
	}
	if !out.EstimatedResult.Equal(dec("2400")) {
		t.Errorf("estimated result = %s, want 2400", out.EstimatedResult)
	}
}

func TestGetCashFlowUseCase_RejectsUnknownGranularity(t *testing.T) {
	uc := NewGetCashFlowUseCase(&fakeRepository{})

	_, err := uc.Execute(context.Background(), GetCashFlowInput{
		Session:     testSession(),
		StartDate:   day("2024-01-01"),
		EndDate:     day("2024-01-31"),
		Granularity: "quarterly",
	})

	if !errors.Is(err, domainerror.ErrInvalidGranularity) {
		t.Errorf("expected ErrInvalidGranularity, got %v", err)
	}
}
