package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// GetEstimateInput represents the input for the month-end projection.
// Without dates the projection covers the current calendar month.
type GetEstimateInput struct {
	Session   entity.Session
	StartDate time.Time
	EndDate   time.Time
	Basis     Basis
}

// GetEstimateOutput represents projected revenue, expense and result.
type GetEstimateOutput struct {
	Range           valueobject.DateRange
	Today           time.Time
	Revenue         EstimateResult
	Expense         EstimateResult
	EstimatedResult decimal.Decimal
}

// GetEstimateUseCase handles projecting the running period to its end.
type GetEstimateUseCase struct {
	dashboardRepo DashboardRepository
	clock         Clock
}

// NewGetEstimateUseCase creates a new GetEstimateUseCase instance.
func NewGetEstimateUseCase(dashboardRepo DashboardRepository, clock Clock) *GetEstimateUseCase {
	if clock == nil {
		clock = SystemClock
	}
	return &GetEstimateUseCase{
		dashboardRepo: dashboardRepo,
		clock:         clock,
	}
}

// Execute projects revenue and expense accumulated so far over the whole range.
func (uc *GetEstimateUseCase) Execute(ctx context.Context, input GetEstimateInput) (*GetEstimateOutput, error) {
	today := uc.clock.Now().UTC()

	r := valueobject.MonthOf(today)
	if !input.StartDate.IsZero() || !input.EndDate.IsZero() {
		var err error
		if r, err = validateRange(input.StartDate, input.EndDate); err != nil {
			return nil, err
		}
	}
	basis, err := normalizeBasis(input.Basis)
	if err != nil {
		return nil, err
	}

	data, err := loadPeriod(ctx, uc.dashboardRepo, input.Session.CompanyID, r, basis, false)
	if err != nil {
		return nil, err
	}

	dre := Aggregate(data.entries, data.orders, data.categories, r)
	revenue := Estimate(dre.GrossRevenue, r, today)
	expense := Estimate(dre.TotalExpense(), r, today)

	return &GetEstimateOutput{
		Range:           r,
		Today:           today,
		Revenue:         revenue,
		Expense:         expense,
		EstimatedResult: revenue.EstimatedTotal.Sub(expense.EstimatedTotal),
	}, nil
}
