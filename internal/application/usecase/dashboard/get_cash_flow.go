package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// GetCashFlowInput represents the input for the cash flow series.
type GetCashFlowInput struct {
	Session     entity.Session
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
}

// GetCashFlowUseCase handles building the cash flow series.
type GetCashFlowUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetCashFlowUseCase creates a new GetCashFlowUseCase instance.
func NewGetCashFlowUseCase(dashboardRepo DashboardRepository) *GetCashFlowUseCase {
	return &GetCashFlowUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute retrieves settled entries of the range and buckets them per period.
func (uc *GetCashFlowUseCase) Execute(ctx context.Context, input GetCashFlowInput) (*CashFlow, error) {
	r, err := validateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	granularity := input.Granularity
	if granularity == "" {
		granularity = GranularityDaily
	}
	if !granularity.IsValid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be: daily, weekly, or monthly",
			domainerror.ErrInvalidGranularity,
		)
	}

	entries, err := uc.dashboardRepo.ListSettledEntries(ctx, input.Session.CompanyID, r)
	if err != nil {
		return nil, fmt.Errorf("failed to load settled entries: %w", err)
	}

	flow := BuildCashFlow(entries, r, granularity)
	return &flow, nil
}
