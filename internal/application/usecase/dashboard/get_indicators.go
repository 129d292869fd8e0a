package dashboard

import (
	"context"
	"time"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// GetIndicatorsInput represents the input for the headline indicators.
type GetIndicatorsInput struct {
	Session   entity.Session
	StartDate time.Time
	EndDate   time.Time
	Basis     Basis
}

// GetIndicatorsUseCase handles computing the headline indicators.
type GetIndicatorsUseCase struct {
	dashboardRepo DashboardRepository
	clock         Clock
}

// NewGetIndicatorsUseCase creates a new GetIndicatorsUseCase instance.
func NewGetIndicatorsUseCase(dashboardRepo DashboardRepository, clock Clock) *GetIndicatorsUseCase {
	if clock == nil {
		clock = SystemClock
	}
	return &GetIndicatorsUseCase{
		dashboardRepo: dashboardRepo,
		clock:         clock,
	}
}

// Execute computes indicators of the period plus the current open balances.
func (uc *GetIndicatorsUseCase) Execute(ctx context.Context, input GetIndicatorsInput) (*Indicators, error) {
	r, err := validateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	basis, err := normalizeBasis(input.Basis)
	if err != nil {
		return nil, err
	}

	data, err := loadPeriod(ctx, uc.dashboardRepo, input.Session.CompanyID, r, basis, true)
	if err != nil {
		return nil, err
	}

	dre := Aggregate(data.entries, data.orders, data.categories, r)
	indicators := ComputeIndicators(dre, data.open, data.orders, uc.clock.Now().UTC())
	return &indicators, nil
}
