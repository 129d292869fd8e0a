package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// GetDREInput represents the input for the income statement.
type GetDREInput struct {
	Session   entity.Session
	StartDate time.Time
	EndDate   time.Time
	Basis     Basis
}

// GetDREOutput represents the income statement of a period.
type GetDREOutput struct {
	Basis Basis
	DRE   DREResult
}

// GetDREUseCase handles building the income statement of a period.
type GetDREUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetDREUseCase creates a new GetDREUseCase instance.
func NewGetDREUseCase(dashboardRepo DashboardRepository) *GetDREUseCase {
	return &GetDREUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute loads the period rows of the session's company and aggregates them.
func (uc *GetDREUseCase) Execute(ctx context.Context, input GetDREInput) (*GetDREOutput, error) {
	r, err := validateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
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

	slog.Debug("DRE computed",
		"company_id", input.Session.CompanyID,
		"range", r.String(),
		"basis", basis,
		"entries", len(data.entries),
		"orders", len(data.orders),
	)

	return &GetDREOutput{Basis: basis, DRE: dre}, nil
}
