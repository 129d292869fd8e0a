package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// GetCompanyUseCase returns the caller's company.
type GetCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewGetCompanyUseCase creates a new GetCompanyUseCase instance.
func NewGetCompanyUseCase(companyRepo adapter.CompanyRepository) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
	}
}

// Execute loads the company bound to the session.
func (uc *GetCompanyUseCase) Execute(ctx context.Context, session entity.Session) (*entity.Company, error) {
	if !session.HasCompany() {
		return nil, domainerror.NewCompanyError(
			domainerror.ErrCodeCompanyRequired,
			"create a company first",
			domainerror.ErrCompanyRequired,
		)
	}

	company, err := uc.companyRepo.FindByID(ctx, session.CompanyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCompanyNotFound) {
			return nil, domainerror.NewCompanyError(
				domainerror.ErrCodeCompanyNotFound,
				"company not found",
				domainerror.ErrCompanyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return company, nil
}
