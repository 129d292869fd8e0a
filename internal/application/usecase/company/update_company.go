package company

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// UpdateCompanyInput represents the input for company update. Nil fields are left unchanged.
type UpdateCompanyInput struct {
	Session   entity.Session
	Name      *string
	TradeName *string
	Document  *string
	Email     *string
	Phone     *string
}

// UpdateCompanyUseCase changes company settings. Only owners and admins may call it.
type UpdateCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
	get         *GetCompanyUseCase
}

// NewUpdateCompanyUseCase creates a new UpdateCompanyUseCase instance.
func NewUpdateCompanyUseCase(companyRepo adapter.CompanyRepository) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
		get:         NewGetCompanyUseCase(companyRepo),
	}
}

// Execute performs the company update.
func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, input UpdateCompanyInput) (*entity.Company, error) {
	company, err := uc.get.Execute(ctx, input.Session)
	if err != nil {
		return nil, err
	}

	if !input.Session.CanManageCompany() {
		return nil, domainerror.NewCompanyError(
			domainerror.ErrCodeNotAuthorizedCompany,
			"only owners and admins can change company settings",
			domainerror.ErrNotAuthorizedToManageCompany,
		)
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		company.Name = name
	}
	if input.Document != nil {
		document, err := normalizeDocument(*input.Document)
		if err != nil {
			return nil, err
		}
		company.Document = document
	}
	if input.TradeName != nil {
		company.TradeName = strings.TrimSpace(*input.TradeName)
	}
	if input.Email != nil {
		company.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		company.Phone = strings.TrimSpace(*input.Phone)
	}
	company.UpdatedAt = time.Now().UTC()

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}
