package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence/model"
)

// companyRepository implements the adapter.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository instance.
func NewCompanyRepository(db *gorm.DB) adapter.CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

// CreateWithOwner creates the company, binds the owner and seeds categories atomically.
func (r *companyRepository) CreateWithOwner(ctx context.Context, company *entity.Company, owner *entity.User, categories []*entity.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.CompanyFromEntity(company)).Error; err != nil {
			return err
		}

		result := tx.Model(&model.UserModel{}).
			Where("id = ? AND company_id IS NULL", owner.ID).
			Updates(map[string]any{
				"company_id": company.ID,
				"role":       string(owner.Role),
				"updated_at": owner.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrUserAlreadyHasCompany
		}

		if len(categories) == 0 {
			return nil
		}
		categoryModels := make([]*model.CategoryModel, len(categories))
		for i, c := range categories {
			categoryModels[i] = model.CategoryFromEntity(c)
		}
		return tx.Create(&categoryModels).Error
	})
}

// FindByID retrieves a company by its ID.
func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyModel model.CompanyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&companyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCompanyNotFound
		}
		return nil, result.Error
	}
	return companyModel.ToEntity(), nil
}

// Update updates an existing company in the database.
func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Save(model.CompanyFromEntity(company)).Error
}
