package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence/model"
)

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(model.ProductFromEntity(product)).Error
}

// FindByID retrieves a product of the company by ID.
func (r *productRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// FindByIDs retrieves the products of the company among the given IDs.
func (r *productRepository) FindByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND id IN ?", companyID, ids).
		Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.Product, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntity()
	}
	return products, nil
}

// List retrieves the products of a company ordered by name.
func (r *productRepository) List(ctx context.Context, companyID uuid.UUID, search string, activeOnly bool) ([]*entity.Product, error) {
	query := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", pattern, pattern)
	}

	var productModels []model.ProductModel
	if err := query.Order("name ASC").Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntity()
	}
	return products, nil
}

// ExistsBySKU checks if the company already has a product with the SKU.
func (r *productRepository) ExistsBySKU(ctx context.Context, companyID uuid.UUID, sku string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("company_id = ? AND LOWER(sku) = ?", companyID, strings.ToLower(sku))
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an existing product in the database.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(model.ProductFromEntity(product)).Error
}

// Delete removes a product of the company.
func (r *productRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ? AND company_id = ?", id, companyID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}
