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

// personRepository implements the adapter.PersonRepository interface.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository instance.
func NewPersonRepository(db *gorm.DB) adapter.PersonRepository {
	return &personRepository{
		db: db,
	}
}

// Create creates a new person in the database.
func (r *personRepository) Create(ctx context.Context, person *entity.Person) error {
	return r.db.WithContext(ctx).Create(model.PersonFromEntity(person)).Error
}

// FindByID retrieves a person of the company by ID.
func (r *personRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.Person, error) {
	var personModel model.PersonModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&personModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPersonNotFound
		}
		return nil, result.Error
	}
	return personModel.ToEntity(), nil
}

// List retrieves the people of a company ordered by name.
// The role filter is applied after loading since roles are stored as an array.
func (r *personRepository) List(ctx context.Context, filter adapter.PersonFilter) ([]*entity.Person, error) {
	query := r.db.WithContext(ctx).Where("company_id = ?", filter.CompanyID)

	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR document LIKE ?", pattern, pattern)
	}

	var personModels []model.PersonModel
	if err := query.Order("name ASC").Find(&personModels).Error; err != nil {
		return nil, err
	}

	people := make([]*entity.Person, 0, len(personModels))
	for i := range personModels {
		person := personModels[i].ToEntity()
		if filter.Role != nil && !person.HasRole(*filter.Role) {
			continue
		}
		people = append(people, person)
	}
	return people, nil
}

// Update updates an existing person in the database.
func (r *personRepository) Update(ctx context.Context, person *entity.Person) error {
	return r.db.WithContext(ctx).Save(model.PersonFromEntity(person)).Error
}

// Delete removes a person of the company.
func (r *personRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PersonModel{}, "id = ? AND company_id = ?", id, companyID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPersonNotFound
	}
	return nil
}
