package product

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, companyID, id uuid.UUID) (*entity.Product, error) {
	if p, ok := r.products[id]; ok && p.CompanyID == companyID {
		return p, nil
	}
	return nil, domainerror.ErrProductNotFound
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok && p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) List(_ context.Context, companyID uuid.UUID, _ string, activeOnly bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CompanyID == companyID && (!activeOnly || p.Active) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ExistsBySKU(_ context.Context, companyID uuid.UUID, sku string, excludeID *uuid.UUID) (bool, error) {
	for _, p := range r.products {
		if excludeID != nil && p.ID == *excludeID {
			continue
		}
		if p.CompanyID == companyID && strings.EqualFold(p.SKU, sku) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func productCode(err error) domainerror.ProductErrorCode {
	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		return productErr.Code
	}
	return ""
}

func TestCreateProductUseCase(t *testing.T) {
	session := entity.Session{CompanyID: uuid.New()}
	repo := newFakeProductRepo()
	uc := NewCreateProductUseCase(repo)

	bread, err := uc.Execute(context.Background(), CreateProductInput{
		Session: session,
		Name:    "Pão francês",
		SKU:     " pao-01 ",
		Price:   decimal.RequireFromString("0.755"),
		Cost:    decimal.RequireFromString("0.30"),
		Stock:   decimal.NewFromInt(120),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bread.SKU != "PAO-01" {
		t.Errorf("SKU = %q, want PAO-01", bread.SKU)
	}
	if !bread.Price.Equal(decimal.RequireFromString("0.76")) {
		t.Errorf("Price = %s, want 0.76", bread.Price)
	}
	if bread.Unit != "un" {
		t.Errorf("Unit = %q, want default un", bread.Unit)
	}

	tests := []struct {
		name     string
		input    CreateProductInput
		wantCode domainerror.ProductErrorCode
	}{
		{"duplicate sku", CreateProductInput{Name: "Outro", SKU: "PAO-01"}, domainerror.ErrCodeProductSKUExists},
		{"negative price", CreateProductInput{Name: "Outro", Price: decimal.NewFromInt(-1)}, domainerror.ErrCodeInvalidProductPrice},
		{"negative stock", CreateProductInput{Name: "Outro", Stock: decimal.NewFromInt(-1)}, domainerror.ErrCodeInvalidProductStock},
		{"missing name", CreateProductInput{Name: ""}, domainerror.ErrCodeInvalidProductName},
		{"long sku", CreateProductInput{Name: "Outro", SKU: strings.Repeat("X", MaxSKULength+1)}, domainerror.ErrCodeInvalidProductSKU},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			input.Session = session
			_, err := uc.Execute(context.Background(), input)
			if got := productCode(err); got != tt.wantCode {
				t.Fatalf("code = %q, want %q (err = %v)", got, tt.wantCode, err)
			}
		})
	}

	// Another company may reuse the SKU.
	if _, err := uc.Execute(context.Background(), CreateProductInput{Session: entity.Session{CompanyID: uuid.New()}, Name: "Pão", SKU: "PAO-01"}); err != nil {
		t.Fatalf("sku must be unique per company only: %v", err)
	}
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	session := entity.Session{CompanyID: uuid.New()}
	repo := newFakeProductRepo()
	create := NewCreateProductUseCase(repo)
	a, _ := create.Execute(context.Background(), CreateProductInput{Session: session, Name: "A", SKU: "A"})
	b, _ := create.Execute(context.Background(), CreateProductInput{Session: session, Name: "B", SKU: "B"})

	update := NewUpdateProductUseCase(repo)
	sameSKU := "a"
	if _, err := update.Execute(context.Background(), UpdateProductInput{Session: session, ProductID: a.ID, SKU: &sameSKU}); err != nil {
		t.Fatalf("keeping its own sku must be allowed: %v", err)
	}
	taken := "B"
	if _, err := update.Execute(context.Background(), UpdateProductInput{Session: session, ProductID: a.ID, SKU: &taken}); productCode(err) != domainerror.ErrCodeProductSKUExists {
		t.Fatalf("expected sku exists, got %v", err)
	}

	inactive := false
	if _, err := update.Execute(context.Background(), UpdateProductInput{Session: session, ProductID: b.ID, Active: &inactive}); err != nil {
		t.Fatalf("update: %v", err)
	}
	active, _ := NewListProductsUseCase(repo).Execute(context.Background(), ListProductsInput{Session: session, ActiveOnly: true})
	if len(active) != 1 || active[0].ID != a.ID {
		t.Errorf("active products = %v", active)
	}

	del := NewDeleteProductUseCase(repo)
	if err := del.Execute(context.Background(), entity.Session{CompanyID: uuid.New()}, a.ID); productCode(err) != domainerror.ErrCodeProductNotFound {
		t.Fatalf("other tenant cannot delete, got %v", err)
	}
	if err := del.Execute(context.Background(), session, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
