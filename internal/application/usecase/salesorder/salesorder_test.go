package salesorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.SalesOrder
	next   map[uuid.UUID]int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uuid.UUID]*entity.SalesOrder),
		next:   make(map[uuid.UUID]int),
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.SalesOrder) error {
	r.next[order.CompanyID]++
	order.Number = r.next[order.CompanyID]
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, companyID, id uuid.UUID) (*entity.SalesOrder, error) {
	if o, ok := r.orders[id]; ok && o.CompanyID == companyID {
		return o, nil
	}
	return nil, domainerror.ErrSalesOrderNotFound
}

func (r *fakeOrderRepo) List(_ context.Context, filter adapter.SalesOrderFilter, pagination adapter.Pagination) (*adapter.SalesOrderListResult, error) {
	var out []*entity.SalesOrder
	for _, o := range r.orders {
		if o.CompanyID == filter.CompanyID && (filter.Status == nil || o.Status == *filter.Status) {
			out = append(out, o)
		}
	}
	return &adapter.SalesOrderListResult{Orders: out, Total: int64(len(out)), Page: pagination.Page, Limit: pagination.Limit}, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, order *entity.SalesOrder) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

type fakeProductRepo struct {
	adapter.ProductRepository
	products map[uuid.UUID]*entity.Product
	calls    int
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*entity.Product, error) {
	r.calls++
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok && p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePersonRepo struct {
	adapter.PersonRepository
	people map[uuid.UUID]*entity.Person
}

func (r *fakePersonRepo) FindByID(_ context.Context, companyID, id uuid.UUID) (*entity.Person, error) {
	if p, ok := r.people[id]; ok && p.CompanyID == companyID {
		return p, nil
	}
	return nil, domainerror.ErrPersonNotFound
}

func orderCode(err error) domainerror.SalesOrderErrorCode {
	var orderErr *domainerror.SalesOrderError
	if errors.As(err, &orderErr) {
		return orderErr.Code
	}
	return ""
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateSalesOrderUseCase(t *testing.T) {
	companyID := uuid.New()
	session := entity.Session{UserID: uuid.New(), CompanyID: companyID}
	widget := entity.NewProduct(companyID, "Camiseta", "CAM-01", "", decimal.NewFromInt(50), decimal.NewFromInt(20), decimal.NewFromInt(10), "")
	foreign := entity.NewProduct(uuid.New(), "Outro", "X", "", decimal.NewFromInt(1), decimal.Zero, decimal.Zero, "")
	customer := entity.NewPerson(companyID, "Maria", "", "", "", []entity.PersonRole{entity.PersonRoleCustomer}, "")
	missing := uuid.New()

	products := &fakeProductRepo{products: map[uuid.UUID]*entity.Product{widget.ID: widget, foreign.ID: foreign}}
	people := &fakePersonRepo{people: map[uuid.UUID]*entity.Person{customer.ID: customer}}

	tests := []struct {
		name      string
		input     CreateSalesOrderInput
		wantTotal string
		wantCode  domainerror.SalesOrderErrorCode
	}{
		{
			name: "price snapshot from product",
			input: CreateSalesOrderInput{
				CustomerID: &customer.ID,
				Discount:   decimal.NewFromInt(10),
				Items: []OrderItemInput{
					{ProductID: &widget.ID, Quantity: decimal.NewFromInt(2)},
					{Description: "Frete", Quantity: decimal.NewFromInt(1), UnitPrice: decimalPtr("15.50")},
				},
			},
			wantTotal: "105.50",
		},
		{
			name: "explicit price overrides product",
			input: CreateSalesOrderInput{
				Items: []OrderItemInput{{ProductID: &widget.ID, Quantity: decimal.NewFromInt(3), UnitPrice: decimalPtr("40")}},
			},
			wantTotal: "120.00",
		},
		{
			name: "discount larger than items",
			input: CreateSalesOrderInput{
				Discount: decimal.NewFromInt(500),
				Items:    []OrderItemInput{{ProductID: &widget.ID, Quantity: decimal.NewFromInt(1)}},
			},
			wantTotal: "0.00",
		},
		{
			name:     "no items",
			input:    CreateSalesOrderInput{},
			wantCode: domainerror.ErrCodeEmptySalesOrder,
		},
		{
			name: "zero quantity",
			input: CreateSalesOrderInput{
				Items: []OrderItemInput{{ProductID: &widget.ID, Quantity: decimal.Zero}},
			},
			wantCode: domainerror.ErrCodeInvalidOrderItem,
		},
		{
			name: "free item without description",
			input: CreateSalesOrderInput{
				Items: []OrderItemInput{{Quantity: decimal.NewFromInt(1), UnitPrice: decimalPtr("1")}},
			},
			wantCode: domainerror.ErrCodeInvalidOrderItem,
		},
		{
			name: "negative discount",
			input: CreateSalesOrderInput{
				Discount: decimal.NewFromInt(-1),
				Items:    []OrderItemInput{{ProductID: &widget.ID, Quantity: decimal.NewFromInt(1)}},
			},
			wantCode: domainerror.ErrCodeInvalidOrderDiscount,
		},
		{
			name: "product of another company",
			input: CreateSalesOrderInput{
				Items: []OrderItemInput{{ProductID: &foreign.ID, Quantity: decimal.NewFromInt(1)}},
			},
			wantCode: domainerror.ErrCodeOrderProductNotFound,
		},
		{
			name: "unknown customer",
			input: CreateSalesOrderInput{
				CustomerID: &missing,
				Items:      []OrderItemInput{{ProductID: &widget.ID, Quantity: decimal.NewFromInt(1)}},
			},
			wantCode: domainerror.ErrCodeOrderCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateSalesOrderUseCase(newFakeOrderRepo(), products, people)
			tt.input.Session = session

			order, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode != "" {
				if got := orderCode(err); got != tt.wantCode {
					t.Fatalf("error code = %q, want %q (err=%v)", got, tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if order.Status != entity.SalesOrderStatusDraft {
				t.Errorf("status = %s, want draft", order.Status)
			}
			if order.Total.StringFixed(2) != tt.wantTotal {
				t.Errorf("total = %s, want %s", order.Total.StringFixed(2), tt.wantTotal)
			}
			if order.Number != 1 {
				t.Errorf("number = %d, want 1", order.Number)
			}
			if order.OrderDate.IsZero() {
				t.Error("order date not defaulted")
			}
		})
	}

	t.Run("product name becomes description", func(t *testing.T) {
		uc := NewCreateSalesOrderUseCase(newFakeOrderRepo(), products, people)
		order, err := uc.Execute(context.Background(), CreateSalesOrderInput{
			Session: session,
			Items:   []OrderItemInput{{ProductID: &widget.ID, Quantity: decimal.NewFromInt(1)}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Items[0].Description != "Camiseta" {
			t.Errorf("description = %q, want product name", order.Items[0].Description)
		}
		if !order.Items[0].UnitPrice.Equal(decimal.NewFromInt(50)) {
			t.Errorf("unit price = %s, want 50", order.Items[0].UnitPrice)
		}
	})
}

func TestUpdateStatusUseCase(t *testing.T) {
	companyID := uuid.New()
	session := entity.Session{CompanyID: companyID}
	at := time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from     entity.SalesOrderStatus
		to       entity.SalesOrderStatus
		wantCode domainerror.SalesOrderErrorCode
	}{
		{name: "confirm draft", from: entity.SalesOrderStatusDraft, to: entity.SalesOrderStatusConfirmed},
		{name: "deliver confirmed", from: entity.SalesOrderStatusConfirmed, to: entity.SalesOrderStatusDelivered},
		{name: "cancel confirmed", from: entity.SalesOrderStatusConfirmed, to: entity.SalesOrderStatusCancelled},
		{name: "deliver draft", from: entity.SalesOrderStatusDraft, to: entity.SalesOrderStatusDelivered, wantCode: domainerror.ErrCodeInvalidStatusTransition},
		{name: "reopen cancelled", from: entity.SalesOrderStatusCancelled, to: entity.SalesOrderStatusDraft, wantCode: domainerror.ErrCodeInvalidStatusTransition},
		{name: "cancel delivered", from: entity.SalesOrderStatusDelivered, to: entity.SalesOrderStatusCancelled, wantCode: domainerror.ErrCodeInvalidStatusTransition},
		{name: "unknown status", from: entity.SalesOrderStatusDraft, to: "shipped", wantCode: domainerror.ErrCodeInvalidOrderStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeOrderRepo()
			order := entity.NewSalesOrder(companyID, nil, at, decimal.Zero, "", nil, uuid.New())
			order.Status = tt.from
			repo.orders[order.ID] = order

			uc := NewUpdateStatusUseCase(repo)
			uc.now = func() time.Time { return at }

			got, err := uc.Execute(context.Background(), UpdateStatusInput{Session: session, OrderID: order.ID, Status: tt.to})
			if tt.wantCode != "" {
				if code := orderCode(err); code != tt.wantCode {
					t.Fatalf("error code = %q, want %q", code, tt.wantCode)
				}
				if order.Status != tt.from {
					t.Errorf("status changed to %s on failure", order.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tt.to {
				t.Errorf("status = %s, want %s", got.Status, tt.to)
			}
		})
	}
}

func TestDeleteSalesOrderUseCase(t *testing.T) {
	companyID := uuid.New()
	session := entity.Session{CompanyID: companyID}
	repo := newFakeOrderRepo()
	draft := entity.NewSalesOrder(companyID, nil, time.Now(), decimal.Zero, "", nil, uuid.New())
	confirmed := entity.NewSalesOrder(companyID, nil, time.Now(), decimal.Zero, "", nil, uuid.New())
	confirmed.Status = entity.SalesOrderStatusConfirmed
	repo.orders[draft.ID] = draft
	repo.orders[confirmed.ID] = confirmed
	uc := NewDeleteSalesOrderUseCase(repo)

	if err := uc.Execute(context.Background(), session, confirmed.ID); orderCode(err) != domainerror.ErrCodeSalesOrderNotDraft {
		t.Errorf("delete confirmed: err = %v, want SOR-020002", err)
	}
	if err := uc.Execute(context.Background(), entity.Session{CompanyID: uuid.New()}, draft.ID); orderCode(err) != domainerror.ErrCodeSalesOrderNotFound {
		t.Errorf("cross-tenant delete: err = %v, want not found", err)
	}
	if err := uc.Execute(context.Background(), session, draft.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.orders[draft.ID]; ok {
		t.Error("draft not deleted")
	}
}

func TestListSalesOrdersUseCase(t *testing.T) {
	companyID := uuid.New()
	repo := newFakeOrderRepo()
	mine := entity.NewSalesOrder(companyID, nil, time.Now(), decimal.Zero, "", nil, uuid.New())
	other := entity.NewSalesOrder(uuid.New(), nil, time.Now(), decimal.Zero, "", nil, uuid.New())
	repo.orders[mine.ID] = mine
	repo.orders[other.ID] = other
	uc := NewListSalesOrdersUseCase(repo)

	result, err := uc.Execute(context.Background(), ListSalesOrdersInput{Session: entity.Session{CompanyID: companyID}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("total = %d, want 1", result.Total)
	}

	bad := entity.SalesOrderStatus("shipped")
	_, err = uc.Execute(context.Background(), ListSalesOrdersInput{Session: entity.Session{CompanyID: companyID}, Status: &bad})
	if code := orderCode(err); code != domainerror.ErrCodeInvalidOrderStatus {
		t.Errorf("error code = %q, want %q", code, domainerror.ErrCodeInvalidOrderStatus)
	}
}
