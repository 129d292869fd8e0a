package entry

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

type fakeEntryRepo struct {
	entries map[uuid.UUID]*entity.LedgerEntry
	updated int
}

func newFakeEntryRepo(entries ...*entity.LedgerEntry) *fakeEntryRepo {
	r := &fakeEntryRepo{entries: make(map[uuid.UUID]*entity.LedgerEntry)}
	for _, e := range entries {
		r.entries[e.ID] = e
	}
	return r
}

func (r *fakeEntryRepo) CreateBatch(_ context.Context, entries []*entity.LedgerEntry) error {
	for _, e := range entries {
		r.entries[e.ID] = e
	}
	return nil
}

func (r *fakeEntryRepo) FindByID(_ context.Context, companyID, id uuid.UUID) (*entity.LedgerEntry, error) {
	if e, ok := r.entries[id]; ok && e.CompanyID == companyID {
		c := *e
		return &c, nil
	}
	return nil, domainerror.ErrEntryNotFound
}

func (r *fakeEntryRepo) List(_ context.Context, filter adapter.EntryFilter, pagination adapter.Pagination) (*adapter.EntryListResult, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if e.CompanyID == filter.CompanyID {
			out = append(out, e)
		}
	}
	return &adapter.EntryListResult{
		Entries: out,
		Total:   int64(len(out)),
		Page:    pagination.Page,
		Limit:   pagination.Limit,
	}, nil
}

func (r *fakeEntryRepo) Update(_ context.Context, e *entity.LedgerEntry) error {
	r.entries[e.ID] = e
	r.updated++
	return nil
}

func (r *fakeEntryRepo) Settle(_ context.Context, e *entity.LedgerEntry) error {
	stored, ok := r.entries[e.ID]
	if !ok || stored.CompanyID != e.CompanyID || !stored.Status.IsOpen() {
		return domainerror.ErrEntryAlreadySettled
	}
	c := *e
	r.entries[e.ID] = &c
	r.updated++
	return nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, companyID, id uuid.UUID) error {
	if e, ok := r.entries[id]; !ok || e.CompanyID != companyID {
		return domainerror.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeEntryRepo) FindPendingDueBefore(context.Context, time.Time, int) ([]*entity.LedgerEntry, error) {
	return nil, nil
}

func (r *fakeEntryRepo) FindPendingDueBetween(context.Context, time.Time, time.Time, int) ([]*entity.LedgerEntry, error) {
	return nil, nil
}

func (r *fakeEntryRepo) MarkDueSoonNotified(context.Context, []uuid.UUID, time.Time) error {
	return nil
}

func (r *fakeEntryRepo) MarkOverdue(context.Context, []uuid.UUID) error {
	return nil
}

type fakeCategoryRepo struct {
	adapter.CategoryRepository
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, companyID, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok && c.CompanyID == companyID {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
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

type recordingPublisher struct {
	events []adapter.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event adapter.Event) error {
	p.events = append(p.events, event)
	return nil
}

func entryCode(err error) domainerror.EntryErrorCode {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		return entryErr.Code
	}
	return ""
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	session    entity.Session
	entries    *fakeEntryRepo
	categories *fakeCategoryRepo
	people     *fakePersonRepo
	rent       *entity.Category
	sales      *entity.Category
	customer   *entity.Person
}

func newFixture() *fixture {
	companyID := uuid.New()
	fixed := entity.DREClassificationFixedCost
	f := &fixture{
		session:  entity.Session{UserID: uuid.New(), CompanyID: companyID},
		entries:  newFakeEntryRepo(),
		rent:     entity.NewCategory(companyID, "Aluguel", "", entity.CategoryTypeExpense, &fixed),
		sales:    entity.NewCategory(companyID, "Vendas", "", entity.CategoryTypeRevenue, nil),
		customer: entity.NewPerson(companyID, "Maria", "", "", "", nil, ""),
	}
	f.categories = &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{
		f.rent.ID:  f.rent,
		f.sales.ID: f.sales,
	}}
	f.people = &fakePersonRepo{people: map[uuid.UUID]*entity.Person{f.customer.ID: f.customer}}
	return f
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{"same month", day(2024, time.January, 31), 0, day(2024, time.January, 31)},
		{"leap february", day(2024, time.January, 31), 1, day(2024, time.February, 29)},
		{"common february", day(2023, time.January, 31), 1, day(2023, time.February, 28)},
		{"back to long month", day(2023, time.January, 31), 2, day(2023, time.March, 31)},
		{"year rollover", day(2023, time.November, 30), 3, day(2024, time.February, 29)},
		{"mid month", day(2024, time.May, 15), 12, day(2025, time.May, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonthsClamped(tt.start, tt.n); !got.Equal(tt.want) {
				t.Errorf("AddMonthsClamped() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateEntryUseCase_Validation(t *testing.T) {
	f := newFixture()
	otherCompanyCategory := entity.NewCategory(uuid.New(), "Outra", "", entity.CategoryTypeExpense, nil)
	f.categories.categories[otherCompanyCategory.ID] = otherCompanyCategory
	missing := uuid.New()
	base := func() CreateEntryInput {
		return CreateEntryInput{
			Session:         f.session,
			Type:            entity.EntryTypeExpense,
			Description:     "Aluguel loja",
			Amount:          decimal.NewFromInt(1500),
			TransactionDate: day(2024, time.March, 5),
		}
	}

	tests := []struct {
		name     string
		mutate   func(*CreateEntryInput)
		wantCode domainerror.EntryErrorCode
	}{
		{name: "valid", mutate: func(*CreateEntryInput) {}},
		{name: "zero amount allowed", mutate: func(in *CreateEntryInput) { in.Amount = decimal.Zero }},
		{name: "bad type", mutate: func(in *CreateEntryInput) { in.Type = "income" }, wantCode: domainerror.ErrCodeInvalidEntryType},
		{name: "blank description", mutate: func(in *CreateEntryInput) { in.Description = "  " }, wantCode: domainerror.ErrCodeMissingEntryFields},
		{name: "negative amount", mutate: func(in *CreateEntryInput) { in.Amount = decimal.NewFromInt(-1) }, wantCode: domainerror.ErrCodeInvalidEntryAmount},
		{name: "missing date", mutate: func(in *CreateEntryInput) { in.TransactionDate = time.Time{} }, wantCode: domainerror.ErrCodeInvalidEntryDate},
		{name: "too many installments", mutate: func(in *CreateEntryInput) { in.Installments = MaxInstallments + 1 }, wantCode: domainerror.ErrCodeInvalidInstallments},
		{
			name: "bad installment mode",
			mutate: func(in *CreateEntryInput) {
				in.Installments = 2
				in.InstallmentMode = "weekly"
			},
			wantCode: domainerror.ErrCodeInvalidInstallments,
		},
		{name: "unknown category", mutate: func(in *CreateEntryInput) { in.CategoryID = &missing }, wantCode: domainerror.ErrCodeEntryCategoryNotFound},
		{name: "category of another company", mutate: func(in *CreateEntryInput) { in.CategoryID = &otherCompanyCategory.ID }, wantCode: domainerror.ErrCodeEntryCategoryNotFound},
		{name: "category type mismatch", mutate: func(in *CreateEntryInput) { in.CategoryID = &f.sales.ID }, wantCode: domainerror.ErrCodeCategoryTypeMismatch},
		{name: "unknown person", mutate: func(in *CreateEntryInput) { in.PersonID = &missing }, wantCode: domainerror.ErrCodeEntryPersonNotFound},
	}

	uc := NewCreateEntryUseCase(f.entries, f.categories, f.people)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base()
			tt.mutate(&input)

			out, err := uc.Execute(context.Background(), input)
			if tt.wantCode != "" {
				if got := entryCode(err); got != tt.wantCode {
					t.Fatalf("error code = %q, want %q (err=%v)", got, tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Entries) != 1 {
				t.Fatalf("entries = %d, want 1", len(out.Entries))
			}
			e := out.Entries[0]
			if e.Status != entity.EntryStatusPending {
				t.Errorf("status = %s, want pending", e.Status)
			}
			if !e.DueDate.Equal(e.TransactionDate) {
				t.Errorf("due date = %v, want transaction date %v", e.DueDate, e.TransactionDate)
			}
			if e.CreatedBy != f.session.UserID {
				t.Errorf("created_by = %s, want session user", e.CreatedBy)
			}
		})
	}
}

func TestCreateEntryUseCase_SplitInstallments(t *testing.T) {
	f := newFixture()
	uc := NewCreateEntryUseCase(f.entries, f.categories, f.people)

	out, err := uc.Execute(context.Background(), CreateEntryInput{
		Session:         f.session,
		Type:            entity.EntryTypeRevenue,
		Description:     "Venda parcelada",
		Amount:          decimal.NewFromInt(100),
		TransactionDate: day(2023, time.January, 10),
		DueDate:         day(2023, time.January, 31),
		CategoryID:      &f.sales.ID,
		PersonID:        &f.customer.ID,
		Installments:    3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(out.Entries))
	}

	wantAmounts := []string{"33.33", "33.33", "33.34"}
	wantDue := []time.Time{day(2023, time.January, 31), day(2023, time.February, 28), day(2023, time.March, 31)}
	wantDesc := []string{"Venda parcelada (1/3)", "Venda parcelada (2/3)", "Venda parcelada (3/3)"}
	total := decimal.Zero
	groupID := out.Entries[0].InstallmentGroupID
	if groupID == nil {
		t.Fatal("installment group not set")
	}

	for i, e := range out.Entries {
		if e.Amount.StringFixed(2) != wantAmounts[i] {
			t.Errorf("installment %d amount = %s, want %s", i+1, e.Amount.StringFixed(2), wantAmounts[i])
		}
		if !e.DueDate.Equal(wantDue[i]) {
			t.Errorf("installment %d due = %v, want %v", i+1, e.DueDate, wantDue[i])
		}
		if !e.TransactionDate.Equal(day(2023, time.January, 10)) {
			t.Errorf("installment %d transaction date = %v, want purchase date", i+1, e.TransactionDate)
		}
		if e.Description != wantDesc[i] {
			t.Errorf("installment %d description = %q, want %q", i+1, e.Description, wantDesc[i])
		}
		if e.InstallmentNumber != i+1 || e.InstallmentTotal != 3 {
			t.Errorf("installment numbering = %d/%d", e.InstallmentNumber, e.InstallmentTotal)
		}
		if e.InstallmentGroupID == nil || *e.InstallmentGroupID != *groupID {
			t.Errorf("installment %d not in the shared group", i+1)
		}
		total = total.Add(e.Amount)
	}
	if !total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("installments add up to %s, want 100", total)
	}
	if len(f.entries.entries) != 3 {
		t.Errorf("stored entries = %d, want 3", len(f.entries.entries))
	}
}

func TestCreateEntryUseCase_RepeatInstallments(t *testing.T) {
	f := newFixture()
	uc := NewCreateEntryUseCase(f.entries, f.categories, f.people)

	out, err := uc.Execute(context.Background(), CreateEntryInput{
		Session:         f.session,
		Type:            entity.EntryTypeExpense,
		Description:     "Aluguel",
		Amount:          decimal.NewFromInt(1500),
		TransactionDate: day(2024, time.January, 31),
		CategoryID:      &f.rent.ID,
		Installments:    2,
		InstallmentMode: InstallmentModeRepeat,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := out.Entries[1]
	if !second.Amount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("repeat amount = %s, want 1500", second.Amount)
	}
	if !second.TransactionDate.Equal(day(2024, time.February, 29)) {
		t.Errorf("repeat transaction date = %v, want 2024-02-29", second.TransactionDate)
	}
	if !second.DueDate.Equal(day(2024, time.February, 29)) {
		t.Errorf("repeat due date = %v, want 2024-02-29", second.DueDate)
	}
}

func TestSettleEntryUseCase(t *testing.T) {
	f := newFixture()
	revenue := entity.NewLedgerEntry(f.session.CompanyID, entity.EntryTypeRevenue, "Venda", decimal.NewFromInt(50), day(2024, time.March, 1), day(2024, time.March, 1), nil, nil, "", f.session.UserID)
	expense := entity.NewLedgerEntry(f.session.CompanyID, entity.EntryTypeExpense, "Luz", decimal.NewFromInt(80), day(2024, time.March, 1), day(2024, time.March, 1), nil, nil, "", f.session.UserID)
	expense.Status = entity.EntryStatusOverdue
	cancelled := entity.NewLedgerEntry(f.session.CompanyID, entity.EntryTypeExpense, "Água", decimal.NewFromInt(30), day(2024, time.March, 1), day(2024, time.March, 1), nil, nil, "", f.session.UserID)
	cancelled.Cancel()
	foreign := entity.NewLedgerEntry(uuid.New(), entity.EntryTypeExpense, "Outro", decimal.NewFromInt(1), day(2024, time.March, 1), day(2024, time.March, 1), nil, nil, "", uuid.New())
	f.entries = newFakeEntryRepo(revenue, expense, cancelled, foreign)

	publisher := &recordingPublisher{}
	uc := NewSettleEntryUseCase(f.entries, publisher)
	paidAt := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return paidAt }

	t.Run("revenue becomes received", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), SettleEntryInput{Session: f.session, EntryID: revenue.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entity.EntryStatusReceived {
			t.Errorf("status = %s, want received", got.Status)
		}
		if got.PaidAt == nil || !got.PaidAt.Equal(paidAt) {
			t.Errorf("paid_at = %v, want %v", got.PaidAt, paidAt)
		}
		if len(publisher.events) != 1 || publisher.events[0].Type != adapter.EventEntrySettled {
			t.Errorf("events = %+v, want one entry.settled", publisher.events)
		}
	})

	t.Run("overdue expense becomes paid", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), SettleEntryInput{Session: f.session, EntryID: expense.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entity.EntryStatusPaid {
			t.Errorf("status = %s, want paid", got.Status)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SettleEntryInput{Session: f.session, EntryID: revenue.ID})
		if got := entryCode(err); got != domainerror.ErrCodeEntryAlreadySettled {
			t.Errorf("error code = %q, want %q", got, domainerror.ErrCodeEntryAlreadySettled)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SettleEntryInput{Session: f.session, EntryID: cancelled.ID})
		if got := entryCode(err); got != domainerror.ErrCodeEntryCancelled {
			t.Errorf("error code = %q, want %q", got, domainerror.ErrCodeEntryCancelled)
		}
	})

	t.Run("other company", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SettleEntryInput{Session: f.session, EntryID: foreign.ID})
		if got := entryCode(err); got != domainerror.ErrCodeEntryNotFound {
			t.Errorf("error code = %q, want %q", got, domainerror.ErrCodeEntryNotFound)
		}
		if foreign.Status != entity.EntryStatusPending {
			t.Errorf("foreign entry changed to %s", foreign.Status)
		}
	})
}

// staleReadRepo hands out the entry as it was before another request settled it.
type staleReadRepo struct {
	*fakeEntryRepo
	snapshot entity.LedgerEntry
}

func (r *staleReadRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*entity.LedgerEntry, error) {
	c := r.snapshot
	return &c, nil
}

func TestSettleEntryUseCase_ConcurrentSettle(t *testing.T) {
	f := newFixture()
	e := entity.NewLedgerEntry(f.session.CompanyID, entity.EntryTypeExpense, "Luz", decimal.NewFromInt(80), day(2024, time.March, 1), day(2024, time.March, 1), nil, nil, "", f.session.UserID)
	snapshot := *e
	e.Settle(day(2024, time.March, 5))
	repo := &staleReadRepo{fakeEntryRepo: newFakeEntryRepo(e), snapshot: snapshot}

	publisher := &recordingPublisher{}
	uc := NewSettleEntryUseCase(repo, publisher)
	uc.now = func() time.Time { return day(2024, time.March, 10) }

	_, err := uc.Execute(context.Background(), SettleEntryInput{Session: f.session, EntryID: e.ID})
	if got := entryCode(err); got != domainerror.ErrCodeEntryAlreadySettled {
		t.Fatalf("error code = %q, want %q", got, domainerror.ErrCodeEntryAlreadySettled)
	}
	if len(publisher.events) != 0 {
		t.Errorf("events = %+v, want none", publisher.events)
	}
	stored := repo.entries[e.ID]
	if stored.PaidAt == nil || !stored.PaidAt.Equal(day(2024, time.March, 5)) {
		t.Errorf("paid_at = %v, want the first settlement kept", stored.PaidAt)
	}
	if repo.updated != 0 {
		t.Errorf("updates = %d, want 0", repo.updated)
	}
}

func TestCancelEntryUseCase(t *testing.T) {
	f := newFixture()
	open := entity.NewLedgerEntry(f.session.CompanyID, entity.EntryTypeExpense, "Luz", decimal.NewFromInt(80), day(2024, time.March, 1), day(2024, time.March, 1), nil, nil, "", f.session.UserID)
	settled := entity.NewLedgerEntry(f.session.CompanyID, entity.EntryTypeExpense, "Água", decimal.NewFromInt(30), day(2024, time.March, 1), day(2024, time.March, 1), nil, nil, "", f.session.UserID)
	settled.Settle(day(2024, time.March, 2))
	f.entries = newFakeEntryRepo(open, settled)
	uc := NewCancelEntryUseCase(f.entries)

	got, err := uc.Execute(context.Background(), f.session, open.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entity.EntryStatusCancelled {
		t.Errorf("status = %s, want cancelled", got.Status)
	}
	if _, err := uc.Execute(context.Background(), f.session, open.ID); err != nil {
		t.Errorf("second cancel: unexpected error: %v", err)
	}

	_, err = uc.Execute(context.Background(), f.session, settled.ID)
	if code := entryCode(err); code != domainerror.ErrCodeEntryAlreadySettled {
		t.Errorf("error code = %q, want %q", code, domainerror.ErrCodeEntryAlreadySettled)
	}

	update := NewUpdateEntryUseCase(f.entries, f.categories, f.people)
	notes := "ajuste"
	_, err = update.Execute(context.Background(), UpdateEntryInput{Session: f.session, EntryID: open.ID, Notes: &notes})
	if code := entryCode(err); code != domainerror.ErrCodeEntryCancelled {
		t.Errorf("update cancelled: error code = %q, want %q", code, domainerror.ErrCodeEntryCancelled)
	}
}

func TestUpdateEntryUseCase(t *testing.T) {
	f := newFixture()
	e := entity.NewLedgerEntry(f.session.CompanyID, entity.EntryTypeExpense, "Aluguel", decimal.NewFromInt(1000), day(2024, time.March, 1), day(2024, time.March, 1), &f.rent.ID, nil, "", f.session.UserID)
	f.entries = newFakeEntryRepo(e)
	uc := NewUpdateEntryUseCase(f.entries, f.categories, f.people)

	amount := decimal.RequireFromString("1200.456")
	got, err := uc.Execute(context.Background(), UpdateEntryInput{
		Session:       f.session,
		EntryID:       e.ID,
		Amount:        &amount,
		ClearCategory: true,
		PersonID:      &f.customer.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Amount.StringFixed(2) != "1200.46" {
		t.Errorf("amount = %s, want 1200.46", got.Amount.StringFixed(2))
	}
	if got.CategoryID != nil {
		t.Error("category not cleared")
	}
	if got.PersonID == nil || *got.PersonID != f.customer.ID {
		t.Error("person not set")
	}

	_, err = uc.Execute(context.Background(), UpdateEntryInput{Session: f.session, EntryID: e.ID, CategoryID: &f.sales.ID})
	if code := entryCode(err); code != domainerror.ErrCodeCategoryTypeMismatch {
		t.Errorf("error code = %q, want %q", code, domainerror.ErrCodeCategoryTypeMismatch)
	}
}

func TestListEntriesUseCase(t *testing.T) {
	f := newFixture()
	mine := entity.NewLedgerEntry(f.session.CompanyID, entity.EntryTypeExpense, "Luz", decimal.NewFromInt(80), day(2024, time.March, 1), day(2024, time.March, 1), nil, nil, "", f.session.UserID)
	other := entity.NewLedgerEntry(uuid.New(), entity.EntryTypeExpense, "Outro", decimal.NewFromInt(1), day(2024, time.March, 1), day(2024, time.March, 1), nil, nil, "", uuid.New())
	f.entries = newFakeEntryRepo(mine, other)
	uc := NewListEntriesUseCase(f.entries)

	result, err := uc.Execute(context.Background(), ListEntriesInput{Session: f.session})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 || result.Entries[0].ID != mine.ID {
		t.Errorf("entries = %+v, want only the session company's entry", result.Entries)
	}
	if result.Limit != adapter.DefaultPageLimit || result.Page != 1 {
		t.Errorf("pagination = %d/%d, want defaults", result.Page, result.Limit)
	}

	start := day(2024, time.March, 10)
	end := day(2024, time.March, 1)
	_, err = uc.Execute(context.Background(), ListEntriesInput{Session: f.session, StartDate: &start, EndDate: &end})
	if code := entryCode(err); code != domainerror.ErrCodeInvalidEntryDate {
		t.Errorf("error code = %q, want %q", code, domainerror.ErrCodeInvalidEntryDate)
	}

	status := entity.EntryStatus("late")
	_, err = uc.Execute(context.Background(), ListEntriesInput{Session: f.session, Status: &status})
	if code := entryCode(err); code != domainerror.ErrCodeInvalidEntryStatus {
		t.Errorf("error code = %q, want %q", code, domainerror.ErrCodeInvalidEntryStatus)
	}
}

func TestDeleteEntryUseCase(t *testing.T) {
	f := newFixture()
	e := entity.NewLedgerEntry(f.session.CompanyID, entity.EntryTypeExpense, "Luz", decimal.NewFromInt(80), day(2024, time.March, 1), day(2024, time.March, 1), nil, nil, "", f.session.UserID)
	f.entries = newFakeEntryRepo(e)
	uc := NewDeleteEntryUseCase(f.entries)

	if err := uc.Execute(context.Background(), entity.Session{CompanyID: uuid.New()}, e.ID); entryCode(err) != domainerror.ErrCodeEntryNotFound {
		t.Errorf("cross-tenant delete: err = %v, want not found", err)
	}
	if err := uc.Execute(context.Background(), f.session, e.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.entries.entries) != 0 {
		t.Error("entry not deleted")
	}
}
