package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/dashboard"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/notification"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

type tenant struct {
	company *entity.Company
	owner   *entity.User
	revenue *entity.Category
	expense *entity.Category
}

func seedTenant(t *testing.T, db *gorm.DB, name string) tenant {
	t.Helper()
	ctx := context.Background()

	owner := entity.NewUser(name+"@example.com", name, "hash", time.Now().UTC())
	if err := NewUserRepository(db).Create(ctx, owner); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	company := entity.NewCompany(name, "", "", "", "", owner.ID)
	owner.CompanyID = &company.ID
	owner.Role = entity.UserRoleOwner
	revenue := entity.NewCategory(company.ID, "Serviços", "", entity.CategoryTypeRevenue, nil)
	expense := entity.NewCategory(company.ID, "Aluguel", "", entity.CategoryTypeExpense,
		entity.ClassificationPtr(entity.DREClassificationFixedCost))

	err := NewCompanyRepository(db).CreateWithOwner(ctx, company, owner, []*entity.Category{revenue, expense})
	if err != nil {
		t.Fatalf("failed to create company: %v", err)
	}
	return tenant{company: company, owner: owner, revenue: revenue, expense: expense}
}

func newEntry(tn tenant, entryType entity.EntryType, amount string, day time.Time) *entity.LedgerEntry {
	categoryID := tn.revenue.ID
	if entryType == entity.EntryTypeExpense {
		categoryID = tn.expense.ID
	}
	return entity.NewLedgerEntry(tn.company.ID, entryType, "entry", decimal.RequireFromString(amount),
		day, day, &categoryID, nil, "", tn.owner.ID)
}

func TestCompanyRepository_CreateWithOwner(t *testing.T) {
	db := newTestDB(t)
	tn := seedTenant(t, db, "acme")
	ctx := context.Background()

	owner, err := NewUserRepository(db).FindByID(ctx, tn.owner.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner.CompanyID == nil || *owner.CompanyID != tn.company.ID {
		t.Fatalf("owner was not bound to the company")
	}
	if owner.Role != entity.UserRoleOwner {
		t.Errorf("expected owner role, got %s", owner.Role)
	}

	categories, err := NewCategoryRepository(db).FindByCompany(ctx, tn.company.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 seeded categories, got %d", len(categories))
	}

	second := entity.NewCompany("other", "", "", "", "", owner.ID)
	if err := NewCompanyRepository(db).CreateWithOwner(ctx, second, owner, nil); err == nil {
		t.Error("expected an error when the owner already has a company")
	}
}

func TestEntryRepository_TenantIsolation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a := seedTenant(t, db, "alpha")
	b := seedTenant(t, db, "beta")
	repo := NewEntryRepository(db)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	entryA := newEntry(a, entity.EntryTypeRevenue, "100.00", day)
	entryB := newEntry(b, entity.EntryTypeRevenue, "999.00", day)
	if err := repo.CreateBatch(ctx, []*entity.LedgerEntry{entryA, newEntry(a, entity.EntryTypeExpense, "40.00", day)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.CreateBatch(ctx, []*entity.LedgerEntry{entryB}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, a.company.ID, entryB.ID); err == nil {
		t.Error("expected entry of another company to be invisible")
	}
	if err := repo.Delete(ctx, a.company.ID, entryB.ID); err == nil {
		t.Error("expected delete across companies to fail")
	}

	result, err := repo.List(ctx, adapter.EntryFilter{CompanyID: a.company.ID}, adapter.Pagination{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected 2 entries, got %d", result.Total)
	}
	if !result.Totals.RevenueTotal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected revenue total 100, got %s", result.Totals.RevenueTotal)
	}
	if !result.Totals.NetTotal.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected net total 60, got %s", result.Totals.NetTotal)
	}
}

func TestEntryRepository_OverdueScan(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tn := seedTenant(t, db, "gamma")
	repo := NewEntryRepository(db)

	late := newEntry(tn, entity.EntryTypeExpense, "10.00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	onTime := newEntry(tn, entity.EntryTypeExpense, "10.00", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
	if err := repo.CreateBatch(ctx, []*entity.LedgerEntry{late, onTime}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	due, err := repo.FindPendingDueBefore(ctx, today, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 1 || due[0].ID != late.ID {
		t.Fatalf("expected only the late entry, got %d entries", len(due))
	}

	if err := repo.MarkOverdue(ctx, []uuid.UUID{late.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, err := repo.FindByID(ctx, tn.company.ID, late.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != entity.EntryStatusOverdue {
		t.Errorf("expected overdue, got %s", stored.Status)
	}

	soon, err := repo.FindPendingDueBetween(ctx, today, today.AddDate(0, 0, 10), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(soon) != 1 || soon[0].ID != onTime.ID {
		t.Errorf("expected only the upcoming entry, got %d entries", len(soon))
	}
}

func TestEntryRepository_SettleOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tn := seedTenant(t, db, "zeta")
	repo := NewEntryRepository(db)

	e := newEntry(tn, entity.EntryTypeExpense, "45.00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err := repo.CreateBatch(ctx, []*entity.LedgerEntry{e}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two requests read the entry while it was still pending.
	first, err := repo.FindByID(ctx, tn.company.ID, e.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.FindByID(ctx, tn.company.ID, e.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstPaid := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	first.Settle(firstPaid)
	if err := repo.Settle(ctx, first); err != nil {
		t.Fatalf("first settle: unexpected error: %v", err)
	}

	second.Settle(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))
	if err := repo.Settle(ctx, second); !errors.Is(err, domainerror.ErrEntryAlreadySettled) {
		t.Fatalf("second settle: err = %v, want ErrEntryAlreadySettled", err)
	}

	stored, err := repo.FindByID(ctx, tn.company.ID, e.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != entity.EntryStatusPaid {
		t.Errorf("expected paid, got %s", stored.Status)
	}
	if stored.PaidAt == nil || !stored.PaidAt.Equal(firstPaid) {
		t.Errorf("expected the first payment date to stay, got %v", stored.PaidAt)
	}

	other := seedTenant(t, db, "eta")
	foreign := *first
	foreign.CompanyID = other.company.ID
	foreign.Status = entity.EntryStatusPaid
	if err := repo.Settle(ctx, &foreign); err == nil {
		t.Error("expected an error when settling through another company")
	}
}

func TestNotificationWorker_DueSoonBeyondBatchSize(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tn := seedTenant(t, db, "theta")
	entries := NewEntryRepository(db)

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	dueDay := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	batch := make([]*entity.LedgerEntry, 5)
	for i := range batch {
		batch[i] = newEntry(tn, entity.EntryTypeExpense, "10.00", dueDay)
	}
	if err := entries.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notifications := NewNotificationRepository(db)
	worker := notification.NewWorker(notification.WorkerDeps{
		Entries:       entries,
		Reminders:     NewReminderRepository(db),
		Notifications: notifications,
		Users:         NewUserRepository(db),
		Companies:     NewCompanyRepository(db),
	}, notification.WorkerConfig{
		BatchSize: 2,
		Now:       func() time.Time { return now },
	})

	for i := 0; i < 5; i++ {
		stats := worker.ProcessNow(ctx)
		if i == 0 && stats.DueSoon != 5 {
			t.Errorf("first poll announced %d entries, want 5", stats.DueSoon)
		}
		if i > 0 && stats.Created != 0 {
			t.Errorf("poll %d created %d notifications, want 0", i+1, stats.Created)
		}
	}

	stored, err := notifications.ListByUser(ctx, tn.company.ID, tn.owner.ID, false, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 5 {
		t.Fatalf("expected 5 notifications, got %d", len(stored))
	}
	seen := make(map[string]bool)
	for _, n := range stored {
		if n.Kind != entity.NotificationKindEntryDueSoon {
			t.Errorf("unexpected kind %s", n.Kind)
		}
		seen[n.Link] = true
	}
	for _, e := range batch {
		if !seen["/entries/"+e.ID.String()] {
			t.Errorf("entry %s was never announced", e.ID)
		}
	}

	left, err := entries.FindPendingDueBetween(ctx, dueDay, dueDay, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("expected every entry stamped, %d left", len(left))
	}
}

func TestDashboardRepository_ScopesToCompanyAndRange(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a := seedTenant(t, db, "delta")
	b := seedTenant(t, db, "epsilon")
	entries := NewEntryRepository(db)

	march := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	paid := newEntry(a, entity.EntryTypeExpense, "30.00", march)
	paid.Settle(march)
	cancelled := newEntry(a, entity.EntryTypeRevenue, "50.00", march)
	cancelled.Cancel()

	err := entries.CreateBatch(ctx, []*entity.LedgerEntry{
		newEntry(a, entity.EntryTypeRevenue, "200.00", march),
		newEntry(a, entity.EntryTypeRevenue, "80.00", april),
		paid,
		cancelled,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := entries.CreateBatch(ctx, []*entity.LedgerEntry{newEntry(b, entity.EntryTypeRevenue, "500.00", march)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := NewDashboardRepository(db)
	r := valueobject.MonthOf(march)

	competence, err := repo.ListEntriesInRange(ctx, a.company.ID, r, dashboard.BasisCompetence)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(competence) != 2 {
		t.Errorf("expected 2 competence entries, got %d", len(competence))
	}

	cash, err := repo.ListEntriesInRange(ctx, a.company.ID, r, dashboard.BasisCash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cash) != 1 || cash[0].ID != paid.ID {
		t.Errorf("expected only the paid entry on cash basis, got %d", len(cash))
	}

	settled, err := repo.ListSettledEntries(ctx, a.company.ID, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(settled) != 1 {
		t.Errorf("expected 1 settled entry, got %d", len(settled))
	}

	open, err := repo.ListOpenEntries(ctx, a.company.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(open) != 2 {
		t.Errorf("expected 2 open entries, got %d", len(open))
	}

	categories, err := repo.ListCategories(ctx, b.company.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range categories {
		if c.CompanyID != b.company.ID {
			t.Errorf("category %s leaked from another company", c.Name)
		}
	}
}

func TestSalesOrderRepository_NumbersPerCompany(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a := seedTenant(t, db, "zeta")
	b := seedTenant(t, db, "eta")
	repo := NewSalesOrderRepository(db)
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	item := func() []entity.SalesOrderItem {
		return []entity.SalesOrderItem{{Description: "Item", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(15)}}
	}

	first := entity.NewSalesOrder(a.company.ID, nil, day, decimal.Zero, "", item(), a.owner.ID)
	second := entity.NewSalesOrder(a.company.ID, nil, day, decimal.Zero, "", item(), a.owner.ID)
	other := entity.NewSalesOrder(b.company.ID, nil, day, decimal.Zero, "", item(), b.owner.ID)
	for _, o := range []*entity.SalesOrder{first, second, other} {
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if first.Number != 1 || second.Number != 2 || other.Number != 1 {
		t.Errorf("unexpected numbers %d, %d, %d", first.Number, second.Number, other.Number)
	}

	stored, err := repo.FindByID(ctx, a.company.ID, second.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored.Items) != 1 {
		t.Fatalf("expected items to be loaded, got %d", len(stored.Items))
	}
	if !stored.Total.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected total 30, got %s", stored.Total)
	}

	if _, err := repo.FindByID(ctx, b.company.ID, second.ID); err == nil {
		t.Error("expected order of another company to be invisible")
	}

	stored.TransitionTo(entity.SalesOrderStatusConfirmed, day)
	if err := repo.UpdateStatus(ctx, stored); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, err := repo.List(ctx, adapter.SalesOrderFilter{CompanyID: a.company.ID}, adapter.Pagination{Page: 1, Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 2 || list.TotalPages != 2 || len(list.Orders) != 1 {
		t.Errorf("unexpected page: total=%d pages=%d len=%d", list.Total, list.TotalPages, len(list.Orders))
	}
}

func TestNotificationRepository_Dedup(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tn := seedTenant(t, db, "theta")
	repo := NewNotificationRepository(db)

	n := entity.NewNotification(tn.company.ID, tn.owner.ID, entity.NotificationKindEntryOverdue, "Conta vencida", "", "", "overdue:1")
	created, err := repo.CreateIfAbsent(ctx, n)
	if err != nil || !created {
		t.Fatalf("expected first insert to succeed, created=%v err=%v", created, err)
	}

	dup := entity.NewNotification(tn.company.ID, tn.owner.ID, entity.NotificationKindEntryOverdue, "Conta vencida", "", "", "overdue:1")
	created, err = repo.CreateIfAbsent(ctx, dup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected duplicate to be skipped")
	}

	unread, err := repo.CountUnread(ctx, tn.company.ID, tn.owner.ID)
	if err != nil || unread != 1 {
		t.Fatalf("expected 1 unread, got %d (err %v)", unread, err)
	}

	changed, err := repo.MarkAllRead(ctx, tn.company.ID, tn.owner.ID, time.Now())
	if err != nil || changed != 1 {
		t.Fatalf("expected 1 changed, got %d (err %v)", changed, err)
	}
	if err := repo.MarkRead(ctx, tn.company.ID, tn.owner.ID, uuid.New(), time.Now()); err == nil {
		t.Error("expected not found for unknown notification")
	}
}
