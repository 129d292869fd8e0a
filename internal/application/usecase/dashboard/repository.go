package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// Basis selects which entries count towards a period.
type Basis string

const (
	// BasisCompetence counts every non-cancelled entry by transaction date.
	BasisCompetence Basis = "competence"
	// BasisCash counts only paid or received entries.
	BasisCash Basis = "cash"
)

// IsValid reports whether the basis is known.
func (b Basis) IsValid() bool {
	return b == BasisCompetence || b == BasisCash
}

// DashboardRepository defines the read operations the dashboard needs.
// Every method is scoped to one company.
type DashboardRepository interface {
	// ListEntriesInRange returns non-cancelled entries whose transaction date is in r.
	// With BasisCash only paid or received entries are returned.
	ListEntriesInRange(ctx context.Context, companyID uuid.UUID, r valueobject.DateRange, basis Basis) ([]*entity.LedgerEntry, error)

	// ListSettledEntries returns paid or received entries whose payment date,
	// or due date when the payment date is unknown, is in r.
	ListSettledEntries(ctx context.Context, companyID uuid.UUID, r valueobject.DateRange) ([]*entity.LedgerEntry, error)

	// ListOpenEntries returns pending and overdue entries regardless of date.
	ListOpenEntries(ctx context.Context, companyID uuid.UUID) ([]*entity.LedgerEntry, error)

	// ListSalesOrdersInRange returns orders whose order date is in r.
	ListSalesOrdersInRange(ctx context.Context, companyID uuid.UUID, r valueobject.DateRange) ([]*entity.SalesOrder, error)

	// ListCategories returns every category of the company.
	ListCategories(ctx context.Context, companyID uuid.UUID) ([]*entity.Category, error)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}
