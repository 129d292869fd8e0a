package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// periodData is the row set behind one income statement.
type periodData struct {
	entries    []*entity.LedgerEntry
	orders     []*entity.SalesOrder
	categories []*entity.Category
	open       []*entity.LedgerEntry
}

// loadPeriod fetches the rows of a period concurrently. Open entries are
// only fetched when withOpen is set.
func loadPeriod(
	ctx context.Context,
	repo DashboardRepository,
	companyID uuid.UUID,
	r valueobject.DateRange,
	basis Basis,
	withOpen bool,
) (*periodData, error) {
	var data periodData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := repo.ListEntriesInRange(gctx, companyID, r, basis)
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		data.entries = entries
		return nil
	})
	g.Go(func() error {
		orders, err := repo.ListSalesOrdersInRange(gctx, companyID, r)
		if err != nil {
			return fmt.Errorf("failed to load sales orders: %w", err)
		}
		data.orders = orders
		return nil
	})
	g.Go(func() error {
		categories, err := repo.ListCategories(gctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		data.categories = categories
		return nil
	})
	if withOpen {
		g.Go(func() error {
			open, err := repo.ListOpenEntries(gctx, companyID)
			if err != nil {
				return fmt.Errorf("failed to load open entries: %w", err)
			}
			data.open = open
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
