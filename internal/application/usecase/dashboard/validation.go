package dashboard

import (
	"fmt"
	"time"

	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// MaxRangeDays bounds the span of a report, five years counting leap days.
const MaxRangeDays = 5*365 + 2

// validateRange checks the requested dates and builds the range.
func validateRange(start, end time.Time) (valueobject.DateRange, error) {
	if start.IsZero() {
		return valueobject.DateRange{}, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if end.IsZero() {
		return valueobject.DateRange{}, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	r, err := valueobject.NewDateRange(start, end)
	if err != nil {
		return valueobject.DateRange{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	if r.Days() > MaxRangeDays {
		return valueobject.DateRange{}, domainerror.NewDashboardError(
			domainerror.ErrCodeRangeTooLong,
			fmt.Sprintf("date range must not exceed %d days", MaxRangeDays),
			domainerror.ErrRangeTooLong,
		)
	}

	return r, nil
}

// normalizeBasis defaults an empty basis to competence and rejects unknown ones.
func normalizeBasis(basis Basis) (Basis, error) {
	if basis == "" {
		return BasisCompetence, nil
	}
	if !basis.IsValid() {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidBasis,
			"basis must be: competence or cash",
			domainerror.ErrInvalidBasis,
		)
	}
	return basis, nil
}
