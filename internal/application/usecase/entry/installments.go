package entry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// InstallmentMode tells how an amount is spread over installments.
type InstallmentMode string

const (
	// InstallmentModeSplit divides the amount; the last part absorbs the cent remainder.
	InstallmentModeSplit InstallmentMode = "split"
	// InstallmentModeRepeat charges the full amount every month.
	InstallmentModeRepeat InstallmentMode = "repeat"
)

// MaxInstallments caps how many entries one request may create.
const MaxInstallments = 120

// IsValid reports whether the mode is known.
func (m InstallmentMode) IsValid() bool {
	return m == InstallmentModeSplit || m == InstallmentModeRepeat
}

// AddMonthsClamped moves t forward by n calendar months keeping its day of
// month, clamped to the last day of shorter months (Jan 31 + 1 = Feb 28).
func AddMonthsClamped(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	d := t.Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}

// expandInstallments turns one entry template into count entries of the same
// group. Due dates advance one month each. In repeat mode the transaction date
// advances too, since each month is its own obligation; in split mode every
// part keeps the purchase date.
func expandInstallments(template *entity.LedgerEntry, count int, mode InstallmentMode) []*entity.LedgerEntry {
	if count <= 1 {
		return []*entity.LedgerEntry{template}
	}

	amounts := make([]decimal.Decimal, count)
	if mode == InstallmentModeSplit {
		amounts = valueobject.SplitCents(template.Amount, count)
	} else {
		for i := range amounts {
			amounts[i] = template.Amount
		}
	}

	groupID := uuid.New()
	entries := make([]*entity.LedgerEntry, count)
	for i := 0; i < count; i++ {
		transactionDate := template.TransactionDate
		if mode == InstallmentModeRepeat {
			transactionDate = AddMonthsClamped(template.TransactionDate, i)
		}

		e := entity.NewLedgerEntry(
			template.CompanyID,
			template.Type,
			fmt.Sprintf("%s (%d/%d)", template.Description, i+1, count),
			amounts[i],
			transactionDate,
			AddMonthsClamped(template.DueDate, i),
			template.CategoryID,
			template.PersonID,
			template.Notes,
			template.CreatedBy,
		)
		e.InstallmentGroupID = &groupID
		e.InstallmentNumber = i + 1
		e.InstallmentTotal = count
		entries[i] = e
	}
	return entries
}
