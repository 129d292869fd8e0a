// Package dashboard contains the income statement aggregator and the
// dashboard use cases built on it.
package dashboard

import (
	"fmt"
	"time"
)

// Granularity represents the time granularity of a period series.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// IsValid reports whether the granularity is supported.
func (g Granularity) IsValid() bool {
	return g == GranularityDaily || g == GranularityWeekly || g == GranularityMonthly
}

// monthAbbreviations maps months to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// PeriodInfo holds information about a single period.
type PeriodInfo struct {
	Date        time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodLabel string
}

// GeneratePeriodLabel generates a human-readable label for a period based on granularity.
// Formats:
// - Daily: "DD/MM/YYYY" (e.g., "14/03/2025")
// - Weekly: "S{week} {year}" (e.g., "S12 2025")
// - Monthly: "{month_abbr} {year}" (e.g., "Mar 2025")
func GeneratePeriodLabel(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("S%d %d", week, year)
	case GranularityMonthly:
		return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
	default:
		return date.Format("02/01/2006")
	}
}

// GetPeriodBounds returns the start and end dates for a period containing the given date.
func GetPeriodBounds(date time.Time, granularity Granularity) (start, end time.Time) {
	switch granularity {
	case GranularityWeekly:
		start = getWeekStartDate(date)
		end = start.AddDate(0, 0, 6)
	case GranularityMonthly:
		start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	default:
		start = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		end = start
	}
	return start, end
}

// GeneratePeriodSeries generates all periods between startDate and endDate for the given granularity.
// The first and last periods are clipped to the range so that no day outside it is covered.
func GeneratePeriodSeries(startDate, endDate time.Time, granularity Granularity) []PeriodInfo {
	var periods []PeriodInfo

	current, _ := GetPeriodBounds(startDate, granularity)
	last, _ := GetPeriodBounds(endDate, granularity)
	for !current.After(last) {
		periodStart, periodEnd := GetPeriodBounds(current, granularity)
		if periodStart.Before(startDate) {
			periodStart = startDate
		}
		if periodEnd.After(endDate) {
			periodEnd = endDate
		}
		periods = append(periods, PeriodInfo{
			Date:        current,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			PeriodLabel: GeneratePeriodLabel(current, granularity),
		})
		current = nextPeriod(current, granularity)
	}

	return periods
}

// GetPeriodKeyForDate returns a unique key for the period containing the given date.
func GetPeriodKeyForDate(date time.Time, granularity Granularity) string {
	start, _ := GetPeriodBounds(date, granularity)
	return start.Format("2006-01-02")
}

func nextPeriod(current time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityWeekly:
		return current.AddDate(0, 0, 7)
	case GranularityMonthly:
		return current.AddDate(0, 1, 0)
	default:
		return current.AddDate(0, 0, 1)
	}
}

// getWeekStartDate returns the Monday of the week containing the given date.
func getWeekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, time.UTC)
}
