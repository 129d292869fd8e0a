package dashboard

import (
	"testing"
	"time"
)

func TestEstimate(t *testing.T) {
	april := mustRange("2024-04-01", "2024-04-30")

	tests := []struct {
		name          string
		current       string
		today         time.Time
		wantElapsed   int
		wantAverage   string
		wantEstimated string
	}{
		{
			name:          "tenth day of a thirty day month",
			current:       "1000",
			today:         day("2024-04-10"),
			wantElapsed:   10,
			wantAverage:   "100",
			wantEstimated: "3000",
		},
		{
			name:          "clock part of today is ignored",
			current:       "1000",
			today:         time.Date(2024, 4, 10, 23, 30, 0, 0, time.UTC),
			wantElapsed:   10,
			wantAverage:   "100",
			wantEstimated: "3000",
		},
		{
			name:          "first day counts as one elapsed day",
			current:       "50",
			today:         day("2024-04-01"),
			wantElapsed:   1,
			wantAverage:   "50",
			wantEstimated: "1500",
		},
		{
			name:          "range not started yet",
			current:       "0",
			today:         day("2024-03-20"),
			wantElapsed:   0,
			wantAverage:   "0",
			wantEstimated: "0",
		},
		{
			name:          "range already over",
			current:       "600",
			today:         day("2024-06-01"),
			wantElapsed:   30,
			wantAverage:   "20",
			wantEstimated: "600",
		},
		{
			name:          "uneven average is rounded to cents",
			current:       "100",
			today:         day("2024-04-03"),
			wantElapsed:   3,
			wantAverage:   "33.33",
			wantEstimated: "1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(dec(tt.current), april, tt.today)

			if got.TotalDays != 30 {
				t.Errorf("TotalDays = %d, want 30", got.TotalDays)
			}
			if got.DaysElapsed != tt.wantElapsed {
				t.Errorf("DaysElapsed = %d, want %d", got.DaysElapsed, tt.wantElapsed)
			}
			if !got.DailyAverage.Equal(dec(tt.wantAverage)) {
				t.Errorf("DailyAverage = %s, want %s", got.DailyAverage, tt.wantAverage)
			}
			if !got.EstimatedTotal.Equal(dec(tt.wantEstimated)) {
				t.Errorf("EstimatedTotal = %s, want %s", got.EstimatedTotal, tt.wantEstimated)
			}
		})
	}
}
