package market

import (
	"testing"
	"time"

	"github.com/piquette/finance-go/datetime"
)

func TestHistoryWindow(t *testing.T) {
	now := time.Date(2025, 7, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period    string
		dailyOnly bool
		start     time.Time
		interval  datetime.Interval
		intraday  bool
	}{
		{"1D", false, now.AddDate(0, 0, -1), datetime.FiveMins, true},
		{"1W", false, now.AddDate(0, 0, -7), datetime.OneHour, true},
		{"1M", false, now.AddDate(0, -1, 0), datetime.OneDay, false},
		{"1Y", false, now.AddDate(-1, 0, 0), datetime.OneDay, false},
		// Unknown tokens behave like 1D.
		{"6M", false, now.AddDate(0, 0, -1), datetime.FiveMins, true},
		{"", false, now.AddDate(0, 0, -1), datetime.FiveMins, true},
		{"1D", true, now.AddDate(0, 0, -1), datetime.OneDay, false},
		{"1W", true, now.AddDate(0, 0, -5), datetime.OneDay, false},
		{"1M", true, now.AddDate(0, -1, 0), datetime.OneDay, false},
		{"1Y", true, now.AddDate(-1, 0, 0), datetime.OneDay, false},
		{"6M", true, now.AddDate(0, 0, -1), datetime.OneDay, false},
	}

	for _, tt := range tests {
		start, interval, intraday := historyWindow(tt.period, tt.dailyOnly, now)
		if !start.Equal(tt.start) || interval != tt.interval || intraday != tt.intraday {
			t.Errorf("historyWindow(%q, dailyOnly=%v) = (%v, %v, %v), want (%v, %v, %v)",
				tt.period, tt.dailyOnly, start, interval, intraday, tt.start, tt.interval, tt.intraday)
		}
	}
}

func TestHistoryWindowUnknownTokenMatchesOneDay(t *testing.T) {
	now := time.Date(2025, 7, 18, 12, 0, 0, 0, time.UTC)

	for _, dailyOnly := range []bool{false, true} {
		wantStart, wantInterval, wantIntraday := historyWindow("1D", dailyOnly, now)
		start, interval, intraday := historyWindow("6M", dailyOnly, now)
		if !start.Equal(wantStart) || interval != wantInterval || intraday != wantIntraday {
			t.Errorf("historyWindow(6M, dailyOnly=%v) = (%v, %v, %v), want the 1D window (%v, %v, %v)",
				dailyOnly, start, interval, intraday, wantStart, wantInterval, wantIntraday)
		}
	}
}
