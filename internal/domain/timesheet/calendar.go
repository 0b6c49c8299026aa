package timesheet

import "time"

// Day describes one calendar day of the displayed month.
type Day struct {
	Number    int    `json:"number"`
	Weekday   string `json:"weekday"`
	IsWeekend bool   `json:"is_weekend"`
}

var weekdayLabels = [7]string{"CN", "T2", "T3", "T4", "T5", "T6", "T7"}

// DaysInMonth returns the ordered day descriptors for a month. Pure; callers
// are expected to pass a sane year and month.
func DaysInMonth(year int, month time.Month) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	count := first.AddDate(0, 1, -1).Day()

	days := make([]Day, 0, count)
	for i := 1; i <= count; i++ {
		wd := time.Date(year, month, i, 0, 0, 0, 0, time.UTC).Weekday()
		days = append(days, Day{
			Number:    i,
			Weekday:   weekdayLabels[wd],
			IsWeekend: wd == time.Sunday || wd == time.Saturday,
		})
	}
	return days
}
