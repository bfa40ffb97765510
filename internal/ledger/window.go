package ledger

import "time"

// MonthBefore steps t back one calendar month, keeping the clock time and
// location. When the target month is shorter the day is clamped to its last
// day, so Mar 31 becomes Feb 28 (or Feb 29 in a leap year).
func MonthBefore(t time.Time) time.Time {
	year, month, day := t.Date()

	targetYear, targetMonth := year, month-1
	if targetMonth < time.January {
		targetMonth = time.December
		targetYear--
	}

	if last := daysIn(targetYear, targetMonth); day > last {
		day = last
	}

	return time.Date(targetYear, targetMonth, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
