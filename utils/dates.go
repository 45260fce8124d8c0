// utils/dates.go - Calendar-day window helpers
package utils

import (
	"fmt"
	"time"
)

// DayLayout is the wire format for date filters.
const DayLayout = "2006-01-02"

// DayWindow resolves a YYYY-MM-DD string to the inclusive instant range
// [00:00:00.000, 23:59:59.999] of that calendar date in server local time.
func DayWindow(date string) (start, end time.Time, err error) {
	start, err = time.ParseInLocation(DayLayout, date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	end = start.Add(24*time.Hour - time.Millisecond)
	return start, end, nil
}
