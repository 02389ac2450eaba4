package insights

import "time"

// MonthKey formats a date as the canonical "YYYY-MM" month key using the
// date's own year and month. No timezone conversion is applied beyond what
// the time value already encodes.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
