package rates

import "time"

const (
	// DateFormat is the dd.mm.yyyy layout the bank API expects and reports use.
	DateFormat = "02.01.2006"
	MaxDays    = 10
)

func FormatDate(date time.Time) string {
	return date.Format(DateFormat)
}

func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, value, time.Local)
}

// ClampDays limits days to MaxDays. Zero or negative stays as is.
func ClampDays(days int) int {
	if days > MaxDays {
		return MaxDays
	}

	return days
}

// Dates returns now, now-1d, ... for ClampDays(days) days.
func Dates(now time.Time, days int) []time.Time {
	days = ClampDays(days)
	if days <= 0 {
		return nil
	}

	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, now.AddDate(0, 0, -i))
	}

	return dates
}
