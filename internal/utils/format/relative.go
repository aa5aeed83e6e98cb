package format

import (
	"fmt"
	"time"
)

// Relative renders t as a coarse distance from now: "just now",
// "5 minutes ago", "3 days ago" and so on.
func Relative(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())

	if seconds < 60 {
		if seconds <= 1 {
			return "just now"
		}
		return fmt.Sprintf("%d seconds ago", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return plural(minutes, "minute")
	}

	hours := minutes / 60
	if hours < 24 {
		return plural(hours, "hour")
	}

	days := hours / 24
	if days < 7 {
		return plural(days, "day")
	}

	weeks := days / 7
	if weeks < 4 {
		return plural(weeks, "week")
	}

	months := days / 30
	if months < 12 {
		return plural(months, "month")
	}

	return plural(days/365, "year")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
