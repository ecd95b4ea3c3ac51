package render

import (
	"fmt"
	"strconv"
	"time"
)

type timeUnit struct {
	label   string
	seconds int64
}

// fixed length units, years and months ignore the calendar on purpose
var timeUnits = []timeUnit{
	{label: "year", seconds: 31536000},
	{label: "month", seconds: 2592000},
	{label: "week", seconds: 604800},
	{label: "day", seconds: 86400},
	{label: "hour", seconds: 3600},
}

// RelativeTime formats elapsed seconds as "N units ago" using the largest unit that fits at least once
func RelativeTime(elapsedSeconds int64) string {
	for _, unit := range timeUnits {
		count := elapsedSeconds / unit.seconds

		if count >= 1 {
			if count > 1 {
				return fmt.Sprintf("%d %ss ago", count, unit.label)
			}

			return fmt.Sprintf("%d %s ago", count, unit.label)
		}
	}

	return "just now"
}

// TimeAgo is RelativeTime for the duration between t and now
func TimeAgo(now, t time.Time) string {
	return RelativeTime(int64(now.Sub(t) / time.Second))
}

// FormatSize formats a repository size given in kilobytes
func FormatSize(kb int) string {
	if kb >= 1024 {
		return strconv.FormatFloat(float64(kb)/1024, 'f', 1, 64) + " MB"
	}

	return strconv.Itoa(kb) + " KB"
}

// Percent returns part as a percentage of total with one decimal
func Percent(part, total int) string {
	if total == 0 {
		return "0.0"
	}

	return strconv.FormatFloat(float64(part)/float64(total)*100, 'f', 1, 64)
}
