package utils

import (
	"strings"
	"time"
)

// FormatDate renders a time using the display patterns the web clients use
// (DD/MM/YYYY, HH, mm, ss placeholders). A zero time renders as "".
func FormatDate(t time.Time, format string) string {
	if t.IsZero() {
		return ""
	}
	replacer := strings.NewReplacer(
		"DD", t.Format("02"),
		"MM", t.Format("01"),
		"YYYY", t.Format("2006"),
		"HH", t.Format("15"),
		"mm", t.Format("04"),
		"ss", t.Format("05"),
	)
	return replacer.Replace(format)
}

func FormatDateTime(t time.Time) string {
	return FormatDate(t, "DD/MM/YYYY HH:mm")
}

func FormatTime(t time.Time) string {
	return FormatDate(t, "HH:mm")
}

func FormatDateShort(t time.Time) string {
	return FormatDate(t, "DD/MM/YYYY")
}

func IsToday(t, now time.Time) bool {
	return sameDay(t, now)
}

func IsTomorrow(t, now time.Time) bool {
	return sameDay(t, now.AddDate(0, 0, 1))
}

func IsYesterday(t, now time.Time) bool {
	return sameDay(t, now.AddDate(0, 0, -1))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
