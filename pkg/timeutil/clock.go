// Package timeutil parses human-entered clock times and turns a day's time
// tracking fields into worked hours.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	hoursPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)h?$`)

	// Layouts accepted for start and end times, tried in order.
	clockLayouts = []string{
		"15:04",    // 09:00, 17:30
		"3:04 PM",  // 9:00 AM, 5:30 PM
		"3:04PM",   // 9:00AM, 5:30PM
		"15.04",    // 09.00, 17.30
		"15",       // 9, 17
		"3 PM",     // 9 AM, 5 PM
	}
)

// ParseClock parses a clock time like "09:00", "5:30 PM", or "17". It
// returns the time anchored to an arbitrary fixed day so two parsed clocks
// can be subtracted.
func ParseClock(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, strings.ToUpper(trimmed))
		if err != nil {
			continue
		}
		return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized clock time %q", s)
}

// ParseExtraHours parses an extra-hours field like "2h", "1.5", or "0.5h".
func ParseExtraHours(s string) (float64, error) {
	m := hoursPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("unrecognized hours value %q", s)
	}
	return strconv.ParseFloat(m[1], 64)
}

// WorkHours computes worked hours from start and end clock strings plus an
// optional extra-hours field: end - start - 1h lunch + extra, floored at
// zero. An end before the start is treated as rolling into the next day.
// It returns false when start or end is missing or unparsable.
func WorkHours(start, end, extra string) (float64, bool) {
	if start == "" || end == "" {
		return 0, false
	}
	s, err := ParseClock(start)
	if err != nil {
		return 0, false
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, false
	}
	if e.Before(s) {
		e = e.Add(24 * time.Hour)
	}

	hours := e.Sub(s).Hours() - 1
	if hours < 0 {
		hours = 0
	}
	if extra != "" {
		if x, err := ParseExtraHours(extra); err == nil {
			hours += x
		}
	}
	return hours, true
}

// FormatHours renders hours compactly: "8h" for whole values, "7.5h"
// otherwise.
func FormatHours(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%dh", int(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}
