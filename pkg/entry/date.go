package entry

import (
	"fmt"
	"time"
)

// DateFormat is the layout entry files are named with.
const DateFormat = "2006-01-02"

// Date represents a journal day with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formats the date in its standard YYYY-MM-DD form.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return NewDate(d.y, d.m, d.d+days) }

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d == Date{} }

// StartOfWeek returns the Monday of the week d falls in.
func (d Date) StartOfWeek() Date {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset = 6 // Sunday
	}
	return d.Add(-offset)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", s, DateFormat, err)
	}
	return NewDate(t.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// DateFromFilename derives the date key for an entry file name like
// "2025-07-15.md". The name must be exactly the date plus the markdown
// extension; anything else is rejected so stray files in the entries
// directory are skipped instead of aggregated.
func DateFromFilename(name string) (Date, error) {
	const ext = ".md"
	if len(name) != len(DateFormat)+len(ext) || name[len(name)-len(ext):] != ext {
		return Date{}, fmt.Errorf("entry file %q does not match YYYY-MM-DD.md", name)
	}
	return ParseDate(name[:len(DateFormat)])
}

// Filename returns the entry file name for the date.
func (d Date) Filename() string { return d.String() + ".md" }
