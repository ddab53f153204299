package entry

import (
	"regexp"
	"strings"
)

// TrackingHeading is the section heading time tracking is read from.
const TrackingHeading = "Time Tracking"

// TimeTracking holds the raw field values of an entry's time tracking
// section. Values are kept as written; pkg/timeutil turns them into hours.
type TimeTracking struct {
	Start string
	End   string
	Extra string
}

// IsZero reports whether no time tracking fields were filled in.
func (t TimeTracking) IsZero() bool {
	return t.Start == "" && t.End == "" && t.Extra == ""
}

var (
	trackingSection = regexp.MustCompile(`(?is)##\s*` + TrackingHeading + `(.*?)(?:##|$)`)
	startField      = regexp.MustCompile(`(?i)Start time\*?\*?:\s*([^\n\r]+)`)
	endField        = regexp.MustCompile(`(?i)End time\*?\*?:\s*([^\n\r]+)`)
	extraField      = regexp.MustCompile(`(?i)Extra hours\*?\*?:\s*([^\n\r]+)`)
)

// ParseTimeTracking extracts the time tracking fields from a daily file.
// Missing section or fields leave the corresponding values empty.
func ParseTimeTracking(content string) TimeTracking {
	var t TimeTracking

	m := trackingSection.FindStringSubmatch(content)
	if m == nil {
		return t
	}
	section := m[1]

	t.Start = trackingField(startField, section)
	t.End = trackingField(endField, section)
	t.Extra = trackingField(extraField, section)
	return t
}

func trackingField(re *regexp.Regexp, section string) string {
	m := re.FindStringSubmatch(section)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
