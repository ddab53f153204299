package entry

import (
	"regexp"
	"strings"
)

// Record is one bullet line extracted from a category section: the date of
// the entry it came from, the category it was filed under, and the line
// itself. Text carries the line verbatim with only its list marker removed;
// Note and Comment split a trailing [bracketed] remark off the line for
// renderings that want it in its own column.
type Record struct {
	Date     Date
	Category string
	Text     string
	Note     string
	Comment  string
}

// Entry is one parsed daily journal file.
type Entry struct {
	Date     Date
	Records  []Record
	Tracking TimeTracking
}

var (
	bulletMarker = regexp.MustCompile(`^\s*[-*+]\s+`)
	orderedMark  = regexp.MustCompile(`^\s*\d+\.\s+`)
	bracketNote  = regexp.MustCompile(`\[(.*?)\]`)
)

// Parse splits a daily file into category sections and flattens them into
// records. Category headings are matched exactly and case-sensitively
// against the configured list: a line is a section start only if it is
// "## " followed by a configured category name. Any other heading line ends
// the current section, so text before the first recognized heading and the
// content of unrecognized headings is discarded. Lines within a section are
// opaque apart from list-marker stripping.
func Parse(date Date, content string, categories []string) *Entry {
	e := &Entry{Date: date}

	recognized := make(map[string]bool, len(categories))
	for _, c := range categories {
		recognized[c] = true
	}

	current := ""
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, "##"))
			if strings.HasPrefix(trimmed, "## ") && recognized[name] {
				current = name
			} else {
				current = ""
			}
			continue
		}
		if current == "" || trimmed == "" {
			continue
		}

		text := bulletMarker.ReplaceAllString(trimmed, "")
		text = orderedMark.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		r := Record{Date: date, Category: current, Text: text, Note: text}
		if m := bracketNote.FindStringSubmatch(text); m != nil {
			r.Comment = m[1]
			r.Note = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
		}
		e.Records = append(e.Records, r)
	}

	e.Tracking = ParseTimeTracking(content)
	return e
}

// Section returns the records filed under the given category, in file order.
func (e *Entry) Section(category string) []Record {
	var out []Record
	for _, r := range e.Records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}
