package renderer

import (
	"fmt"
	"strings"

	"tableflip.dev/jlog/pkg/entry"
)

// Table is one category's worth of aggregate records, already ordered by
// date then original line order.
type Table struct {
	Category string
	Records  []entry.Record
}

// Overview summarizes the whole journal for the aggregate document header.
type Overview struct {
	TotalRecords int
	DaysLogged   int
	Latest       entry.Date
	Streak       int
	WeekWork     string
	TotalWork    string
}

// IndexRow is one line of the reverse-chronological entry index. BreakDays
// is the gap to the next (older) logged day; a positive value renders a
// break marker row after this one.
type IndexRow struct {
	Date      entry.Date
	WorkTime  string
	Streak    int
	BreakDays int
}

// Section renders one category heading and its two-column table. Categories
// with zero records still render the table header so the document keeps a
// fixed shape.
func Section(category string, records []entry.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", category)
	b.WriteString("| Date       | Entry |\n")
	b.WriteString("|------------|-------|\n")
	for _, r := range records {
		fmt.Fprintf(&b, "| %s | %s |\n", r.Date, escapeCell(r.Text))
	}
	return b.String()
}

// AggregateDocument assembles the whole aggregate document: overview,
// entry index, then one section per category in configured order.
func AggregateDocument(ov Overview, index []IndexRow, tables []Table) string {
	var b strings.Builder

	b.WriteString("# Journal\n\n")
	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "- **Total entries**: %d\n", ov.TotalRecords)
	fmt.Fprintf(&b, "- **Days logged**: %d\n", ov.DaysLogged)
	if ov.Latest.IsZero() {
		b.WriteString("- **Latest entry**: No entries yet\n")
	} else {
		fmt.Fprintf(&b, "- **Latest entry**: %s\n", ov.Latest)
	}
	fmt.Fprintf(&b, "- **Current streak**: %d days\n", ov.Streak)
	fmt.Fprintf(&b, "- **Current week work time**: %s\n", ov.WeekWork)
	fmt.Fprintf(&b, "- **Total work time**: %s\n", ov.TotalWork)
	b.WriteString("\n")

	b.WriteString("### Summaries\n\n")
	for _, tbl := range tables {
		fmt.Fprintf(&b, "- [%s](%s/%s)\n", tbl.Category, "aggregated", Slug(tbl.Category))
	}
	b.WriteString("\n")

	if len(index) > 0 {
		b.WriteString("### Latest entries\n\n")
		b.WriteString("| Date | Entry | Work Time | Streak |\n")
		b.WriteString("|------|-------|-----------|--------|\n")
		for _, row := range index {
			fmt.Fprintf(&b, "| %s | [%s](entries/%s) | %s | %d |\n",
				row.Date, row.Date, row.Date.Filename(), row.WorkTime, row.Streak)
			if row.BreakDays > 0 {
				fmt.Fprintf(&b, "| | | | **Break: %d days** |\n", row.BreakDays)
			}
		}
		b.WriteString("\n")
	}

	for _, tbl := range tables {
		b.WriteString(Section(tbl.Category, tbl.Records))
		b.WriteString("\n")
	}

	b.WriteString("---\n\n*Generated automatically by jlog*\n")
	return b.String()
}

// CategoryFile renders one aggregated/<slug>.md document: a title and a
// three-column padded table splitting any bracketed comment into its own
// column. Repeated dates are blanked so runs of same-day records read as a
// group.
func CategoryFile(category string, records []entry.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", category)
	b.WriteString("| Date       | Entry                                  | Comment   |\n")
	b.WriteString("|------------|----------------------------------------|-----------|\n")

	prev := ""
	for _, r := range records {
		date := r.Date.String()
		if date == prev {
			date = ""
		} else {
			prev = r.Date.String()
		}
		fmt.Fprintf(&b, "| %-10s | %-38s | %-9s |\n", date, escapeCell(r.Note), escapeCell(r.Comment))
	}
	return b.String()
}

// escapeCell keeps literal pipes in a line from breaking the table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
