// Package aggregate rebuilds the aggregate documents from the entry store.
package aggregate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/jlog/pkg/entry"
	"tableflip.dev/jlog/pkg/printers"
	"tableflip.dev/jlog/pkg/renderer"
	"tableflip.dev/jlog/pkg/store"
	"tableflip.dev/jlog/pkg/timeutil"
)

// Aggregate scans every entry file and rewrites the aggregate document and
// the per-category tables. One unreadable or misnamed file is skipped with
// a warning; only a missing entry store aborts the run.
type Aggregate struct {
	Config      store.Config
	Persistence store.Persistence

	// Today anchors streak and week computations; zero means the current day.
	Today entry.Date
}

// Do runs the aggregation.
func (n *Aggregate) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		var err error
		n.Persistence, err = store.Load(n.Config)
		if err != nil {
			return err
		}
	}
	today := n.Today
	if today.IsZero() {
		today = entry.Today()
	}

	pp.Stepf("Aggregating journal entries...")

	entries := n.collect(ctx, &pp)
	doc := build(entries, n.Config.Categories(), today)

	root := n.Config.Root()
	if err := os.MkdirAll(filepath.Join(root, store.AggregatedDir), 0o755); err != nil {
		return err
	}

	for _, tbl := range doc.Tables {
		name := renderer.Slug(tbl.Category)
		content := renderer.CategoryFile(tbl.Category, tbl.Records)
		if err := os.WriteFile(filepath.Join(root, store.AggregatedDir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		pp.Successf("Updated %s with %d entries", name, len(tbl.Records))
	}

	content := renderer.AggregateDocument(doc.Overview, doc.Index, doc.Tables)
	if err := os.WriteFile(filepath.Join(root, store.AggregateFile), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", store.AggregateFile, err)
	}
	pp.Successf("Updated %s with %d total entries", store.AggregateFile, doc.Overview.TotalRecords)

	return nil
}

// collect reads and parses every entry file, skipping bad ones.
func (n *Aggregate) collect(ctx context.Context, pp *printers.PrettyPrint) []*entry.Entry {
	var entries []*entry.Entry
	for _, key := range n.Persistence.Keys(ctx) {
		date, err := entry.DateFromFilename(key)
		if err != nil {
			pp.Warnf("skipping %s: %v", key, err)
			continue
		}
		data, err := n.Persistence.Read(key)
		if err != nil {
			pp.Warnf("could not read %s: %v", key, err)
			continue
		}
		entries = append(entries, entry.Parse(date, string(data), n.Config.Categories()))
	}
	return entries
}

// document holds everything the renderer needs for one aggregation run.
type document struct {
	Tables   []renderer.Table
	Index    []renderer.IndexRow
	Overview renderer.Overview
}

// build groups records per category and computes the overview. Entries
// arrive sorted by date ascending, so appending in order yields the
// date-then-line ordering the tables promise.
func build(entries []*entry.Entry, categories []string, today entry.Date) document {
	byCategory := make(map[string][]entry.Record, len(categories))
	worked := make(map[entry.Date]float64, len(entries))
	total := 0

	var datesDesc []entry.Date
	for _, e := range entries {
		for _, r := range e.Records {
			byCategory[r.Category] = append(byCategory[r.Category], r)
			total++
		}
		t := e.Tracking
		if hours, ok := timeutil.WorkHours(t.Start, t.End, t.Extra); ok {
			worked[e.Date] = hours
		}
		datesDesc = append([]entry.Date{e.Date}, datesDesc...)
	}

	tables := make([]renderer.Table, 0, len(categories))
	for _, c := range categories {
		tables = append(tables, renderer.Table{Category: c, Records: byCategory[c]})
	}

	ov := renderer.Overview{
		TotalRecords: total,
		DaysLogged:   len(datesDesc),
		Streak:       entry.Streak(datesDesc),
		WeekWork:     weekWork(worked, today),
		TotalWork:    totalWork(worked),
	}
	if len(datesDesc) > 0 {
		ov.Latest = datesDesc[0]
	}

	return document{
		Tables:   tables,
		Index:    indexRows(datesDesc, worked),
		Overview: ov,
	}
}

// indexRows lays out the reverse-chronological entry index: within a run of
// consecutive days the oldest gets streak 1 and the newest the run length,
// and a gap to the next older run renders as a break marker.
func indexRows(datesDesc []entry.Date, worked map[entry.Date]float64) []renderer.IndexRow {
	var rows []renderer.IndexRow
	groups := entry.StreakGroups(datesDesc)
	for gi, group := range groups {
		for i, d := range group {
			row := renderer.IndexRow{
				Date:     d,
				WorkTime: "-",
				Streak:   len(group) - i,
			}
			if hours, ok := worked[d]; ok {
				row.WorkTime = timeutil.FormatHours(hours)
			}
			if i == len(group)-1 && gi < len(groups)-1 {
				next := groups[gi+1][0]
				row.BreakDays = gapDays(next, d) - 1
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func gapDays(older, newer entry.Date) int {
	days := 0
	for d := older; d.Before(newer); d = d.Add(1) {
		days++
	}
	return days
}

func totalWork(worked map[entry.Date]float64) string {
	total, days := sumWorked(worked, func(entry.Date) bool { return true })
	if days == 0 {
		return "-"
	}
	return fmt.Sprintf("%s (%d days)", timeutil.FormatHours(total), days)
}

func weekWork(worked map[entry.Date]float64, today entry.Date) string {
	start := today.StartOfWeek()
	end := start.Add(6)
	total, days := sumWorked(worked, func(d entry.Date) bool {
		return !d.Before(start) && !d.After(end)
	})
	if days == 0 {
		return "-"
	}
	return fmt.Sprintf("%s (%d days, %s to %s)", timeutil.FormatHours(total), days, start, end)
}

func sumWorked(worked map[entry.Date]float64, include func(entry.Date) bool) (float64, int) {
	total, days := 0.0, 0
	for d, hours := range worked {
		if !include(d) {
			continue
		}
		total += hours
		days++
	}
	return total, days
}
