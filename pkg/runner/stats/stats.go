// Package stats prints work-time tables from the entries' time tracking.
package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jlog/pkg/entry"
	"tableflip.dev/jlog/pkg/printers"
	"tableflip.dev/jlog/pkg/store"
	"tableflip.dev/jlog/pkg/timeutil"
)

// Stats summarizes tracked work time per day and per week.
type Stats struct {
	Config      store.Config
	Persistence store.Persistence

	// Days limits the daily table to the most recent N days; zero means 30.
	Days int
}

type dayHours struct {
	date  entry.Date
	hours float64
}

// Do reads every entry's time tracking and prints the tables.
func (n *Stats) Do(ctx context.Context) error {
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
	if n.Days == 0 {
		n.Days = 30
	}

	days, datesDesc := n.tracked(ctx, &pp)
	if len(days) == 0 {
		pp.Warnf("no tracked time found")
		return nil
	}

	recent := days
	if len(recent) > n.Days {
		recent = recent[len(recent)-n.Days:]
	}

	pp.NewLine()
	pp.Title("Daily work hours")
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Hours"))
	for _, d := range recent {
		tbl.AddRow(d.date.String(), timeutil.FormatHours(d.hours))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	pp.NewLine()
	pp.Title("Weekly work hours")
	wtbl := uitable.New()
	wtbl.Separator = "  "
	wtbl.AddRow(bold.Sprint("Week starting"), bold.Sprint("Hours"), bold.Sprint("Days"))
	for _, w := range weekly(days) {
		wtbl.AddRow(w.start.String(), timeutil.FormatHours(w.hours), fmt.Sprintf("%d", w.days))
	}
	_, _ = fmt.Fprintln(color.Output, wtbl)

	total := 0.0
	for _, d := range days {
		total += d.hours
	}
	pp.NewLine()
	pp.Successf("Total: %s over %d days, current streak %d days",
		timeutil.FormatHours(total), len(days), entry.Streak(datesDesc))

	return nil
}

// tracked returns per-day hours sorted ascending, plus all logged dates
// sorted descending for the streak.
func (n *Stats) tracked(ctx context.Context, pp *printers.PrettyPrint) ([]dayHours, []entry.Date) {
	var days []dayHours
	var datesDesc []entry.Date
	for _, key := range n.Persistence.Keys(ctx) {
		date, err := entry.DateFromFilename(key)
		if err != nil {
			continue
		}
		data, err := n.Persistence.Read(key)
		if err != nil {
			pp.Warnf("could not read %s: %v", key, err)
			continue
		}
		datesDesc = append([]entry.Date{date}, datesDesc...)

		t := entry.ParseTimeTracking(string(data))
		if hours, ok := timeutil.WorkHours(t.Start, t.End, t.Extra); ok {
			days = append(days, dayHours{date: date, hours: hours})
		}
	}
	return days, datesDesc
}

type weekHours struct {
	start entry.Date
	hours float64
	days  int
}

func weekly(days []dayHours) []weekHours {
	byWeek := make(map[entry.Date]*weekHours)
	for _, d := range days {
		start := d.date.StartOfWeek()
		w, ok := byWeek[start]
		if !ok {
			w = &weekHours{start: start}
			byWeek[start] = w
		}
		w.hours += d.hours
		w.days++
	}

	out := make([]weekHours, 0, len(byWeek))
	for _, w := range byWeek {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start.Before(out[j].start) })
	return out
}
