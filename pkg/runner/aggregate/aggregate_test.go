package aggregate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/jlog/pkg/entry"
	"tableflip.dev/jlog/pkg/store"
)

type testConfig struct {
	root       string
	categories []string
}

func (c *testConfig) Root() string         { return c.root }
func (c *testConfig) Categories() []string { return c.categories }
func (c *testConfig) Message() string      { return store.DefaultMessage }

func newJournal(t *testing.T, categories []string) (*testConfig, store.Persistence) {
	t.Helper()
	cfg := &testConfig{root: t.TempDir(), categories: categories}
	if err := os.MkdirAll(filepath.Join(cfg.root, store.EntriesDir), 0o755); err != nil {
		t.Fatalf("mkdir entries: %v", err)
	}
	p, err := store.Load(cfg)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return cfg, p
}

func writeEntry(t *testing.T, p store.Persistence, name, content string) {
	t.Helper()
	if err := p.Create(name, []byte(content)); err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
}

func run(t *testing.T, cfg *testConfig, p store.Persistence) string {
	t.Helper()
	a := &Aggregate{Config: cfg, Persistence: p, Today: entry.MustParseDate("2024-01-02")}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(cfg.root, store.AggregateFile))
	if err != nil {
		t.Fatalf("read aggregate document: %v", err)
	}
	return string(data)
}

func TestAggregateExample(t *testing.T) {
	cfg, p := newJournal(t, []string{"Ideas"})
	writeEntry(t, p, "2024-01-01.md", "## Ideas\n- build jlog\n")
	writeEntry(t, p, "2024-01-02.md", "## Ideas\n- refine jlog\n")

	doc := run(t, cfg, p)

	first := strings.Index(doc, "| 2024-01-01 | build jlog |")
	second := strings.Index(doc, "| 2024-01-02 | refine jlog |")
	if first < 0 || second < 0 {
		t.Fatalf("rows missing from document:\n%s", doc)
	}
	if first > second {
		t.Fatalf("rows out of date order:\n%s", doc)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	cfg, p := newJournal(t, []string{"Ideas", "Questions"})
	writeEntry(t, p, "2024-01-01.md", "## Ideas\n- one\n\n## Questions\n- why\n")
	writeEntry(t, p, "2024-01-02.md", "## Ideas\n- two\n")

	firstRun := run(t, cfg, p)
	secondRun := run(t, cfg, p)
	if firstRun != secondRun {
		t.Fatalf("aggregation is not idempotent:\n--- first ---\n%s\n--- second ---\n%s", firstRun, secondRun)
	}

	slug := filepath.Join(cfg.root, store.AggregatedDir, "ideas.md")
	one, err := os.ReadFile(slug)
	if err != nil {
		t.Fatalf("read category file: %v", err)
	}
	run(t, cfg, p)
	two, err := os.ReadFile(slug)
	if err != nil {
		t.Fatalf("read category file: %v", err)
	}
	if string(one) != string(two) {
		t.Fatalf("category file not idempotent")
	}
}

func TestAggregateCompleteness(t *testing.T) {
	cfg, p := newJournal(t, []string{"Ideas"})
	writeEntry(t, p, "2024-01-01.md", "## Ideas\n- a\n- b\n- c\n")

	doc := run(t, cfg, p)

	for _, text := range []string{"| 2024-01-01 | a |", "| 2024-01-01 | b |", "| 2024-01-01 | c |"} {
		if c := strings.Count(doc, text); c != 1 {
			t.Fatalf("expected exactly one %q row, got %d:\n%s", text, c, doc)
		}
	}
}

func TestAggregateSameDayKeepsLineOrder(t *testing.T) {
	cfg, p := newJournal(t, []string{"Ideas"})
	writeEntry(t, p, "2024-01-01.md", "## Ideas\n- first\n- second\n- third\n")

	doc := run(t, cfg, p)

	a := strings.Index(doc, "| 2024-01-01 | first |")
	b := strings.Index(doc, "| 2024-01-01 | second |")
	c := strings.Index(doc, "| 2024-01-01 | third |")
	if a < 0 || b < 0 || c < 0 || !(a < b && b < c) {
		t.Fatalf("same-day rows out of original order:\n%s", doc)
	}
}

func TestAggregateSkipsBadFilenames(t *testing.T) {
	cfg, p := newJournal(t, []string{"Ideas"})
	writeEntry(t, p, "2024-01-01.md", "## Ideas\n- keep me\n")
	writeEntry(t, p, "notes.md", "## Ideas\n- not an entry\n")

	doc := run(t, cfg, p)

	if !strings.Contains(doc, "keep me") {
		t.Fatalf("valid entry missing:\n%s", doc)
	}
	if strings.Contains(doc, "not an entry") {
		t.Fatalf("misnamed file was aggregated:\n%s", doc)
	}
}

func TestAggregateIsolatesUnreadableFiles(t *testing.T) {
	cfg, p := newJournal(t, []string{"Ideas"})
	writeEntry(t, p, "2024-01-01.md", "## Ideas\n- survives\n")
	writeEntry(t, p, "2024-01-02.md", "## Ideas\n- unreadable\n")
	if err := os.Chmod(filepath.Join(cfg.root, store.EntriesDir, "2024-01-02.md"), 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, chmod 000 is still readable")
	}

	doc := run(t, cfg, p)

	if !strings.Contains(doc, "survives") {
		t.Fatalf("one bad file prevented aggregation of the rest:\n%s", doc)
	}
	if strings.Contains(doc, "| 2024-01-02 | unreadable |") {
		t.Fatalf("unreadable file produced records:\n%s", doc)
	}
}

func TestAggregateEmptyCategoryKeepsHeader(t *testing.T) {
	cfg, p := newJournal(t, []string{"Ideas", "Never Used"})
	writeEntry(t, p, "2024-01-01.md", "## Ideas\n- only ideas\n")

	doc := run(t, cfg, p)

	idx := strings.Index(doc, "## Never Used")
	if idx < 0 {
		t.Fatalf("empty category heading missing:\n%s", doc)
	}
	if !strings.Contains(doc[idx:], "| Date       | Entry |") {
		t.Fatalf("empty category lost its table header:\n%s", doc)
	}
}

func TestAggregateCategoryOrderIsConfigured(t *testing.T) {
	cfg, p := newJournal(t, []string{"Zulu", "Alpha"})
	writeEntry(t, p, "2024-01-01.md", "## Alpha\n- a\n\n## Zulu\n- z\n")

	doc := run(t, cfg, p)

	if strings.Index(doc, "## Zulu") > strings.Index(doc, "## Alpha") {
		t.Fatalf("categories not in configured order:\n%s", doc)
	}
}

func TestAggregateOverviewAndWorkTime(t *testing.T) {
	cfg, p := newJournal(t, []string{"Ideas"})
	writeEntry(t, p, "2024-01-01.md", `# 2024-01-01

## Time Tracking

- **Start time**: 09:00
- **End time**: 17:00

## Ideas

- tracked day
`)
	writeEntry(t, p, "2024-01-02.md", "## Ideas\n- untracked day\n")

	doc := run(t, cfg, p)

	for _, want := range []string{
		"- **Total entries**: 2",
		"- **Days logged**: 2",
		"- **Latest entry**: 2024-01-02",
		"- **Current streak**: 2 days",
		"- **Total work time**: 7h (1 days)",
		"| 2024-01-01 | [2024-01-01](entries/2024-01-01.md) | 7h | 1 |",
		"| 2024-01-02 | [2024-01-02](entries/2024-01-02.md) | - | 2 |",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestAggregateWorkTimeSumsRawHours(t *testing.T) {
	cfg, p := newJournal(t, []string{"Ideas"})
	// Each day works out to 7.25h, which displays rounded as "7.2h". The
	// totals sum the raw hours, not the rounded display values.
	for _, name := range []string{"2024-01-01.md", "2024-01-02.md"} {
		writeEntry(t, p, name, `## Time Tracking

- **Start time**: 09:00
- **End time**: 17:15

## Ideas

- work
`)
	}

	doc := run(t, cfg, p)

	if !strings.Contains(doc, "| 7.2h |") {
		t.Fatalf("per-day hours not rendered:\n%s", doc)
	}
	if !strings.Contains(doc, "- **Total work time**: 14.5h (2 days)") {
		t.Fatalf("total lost precision:\n%s", doc)
	}
}

func TestAggregateIndexBreaks(t *testing.T) {
	cfg, p := newJournal(t, []string{"Ideas"})
	writeEntry(t, p, "2023-12-28.md", "## Ideas\n- old\n")
	writeEntry(t, p, "2024-01-02.md", "## Ideas\n- recent\n")

	doc := run(t, cfg, p)

	if !strings.Contains(doc, "**Break: 4 days**") {
		t.Fatalf("missing break marker:\n%s", doc)
	}
}

func TestAggregateFailsWithoutEntriesDir(t *testing.T) {
	cfg := &testConfig{root: t.TempDir(), categories: []string{"Ideas"}}
	a := &Aggregate{Config: cfg}
	if err := a.Do(context.Background()); err == nil {
		t.Fatalf("expected fatal error for missing entries directory")
	}
}
