// Package today creates the current day's entry file from the template.
package today

import (
	"context"
	"errors"
	"path/filepath"

	"tableflip.dev/jlog/pkg/entry"
	"tableflip.dev/jlog/pkg/printers"
	"tableflip.dev/jlog/pkg/renderer"
	"tableflip.dev/jlog/pkg/store"
)

// Today scaffolds one daily entry. Creation is strictly no-clobber: if the
// file exists, the first file's content is left untouched and the run fails.
type Today struct {
	Config      store.Config
	Persistence store.Persistence

	// Date overrides the day to scaffold; zero means the current day.
	Date entry.Date
}

// Do creates the entry file.
func (n *Today) Do(ctx context.Context) error {
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

	date := n.Date
	if date.IsZero() {
		date = entry.Today()
	}

	content, err := renderer.Daily(date, n.Config.Categories())
	if err != nil {
		return err
	}
	if err := n.Persistence.Create(date.Filename(), []byte(content)); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			pp.Errorf("Today's entry already exists: %s", n.entryPath(date))
		}
		return err
	}

	pp.Successf("Created today's entry: %s", n.entryPath(date))
	return nil
}

func (n *Today) entryPath(date entry.Date) string {
	return filepath.Join(n.Config.Root(), store.EntriesDir, date.Filename())
}
