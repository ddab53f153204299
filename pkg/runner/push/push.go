// Package push aggregates the journal and records it with git.
package push

import (
	"context"
	"fmt"
	"strings"

	"tableflip.dev/jlog/pkg/entry"
	"tableflip.dev/jlog/pkg/gitbridge"
	"tableflip.dev/jlog/pkg/printers"
	"tableflip.dev/jlog/pkg/runner/aggregate"
	"tableflip.dev/jlog/pkg/store"
)

// Git is the slice of the git bridge pushing needs.
type Git interface {
	IsRepo() bool
	Add(ctx context.Context) error
	Commit(ctx context.Context, message string) (bool, error)
	Push(ctx context.Context) error
}

// Push re-aggregates and then runs add, commit, push. Add or commit
// failure aborts the sequence; push failure is reported but the local
// commit stands.
type Push struct {
	Config      store.Config
	Persistence store.Persistence
	Git         Git

	// Date stamps the commit message; zero means the current day.
	Date entry.Date
}

// Do runs the sequence.
func (n *Push) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Git == nil {
		n.Git = gitbridge.New(n.Config.Root())
	}
	if !n.Git.IsRepo() {
		return fmt.Errorf("%s is not a git repository, initialize git during 'jlog init'", n.Config.Root())
	}

	a := &aggregate.Aggregate{Config: n.Config, Persistence: n.Persistence, Today: n.Date}
	if err := a.Do(ctx); err != nil {
		return err
	}

	date := n.Date
	if date.IsZero() {
		date = entry.Today()
	}

	pp.Stepf("Adding files to Git...")
	if err := n.Git.Add(ctx); err != nil {
		return err
	}

	message := strings.ReplaceAll(n.Config.Message(), "{date}", date.String())
	pp.Stepf("Committing changes: %s", message)
	committed, err := n.Git.Commit(ctx, message)
	if err != nil {
		return err
	}
	if !committed {
		pp.Successf("Nothing to commit, working tree clean")
	}

	pp.Stepf("Pushing to remote...")
	if err := n.Git.Push(ctx); err != nil {
		// The local commit stands; only the publish step failed.
		pp.Warnf("push failed, local commit kept: %v", err)
		return nil
	}
	pp.Successf("Pushed to remote")

	return nil
}
