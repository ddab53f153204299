// Package initialize scaffolds a new journal directory and its config.
package initialize

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/jlog/pkg/gitbridge"
	"tableflip.dev/jlog/pkg/printers"
	"tableflip.dev/jlog/pkg/renderer"
	"tableflip.dev/jlog/pkg/store"
)

// Git is the slice of the git bridge initialization needs.
type Git interface {
	Init(ctx context.Context) error
	AddRemote(ctx context.Context, url string) error
}

// Initialize interactively scaffolds the journal folder structure, records
// the config, and optionally creates a git repository.
type Initialize struct {
	// In supplies prompt answers; defaults to os.Stdin.
	In io.Reader
	// Dir is the parent directory the journal is created in; defaults to
	// the working directory.
	Dir string
	// Categories for the new journal; defaults to store.DefaultCategories.
	Categories []string

	// NewGit and SaveConfig exist so tests can intercept side effects.
	NewGit     func(dir string) Git
	SaveConfig func(root string, categories []string) error
}

// Do runs the scaffold.
func (n *Initialize) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.In == nil {
		n.In = os.Stdin
	}
	if n.Dir == "" {
		var err error
		n.Dir, err = os.Getwd()
		if err != nil {
			return err
		}
	}
	if len(n.Categories) == 0 {
		n.Categories = store.DefaultCategories
	}
	if n.NewGit == nil {
		n.NewGit = func(dir string) Git { return gitbridge.New(dir) }
	}
	if n.SaveConfig == nil {
		n.SaveConfig = store.SaveConfig
	}

	in := bufio.NewReader(n.In)

	pp.Stepf("Initializing jlog journal...")

	name := prompt(in, "Journal root folder name (default: journal): ")
	if name == "" {
		name = "journal"
	}

	root := filepath.Join(n.Dir, name)
	if _, err := os.Stat(root); err == nil {
		return fmt.Errorf("directory %q already exists", name)
	}

	if err := os.MkdirAll(filepath.Join(root, store.EntriesDir), 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(root, store.AggregatedDir), 0o755); err != nil {
		return err
	}

	for _, c := range n.Categories {
		content := renderer.CategoryFile(c, nil)
		path := filepath.Join(root, store.AggregatedDir, renderer.Slug(c))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	pp.Successf("Created journal structure in %q", name)

	if err := n.SaveConfig(root, n.Categories); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	switch prompt(in, "Initialize Git repository? (y/n): ") {
	case "y", "yes", "Y", "Yes":
		g := n.NewGit(root)
		if err := g.Init(ctx); err != nil {
			pp.Errorf("Failed to initialize Git: %v", err)
			break
		}
		pp.Successf("Git repository initialized")

		if url := prompt(in, "Remote URL (optional): "); url != "" {
			if err := g.AddRemote(ctx, url); err != nil {
				pp.Errorf("Failed to add remote: %v", err)
			} else {
				pp.Successf("Remote 'origin' added: %s", url)
			}
		}
	}

	pp.Successf("Journal initialized, use 'jlog today' to create your first entry")
	return nil
}

func prompt(in *bufio.Reader, question string) string {
	fmt.Fprint(color.Output, question)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
