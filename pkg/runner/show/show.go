// Package show renders the aggregate document in the terminal.
package show

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/jlog/pkg/store"
)

// Show pretty-prints the aggregate document.
type Show struct {
	Config store.Config

	// Width wraps the rendered output; zero picks a default.
	Width int
}

// Do reads and renders the aggregate document.
func (n *Show) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Width == 0 {
		n.Width = 100
	}

	path := filepath.Join(n.Config.Root(), store.AggregateFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no aggregate document yet, run 'jlog aggregate' first")
		}
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(n.Width),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(string(data))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
