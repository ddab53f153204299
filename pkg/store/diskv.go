package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// EntriesDir is the journal subdirectory daily files live in.
const EntriesDir = "entries"

// AggregatedDir is the journal subdirectory per-category tables live in.
const AggregatedDir = "aggregated"

// AggregateFile is the aggregate document at the journal root.
const AggregateFile = "README.md"

var (
	// ErrNoJournal indicates no journal has been initialized yet.
	ErrNoJournal = errors.New("no journal found, run 'jlog init' first")
	// ErrAlreadyExists indicates an entry file is already present.
	ErrAlreadyExists = errors.New("entry already exists")
)

// Persistence is the entry store contract: daily markdown files keyed by
// file name (YYYY-MM-DD.md) in the journal's entries directory. Files are
// stored flat and unencoded so the user's editor sees plain markdown.
type Persistence interface {
	// Keys returns all entry file names, sorted.
	Keys(ctx context.Context) []string
	// Read returns the content of one entry file.
	Read(name string) ([]byte, error)
	// Create writes a new entry file, failing with ErrAlreadyExists if the
	// file is present. Existing content is never touched.
	Create(name string, data []byte) error
	// Has reports whether an entry file exists.
	Has(name string) bool
}

// Load creates a Persistence backed by diskv rooted at the journal's
// entries directory. It fails if the directory is missing so aggregation
// can abort before any output is written.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := filepath.Join(cfg.Root(), EntriesDir)
	if _, err := os.Stat(basePath); err != nil {
		return nil, err
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil }, // flat: key is the file name
		CacheSizeMax: 1024 * 1024,                          // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasSuffix(key, ".md") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (p *persistence) Read(name string) ([]byte, error) {
	return p.d.Read(name)
}

func (p *persistence) Create(name string, data []byte) error {
	// Two racing creates are an accepted edge case: the check and the write
	// are not atomic, the second invocation loses.
	if p.d.Has(name) {
		return ErrAlreadyExists
	}
	return p.d.Write(name, data)
}

func (p *persistence) Has(name string) bool {
	return p.d.Has(name)
}
