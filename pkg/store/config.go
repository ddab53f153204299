package store

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultCategories is the ordered category list new journals start with.
var DefaultCategories = []string{
	"What I accomplished",
	"What didn't go well / blockers",
	"What I learned",
	"What to improve",
}

// DefaultMessage is the commit message template; {date} expands to the
// entry date.
const DefaultMessage = "Update journal logs on {date}"

// Config exposes the journal configuration.
type Config interface {
	// Root is the journal root directory, with ~ already expanded.
	Root() string
	// Categories is the ordered list of recognized category headings.
	Categories() []string
	// Message is the commit message template, with a {date} placeholder.
	Message() string
}

// LoadConfig reads the .jlog config file. Search order: JLOG_CONFIG_PATH
// override, the working directory, then the home directory. Environment
// variables with the JLOG prefix override file values.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName(".jlog") // .yaml is implicit
	v.SetEnvPrefix("JLOG")
	v.AutomaticEnv()
	v.SetDefault("categories", DefaultCategories)
	v.SetDefault("message", DefaultMessage)

	if override := os.Getenv("JLOG_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	root := v.GetString("root")
	if root == "" {
		return nil, ErrNoJournal
	}
	root, err := homedir.Expand(root)
	if err != nil {
		return nil, fmt.Errorf("expanding journal root: %w", err)
	}

	categories := v.GetStringSlice("categories")
	if len(categories) == 0 {
		return nil, fmt.Errorf("config declares an empty category list")
	}

	return &fileConfig{
		JournalRoot:     root,
		CategoryList:    categories,
		MessageTemplate: v.GetString("message"),
	}, nil
}

// SaveConfig writes a .jlog.yaml recording the journal root and category
// list. The file lands in the home directory, or the JLOG_CONFIG_PATH
// directory when set.
func SaveConfig(root string, categories []string) error {
	dir := os.Getenv("JLOG_CONFIG_PATH")
	if dir == "" {
		var err error
		dir, err = homedir.Dir()
		if err != nil {
			return fmt.Errorf("locating home directory: %w", err)
		}
	}

	v := viper.New()
	v.Set("root", root)
	v.Set("categories", categories)
	v.Set("message", DefaultMessage)
	return v.WriteConfigAs(filepath.Join(dir, ".jlog.yaml"))
}

type fileConfig struct {
	JournalRoot     string   `json:"root"`
	CategoryList    []string `json:"categories"`
	MessageTemplate string   `json:"message"`
}

func (f *fileConfig) Root() string         { return f.JournalRoot }
func (f *fileConfig) Categories() []string { return f.CategoryList }
func (f *fileConfig) Message() string      { return f.MessageTemplate }
