// Package renderer builds the markdown documents jlog writes: the daily
// entry template, the per-category tables, and the aggregate document.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"tableflip.dev/jlog/pkg/entry"
)

//go:embed templates/*.md
var templates embed.FS

// Daily renders a fresh daily entry for the given date: a date header, the
// time tracking section, and one empty section per category in order.
func Daily(d entry.Date, categories []string) (string, error) {
	return renderTemplate("daily", "templates/daily.md", struct {
		Date       string
		Weekday    string
		Categories []string
	}{
		Date:       d.String(),
		Weekday:    d.Weekday().String(),
		Categories: categories,
	})
}

func renderTemplate(name, file string, data any) (string, error) {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return "", fmt.Errorf("reading template %q: %w", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering template %q: %w", name, err)
	}
	return b.String(), nil
}

// Slug turns a category name into the per-category file name, e.g.
// "What didn't go well / blockers" becomes "what-didnt-go-well-blockers.md".
func Slug(category string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(category) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '/' || r == '_':
			dash = true
		}
	}
	return b.String() + ".md"
}
