// Package content serves the storefront's static pages (help, seller
// guide, terms) from embedded markdown files with YAML front matter.
// Rendered HTML is sanitized before it reaches a template.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed pages/*.md
var pagesFS embed.FS

// ErrPageNotFound is returned when no page exists for a slug.
var ErrPageNotFound = errors.New("content: page not found")

// Page is one rendered static page.
type Page struct {
	Slug      string
	Title     string
	Summary   string
	Body      template.HTML
	UpdatedAt time.Time
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	UpdatedAt string `yaml:"updated_at"`
}

// Loader parses and caches embedded pages.
type Loader struct {
	fsys      fs.FS
	mu        sync.Mutex
	cache     map[string]*Page
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewLoader constructs a Loader over the embedded pages.
func NewLoader() *Loader {
	return &Loader{
		fsys:      pagesFS,
		cache:     map[string]*Page{},
		markdown:  goldmark.New(),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Load returns the page for a slug, rendering and caching it on first
// access.
func (l *Loader) Load(slug string) (*Page, error) {
	slug = strings.Trim(path.Clean(slug), "/")
	if slug == "" || strings.Contains(slug, "..") {
		return nil, ErrPageNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if page, ok := l.cache[slug]; ok {
		return page, nil
	}

	raw, err := fs.ReadFile(l.fsys, "pages/"+slug+".md")
	if err != nil {
		return nil, ErrPageNotFound
	}

	page, err := l.render(slug, raw)
	if err != nil {
		return nil, err
	}
	l.cache[slug] = page
	return page, nil
}

// Slugs lists the available page slugs.
func (l *Loader) Slugs() []string {
	entries, err := fs.ReadDir(l.fsys, "pages")
	if err != nil {
		return nil
	}
	var slugs []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".md") {
			slugs = append(slugs, strings.TrimSuffix(name, ".md"))
		}
	}
	return slugs
}

func (l *Loader) render(slug string, raw []byte) (*Page, error) {
	meta, body := splitFrontMatter(raw)

	var fm frontMatter
	if len(meta) > 0 {
		if err := yaml.Unmarshal(meta, &fm); err != nil {
			return nil, fmt.Errorf("content: parse front matter for %s: %w", slug, err)
		}
	}

	var buf bytes.Buffer
	if err := l.markdown.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("content: render %s: %w", slug, err)
	}
	safe := l.sanitizer.SanitizeBytes(buf.Bytes())

	page := &Page{
		Slug:    slug,
		Title:   fm.Title,
		Summary: fm.Summary,
		Body:    template.HTML(safe),
	}
	if page.Title == "" {
		page.Title = strings.ReplaceAll(slug, "-", " ")
	}
	if fm.UpdatedAt != "" {
		if ts, err := time.Parse("2006-01-02", fm.UpdatedAt); err == nil {
			page.UpdatedAt = ts
		}
	}
	return page, nil
}

func splitFrontMatter(raw []byte) (meta, body []byte) {
	const delim = "---"
	text := string(raw)
	if !strings.HasPrefix(text, delim) {
		return nil, raw
	}
	rest := text[len(delim):]
	idx := strings.Index(rest, "\n"+delim)
	if idx < 0 {
		return nil, raw
	}
	meta = []byte(rest[:idx])
	after := rest[idx+len(delim)+1:]
	return meta, []byte(strings.TrimPrefix(after, "\n"))
}
