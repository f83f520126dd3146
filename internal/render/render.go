// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render parses the embedded page templates and executes them
// with the normalizer helpers exposed as template functions.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/fcbrooklyn/fcsite/internal/util"
)

// htmlSanitizer strips dangerous markup from operator-entered rich text
// before it reaches the page. UGCPolicy allows the usual safe tags.
var htmlSanitizer = bluemonday.UGCPolicy()

// Renderer handles template rendering. Templates are parsed once at
// startup; in development they are re-parsed per request so edits show
// up without a restart.
type Renderer struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
	fsys      fs.FS
	isDev     bool
}

// Config holds renderer configuration.
type Config struct {
	TemplatesFS fs.FS
	IsDev       bool
}

// New creates a Renderer with parsed templates.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		fsys:  cfg.TemplatesFS,
		isDev: cfg.IsDev,
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseTemplates parses every page template against the base layout and
// all partials.
func (r *Renderer) parseTemplates() error {
	partials, err := r.templateFiles("partials")
	if err != nil {
		return fmt.Errorf("getting partials: %w", err)
	}

	pages, err := r.templateFiles("pages")
	if err != nil {
		return fmt.Errorf("getting pages: %w", err)
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := strings.TrimSuffix(filepath.Base(page), ".html")

		files := []string{"layouts/base.html"}
		files = append(files, partials...)
		files = append(files, page)

		tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(r.fsys, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	r.mu.Lock()
	r.templates = templates
	r.mu.Unlock()
	return nil
}

// templateFiles returns all .html files in a directory.
func (r *Renderer) templateFiles(dir string) ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		// Directory might not exist, that's ok.
		return nil, nil
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			files = append(files, dir+"/"+entry.Name())
		}
	}
	return files, nil
}

// Render executes a page template into the response. The template is
// buffered so a mid-render failure yields a clean 500 instead of a
// half-written page.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) error {
	if r.isDev {
		if err := r.parseTemplates(); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
			return err
		}
	}

	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()
	if !ok {
		http.Error(w, "page not found", http.StatusInternalServerError)
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return fmt.Errorf("executing template %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// Markdown converts operator-entered markdown into sanitized HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		// Render the raw text escaped rather than dropping content.
		return template.HTML(template.HTMLEscapeString(src)) //nolint:gosec // escaped above
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes())) //nolint:gosec // sanitized above
}

// templateFuncs exposes the field normalizers to the templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"safeURL": func(raw string) template.URL {
			// SanitizeURL already rejects unsafe schemes; marking the
			// result trusted keeps tel: links from being filtered out.
			return template.URL(util.SanitizeURL(raw)) //nolint:gosec // sanitized above
		},
		"directImage": util.DirectImageURL,
		"formatDate":  util.FormatDate,
		"formatTime":  util.FormatTime,
		"daysUntil":   util.DaysUntil,
		"slugify":     util.Slugify,
		"whatsapp":    util.WhatsAppURL,
		"mapsLink":    util.MapsURL,
		"gradient":    util.PlaceholderGradient,
		"markdown":    Markdown,
		"css": func(s string) template.CSS {
			return template.CSS(s) //nolint:gosec // values come from the settings record
		},
		"add": func(a, b int) int { return a + b },
	}
}
