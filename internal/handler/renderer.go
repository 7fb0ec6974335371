package handler

import (
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Renderer manages template parsing and rendering with isolated template sets.
// Each page template is parsed into its own clone of the layout so page-level
// block definitions never collide.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the storefront and admin template trees under
// templatesDir. Storefront pages live in storefront/*.html against
// layout.html; admin pages in admin/*.html against admin/layout.html.
func NewRenderer(templatesDir string) (*Renderer, error) {
	templates := make(map[string]*template.Template)

	baseTmpl, err := template.New("base").Funcs(TemplateFuncs()).
		ParseFiles(filepath.Join(templatesDir, "layout.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	adminBaseTmpl, err := template.New("admin_base").Funcs(TemplateFuncs()).
		ParseFiles(filepath.Join(templatesDir, "admin", "layout.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin layout: %w", err)
	}

	if err := parsePages(templates, baseTmpl, filepath.Join(templatesDir, "storefront"), "storefront/"); err != nil {
		return nil, err
	}
	if err := parsePages(templates, adminBaseTmpl, filepath.Join(templatesDir, "admin"), "admin/"); err != nil {
		return nil, err
	}

	return &Renderer{templates: templates}, nil
}

// parsePages clones base for every page in dir and stores it under
// prefix+name. layout.html and partials (underscore prefix) are skipped.
func parsePages(templates map[string]*template.Template, base *template.Template, dir, prefix string) error {
	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return fmt.Errorf("failed to glob templates in %s: %w", dir, err)
	}

	for _, page := range pages {
		baseName := filepath.Base(page)
		if baseName == "layout.html" || strings.HasPrefix(baseName, "_") {
			continue
		}

		pageTmpl, err := base.Clone()
		if err != nil {
			return fmt.Errorf("failed to clone template for %s: %w", page, err)
		}

		pageTmpl, err = pageTmpl.ParseFiles(page)
		if err != nil {
			return fmt.Errorf("failed to parse page %s: %w", page, err)
		}

		name := baseName[:len(baseName)-len(filepath.Ext(baseName))]
		templates[prefix+name] = pageTmpl
	}

	return nil
}

// Execute returns a named template set.
func (r *Renderer) Execute(name string) (*template.Template, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	return tmpl, nil
}

// Render executes a named template and writes to an io.Writer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	tmpl, err := r.Execute(name)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

// RenderHTTP renders to an http.ResponseWriter with error handling.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, name string, data interface{}) {
	tmpl, err := r.Execute(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "template error: %v\n", err)
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	execName := "base"
	if strings.HasPrefix(name, "admin/") {
		execName = "admin_base"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, execName, data); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// LoadEmailTemplates parses the email template tree under templatesDir.
func LoadEmailTemplates(templatesDir string) (*template.Template, error) {
	tmpl, err := template.New("email").Funcs(TemplateFuncs()).
		ParseGlob(filepath.Join(templatesDir, "email", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return tmpl, nil
}
