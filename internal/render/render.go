// Package render turns a merged portfolio document into a standalone HTML
// page for one of the built-in templates.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"devcanvas/internal/portfolio"
)

// Renderer renders portfolio documents. Templates are parsed once at
// construction; an unknown template id falls back to the default.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the built-in templates.
func New() (*Renderer, error) {
	sources := map[string]string{
		"github-default":    githubDefaultTemplate,
		"modern-dev":        modernDevTemplate,
		"minimal-pro":       minimalProTemplate,
		"resume-plus":       resumePlusTemplate,
		"case-study":        caseStudyTemplate,
		"creative-showcase": creativeShowcaseTemplate,
	}

	parsed := make(map[string]*template.Template, len(sources))
	for id, src := range sources {
		t, err := template.New(id).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", id, err)
		}
		parsed[id] = t
	}
	return &Renderer{templates: parsed}, nil
}

// MustNew wraps New and panics on failure.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render produces the HTML page for data using its selected template.
func (r *Renderer) Render(data portfolio.PortfolioData) ([]byte, error) {
	t, ok := r.templates[data.Template]
	if !ok {
		t = r.templates[portfolio.DefaultTemplate]
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template %s: %w", data.Template, err)
	}
	return buf.Bytes(), nil
}

// Has reports whether id names a renderable template.
func (r *Renderer) Has(id string) bool {
	_, ok := r.templates[id]
	return ok
}
