package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed *.tmpl
var files embed.FS

var pages = []string{"dashboard.tmpl", "login.tmpl", "edit.tmpl"}

// Renderer holds the parsed page templates. Every page is parsed together
// with the shared layout so interpolated values are auto-escaped in context.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.ParseFS(files, "layout.tmpl", page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown template %s", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
