package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/logos
var staticFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Dashboard writes the dashboard page.
func (r *Renderer) Dashboard(w io.Writer, d Dashboard) error {
	if err := r.tmpl.ExecuteTemplate(w, "dashboard.html", d); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}

// Logos serves the embedded logo images. Mount it with the /logos/ prefix stripped.
func Logos() http.Handler {
	sub, err := fs.Sub(staticFS, "static/logos")
	if err != nil {
		// The embed directive guarantees the directory exists
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
