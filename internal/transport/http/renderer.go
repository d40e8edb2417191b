package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders the embedded page templates. mediaURL turns a stored asset
// path into a public URL.
type Renderer struct {
	templates *template.Template
}

func NewRenderer(mediaURL func(string) string) (*Renderer, error) {
	funcs := template.FuncMap{
		"media": mediaURL,
		"date": func(t time.Time, layout string) string {
			return t.Format(layout)
		},
		"stars": func(n int) string {
			if n < 0 {
				n = 0
			}
			return strings.Repeat("★", n)
		},
		"safe": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("http.NewRenderer: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
