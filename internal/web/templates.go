package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/avetrov/habits-server/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"shortDate": func(t time.Time) string { return t.Format("2006-01-02") },
}

// Templates renders the server-side HTML views from templates embedded in
// the binary.
type Templates struct {
	index *template.Template
	add   *template.Template
}

func New() (*Templates, error) {
	index, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	add, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/add.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse add template: %w", err)
	}

	return &Templates{index: index, add: add}, nil
}

// RenderIndex writes the day view page.
func (t *Templates) RenderIndex(w io.Writer, view model.DayView) error {
	if err := t.index.ExecuteTemplate(w, "layout.html", view); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return nil
}

// RenderAdd writes the add-habit page for the given display date.
func (t *Templates) RenderAdd(w io.Writer, date time.Time) error {
	data := struct{ Date time.Time }{Date: date}
	if err := t.add.ExecuteTemplate(w, "layout.html", data); err != nil {
		return fmt.Errorf("failed to render add: %w", err)
	}
	return nil
}
