package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/internal/viewmodel"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"list", "details", "form", "delete", "error"}

// Renderer renders the embedded pages, each inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"date":     formatDate,
		"listURL":  listURL,
		"sortLink": sortLink,
		"selected": func(a, b string) bool { return a == b },
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// pageData is what every page template receives.
type pageData struct {
	Title       string
	Flash       string
	CSRFToken   string
	Action      string
	Message     string
	Data        interface{}
	Errors      map[string]string
	Departments []model.Department
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(viewmodel.DateLayout)
}

// listURL links to another page of l, keeping its search, sort and filters.
func listURL(l *viewmodel.EmployeeList, sort string, page int) string {
	q := url.Values{}
	if sort != "" {
		q.Set("sort", sort)
	}
	if l.CurrentFilter != "" {
		q.Set("search", l.CurrentFilter)
	}
	if l.Department != "" {
		q.Set("department", l.Department)
	}
	if v := l.ActiveValue(); v != "" {
		q.Set("active", v)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return "/employees"
	}
	return "/employees?" + q.Encode()
}

// sortLink toggles a column between ascending and descending and starts
// again from the first page.
func sortLink(l *viewmodel.EmployeeList, column string) string {
	current := l.CurrentSort
	if current == "" {
		current = string(model.SortName)
	}
	next := column
	if current == column {
		next = column + "_desc"
	}
	return listURL(l, next, 1)
}
