// Package web renders the server-side pages: the public storefront and the
// role-scoped dashboard shell.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"medistore/models"
	"medistore/navigation"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcMap = template.FuncMap{
	"money": func(v any) string {
		switch x := v.(type) {
		case float64:
			return fmt.Sprintf("$%.2f", x)
		case *float64:
			if x == nil {
				return "$0.00"
			}
			return fmt.Sprintf("$%.2f", *x)
		case int:
			return fmt.Sprintf("$%d.00", x)
		}
		return ""
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	t := template.Must(template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html"))
	return &Renderer{tmpl: t}
}

// Render executes into a buffer first so a template failure becomes a 500
// instead of a half-written page.
func (rn *Renderer) Render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("web: render %s: %v", name, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Base carries what every template needs: the resolved user and, on
// dashboard pages, the sidebar for their role.
type Base struct {
	Title    string
	User     models.UserInfo
	SignedIn bool
	Path     string
	Sidebar  []navigation.RouteGroup
	Error    string
	Message  string
}
