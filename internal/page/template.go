// internal/page/template.go
//
// Embedded page template.  One template is enough for the demo; theme
// lookup chains belong to a real site, not a tutorial.
package page

import (
	"embed"
	"html/template"
	"io"

	"github.com/yanizio/polyglot/internal/locale"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// pageData feeds page.html.  Locales powers the language switcher.
type pageData struct {
	Locale  string
	Locales []locale.Locale
	Slug    string
	Title   string
	Body    string
}

func render(w io.Writer, data pageData) error {
	return pageTmpl.ExecuteTemplate(w, "page.html", data)
}
