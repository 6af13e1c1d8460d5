package views

import (
	"embed"
	"html"
	"html/template"

	"github.com/russross/blackfriday/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// RenderMarkdown turns report markdown into HTML. Raw HTML coming from the
// model is escaped first so it shows up as text.
func RenderMarkdown(md string) template.HTML {
	out := blackfriday.Run([]byte(html.EscapeString(md)))
	return template.HTML(out)
}
