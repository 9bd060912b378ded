// Package web bundles the server-rendered pages and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ParseTemplates parses all embedded page templates
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// StaticFS returns the embedded static asset tree rooted at its contents
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
