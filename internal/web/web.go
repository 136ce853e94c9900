// Package web embeds the host page and stylesheet for single-binary
// deployment.
package web

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed static/index.html static/style.css static/app.js
var StaticFS embed.FS

var indexTmpl = template.Must(template.ParseFS(StaticFS, "static/index.html"))

// Index renders the host page with the configured site title.
func Index(title string) ([]byte, error) {
	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, struct{ Title string }{Title: title})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
