// Package gallery renders project descriptors into the HTML card
// fragments the portfolio page drops into its gallery container.
package gallery

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"arvela.dev/internal/models"
)

// cardTemplate is the fixed structure of one project card: an image
// region carrying the thumbnail as background, an overlay with the
// action link, and a content region with title, description and tags.
const cardTemplate = `<article class="project-card">
  <div class="project-image" style="background-image: url('{{.Thumbnail}}');">
    <div class="project-overlay">
      <a href="{{.Link}}" target="_blank" rel="noreferrer">View Project</a>
    </div>
  </div>
  <div class="project-content">
    <h3 class="project-title">{{.Title}}</h3>
    <div class="project-description">{{.Description}}</div>
    <div class="project-tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
  </div>
</article>`

var cardTmpl = template.Must(template.New("card").Parse(cardTemplate))

// cardData is the template input for one card.
type cardData struct {
	Title       string
	Description template.HTML
	Thumbnail   string
	Link        string
	Tags        []string
}

// Renderer builds gallery fragments. It holds the markdown converter
// used for project descriptions.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// RenderCard builds one detached card fragment from one descriptor.
// It performs no validation: missing fields render as empty text or a
// broken background reference, never as a failure.
func (r *Renderer) RenderCard(p models.Project) string {
	tags := p.Tags
	if len(tags) == 0 {
		tags = models.DefaultTags
	}

	var buf bytes.Buffer
	err := cardTmpl.Execute(&buf, cardData{
		Title:       p.Title,
		Description: r.description(p.Description),
		Thumbnail:   p.Thumbnail,
		Link:        p.Link,
		Tags:        tags,
	})
	if err != nil {
		return ""
	}
	return buf.String()
}

// RenderGallery builds the full gallery fragment: one card per
// descriptor, in input order. An empty input yields an empty fragment.
func (r *Renderer) RenderGallery(projects []models.Project) string {
	var b strings.Builder
	for i, p := range projects {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.RenderCard(p))
	}
	return b.String()
}

// RenderError builds the fragment that replaces the gallery content
// when the load fails: a single paragraph embedding the failure text.
func (r *Renderer) RenderError(err error) string {
	return `<p class="gallery-error">Failed to load projects: ` +
		template.HTMLEscapeString(err.Error()) + `</p>`
}

// description converts the descriptor's markdown blurb to HTML. If the
// conversion fails the raw text is escaped and used as-is.
func (r *Renderer) description(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(strings.TrimSpace(buf.String()))
}
