package handlers

import (
	"log"
	"net/http"

	"arvela.dev/internal/gallery"
	"arvela.dev/internal/services"
)

// GalleryHandler serves the rendered project-card fragment
type GalleryHandler struct {
	projectService *services.ProjectService
	renderer       *gallery.Renderer
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(ps *services.ProjectService, r *gallery.Renderer) *GalleryHandler {
	return &GalleryHandler{projectService: ps, renderer: r}
}

// GetGallery handles GET /api/gallery. The response body replaces the
// gallery container wholesale: on success it is the card list in
// document order, on any load failure it is a single error paragraph.
// The failure fragment is served with status 200 because it is the
// intended fallback UI, not a transport error.
func (h *GalleryHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	projects, err := h.projectService.All(r.Context())
	if err != nil {
		log.Printf("loading gallery: %v", err)
		w.Write([]byte(h.renderer.RenderError(err)))
		return
	}

	w.Write([]byte(h.renderer.RenderGallery(projects)))
}
