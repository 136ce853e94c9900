package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"arvela.dev/internal/config"
	"arvela.dev/internal/gallery"
	"arvela.dev/internal/loader"
	"arvela.dev/internal/metrics"
	"arvela.dev/internal/middleware"
	"arvela.dev/internal/services"
	"arvela.dev/internal/web"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	corsOpts := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if cfg.AllowAllCORS {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	if cfg.MetricsEnabled {
		m := metrics.New()
		r.Use(m.Middleware())
		r.Get("/metrics", m.Handler().ServeHTTP)
	}

	// Initialize services
	projectLoader := loader.New(loader.SourceFor(cfg.ProjectsSource))
	projectService := services.NewProjectService(projectLoader)
	contactService := services.NewContactService()

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	galleryHandler := NewGalleryHandler(projectService, gallery.New())
	contactHandler := NewContactHandler(contactService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/gallery", galleryHandler.GetGallery)
		r.Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Serve the host page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		page, err := web.Index(cfg.SiteTitle)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to render page")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
