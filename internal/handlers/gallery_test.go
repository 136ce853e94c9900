package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arvela.dev/internal/config"
)

func TestGalleryFragment(t *testing.T) {
	h := routerForDoc(t, `[{"title":"A","description":"d1","thumbnail":"a.png","link":"https://x"}]`)

	w := get(t, h, "/api/gallery")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected an HTML fragment, got content type %q", ct)
	}

	body := w.Body.String()
	if got := strings.Count(body, `<article class="project-card">`); got != 1 {
		t.Fatalf("expected 1 card, got %d", got)
	}
	if !strings.Contains(body, `<h3 class="project-title">A</h3>`) {
		t.Error("expected the project title in the card")
	}
	if !strings.Contains(body, `href="https://x"`) {
		t.Error("expected the unmodified project link")
	}
}

func TestGalleryFragmentOrderAndCount(t *testing.T) {
	h := routerForDoc(t, `[{"title":"first"},{"title":"second"},{"title":"third"}]`)

	body := get(t, h, "/api/gallery").Body.String()
	if got := strings.Count(body, `<article class="project-card">`); got != 3 {
		t.Fatalf("expected 3 cards, got %d", got)
	}
	if !(strings.Index(body, "first") < strings.Index(body, "second") &&
		strings.Index(body, "second") < strings.Index(body, "third")) {
		t.Error("cards not in document order")
	}
}

func TestGalleryFragmentEmptyDocument(t *testing.T) {
	h := routerForDoc(t, `[]`)

	w := get(t, h, "/api/gallery")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "project-card") {
		t.Error("expected no cards for an empty document")
	}
	if strings.Contains(body, "gallery-error") {
		t.Error("an empty document is not an error")
	}
}

func TestGalleryFragmentUpstreamNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	cfg := config.DefaultConfig()
	cfg.ProjectsSource = upstream.URL + "/projects.json"
	h := SetupRoutes(cfg)

	w := get(t, h, "/api/gallery")
	if w.Code != http.StatusOK {
		t.Fatalf("fallback fragment should be served with 200, got %d", w.Code)
	}

	body := w.Body.String()
	if strings.Contains(body, "project-card") {
		t.Error("expected no cards on load failure")
	}
	if got := strings.Count(body, `class="gallery-error"`); got != 1 {
		t.Fatalf("expected exactly one error node, got %d", got)
	}
	if !strings.Contains(body, "Not Found") {
		t.Errorf("expected the failure description in the fragment, got %q", body)
	}
}

func TestGalleryFragmentMalformedDocument(t *testing.T) {
	h := routerForDoc(t, `{"projects": [`)

	body := get(t, h, "/api/gallery").Body.String()
	if got := strings.Count(body, `class="gallery-error"`); got != 1 {
		t.Fatalf("expected exactly one error node, got %d", got)
	}
	if strings.Contains(body, "project-card") {
		t.Error("expected no cards for a malformed document")
	}
}
