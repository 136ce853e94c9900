package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"arvela.dev/internal/loader"
)

func serviceForDoc(t *testing.T, doc string) *ProjectService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("writing projects doc: %v", err)
	}
	return NewProjectService(loader.New(&loader.FileSource{Path: path}))
}

func TestAll(t *testing.T) {
	s := serviceForDoc(t, `[{"id":"a","title":"A"},{"id":"b","title":"B"}]`)

	projects, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
}

func TestGetByID(t *testing.T) {
	s := serviceForDoc(t, `[{"id":"a","title":"A"},{"id":"b","title":"B"}]`)

	p, err := s.GetByID(context.Background(), "b")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Title != "B" {
		t.Errorf("expected title 'B', got %q", p.Title)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := serviceForDoc(t, `[{"id":"a","title":"A"}]`)

	_, err := s.GetByID(context.Background(), "zzz")
	if err == nil {
		t.Fatal("expected an error for unknown id")
	}
	if errors.Is(err, loader.ErrSourceUnavailable) || errors.Is(err, loader.ErrDecodeFailed) {
		t.Errorf("not-found should not be a load error, got %v", err)
	}
}

func TestGetByIDLoadFailure(t *testing.T) {
	s := NewProjectService(loader.New(&loader.FileSource{Path: filepath.Join(t.TempDir(), "absent.json")}))

	_, err := s.GetByID(context.Background(), "a")
	if !errors.Is(err, loader.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
