// Package loader retrieves and decodes the projects document.
//
// A load is one fetch and one decode, with no partial result: either the
// full ordered project sequence comes back, or a single LoadError does.
package loader

import (
	"bytes"
	"context"
	"encoding/json"

	"arvela.dev/internal/models"
)

// Loader performs single-shot loads of the projects document.
type Loader struct {
	src Source
}

// New creates a Loader backed by the given source.
func New(src Source) *Loader {
	return &Loader{src: src}
}

// Source returns the underlying source.
func (l *Loader) Source() Source { return l.src }

// Load fetches the document and decodes it into an ordered project slice.
// The document may be a bare JSON array or a {"projects": [...]} wrapper.
// An empty array yields an empty slice and no error.
func (l *Loader) Load(ctx context.Context) ([]models.Project, error) {
	data, err := l.src.Fetch(ctx)
	if err != nil {
		return nil, sourceErr(l.src.Name(), err)
	}

	projects, err := decode(data)
	if err != nil {
		return nil, decodeErr(l.src.Name(), err)
	}

	return projects, nil
}

func decode(data []byte) ([]models.Project, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var list models.ProjectList
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return list.Projects, nil
	}

	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
