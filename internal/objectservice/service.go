// Package objectservice coordinates storage, the SQLite index, and the
// cross-reference engine.
package objectservice

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/crossref"
	"github.com/starford/ansuz/internal/graph"
	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/vault"
)

// ObjectDetail is the full representation of an object.
type ObjectDetail struct {
	ID          string             `json:"id"`
	Path        string             `json:"path"`
	Title       string             `json:"title"`
	Type        string             `json:"type,omitempty"`
	Project     string             `json:"project,omitempty"`
	Content     string             `json:"content"`
	Checksum    string             `json:"checksum"`
	Tags        []string           `json:"tags"`
	Frontmatter map[string]any     `json:"frontmatter,omitempty"`
	Outgoing    []models.Link      `json:"outgoing_links"`
	Backlinks   []models.Backlink  `json:"backlinks"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ObjectListItem is a lightweight item in a list response.
type ObjectListItem struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Title     string    `json:"title"`
	Type      string    `json:"type,omitempty"`
	Project   string    `json:"project,omitempty"`
	Checksum  string    `json:"checksum"`
	Tags      []string  `json:"tags"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service coordinates storage and index operations.
type Service struct {
	store    storage.Provider
	db       index.ObjectIndex
	profiles []models.ProjectProfile
}

// NewService creates a new object service. profiles feed the project
// dependency graph; an empty list yields an empty graph.
func NewService(store storage.Provider, db index.ObjectIndex, profiles []models.ProjectProfile) *Service {
	return &Service{store: store, db: db, profiles: profiles}
}

// GetObject reads an object from storage, parses it, and enriches it with
// cross-references computed against the current snapshot.
func (s *Service) GetObject(_ context.Context, path string) (*ObjectDetail, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	obj, err := vault.FromFile(path, data)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.db.AllObjects()
	if err != nil {
		return nil, err
	}
	refs := crossref.ObjectCrossRefs(obj, snapshot)

	return &ObjectDetail{
		ID:          obj.ID,
		Path:        obj.Path,
		Title:       obj.Title,
		Type:        obj.Type,
		Project:     obj.Project,
		Content:     string(data),
		Checksum:    obj.Checksum,
		Tags:        nonNilSlice(obj.Tags),
		Frontmatter: obj.Frontmatter,
		Outgoing:    nonNilSlice(refs.Outgoing),
		Backlinks:   nonNilSlice(refs.Backlinks),
		UpdatedAt:   time.Now(),
	}, nil
}

// CrossRefs returns the cross-references of the object stored at path.
func (s *Service) CrossRefs(_ context.Context, path string) (*models.CrossRefs, error) {
	snapshot, err := s.db.AllObjects()
	if err != nil {
		return nil, err
	}
	for i := range snapshot {
		if snapshot[i].Path == path {
			refs := crossref.ObjectCrossRefs(&snapshot[i], snapshot)
			refs.Outgoing = nonNilSlice(refs.Outgoing)
			return refs, nil
		}
	}
	return nil, apperr.ErrNotFound
}

// AllCrossRefs computes cross-references for every indexed object.
func (s *Service) AllCrossRefs(_ context.Context) (map[string]*models.CrossRefs, error) {
	snapshot, err := s.db.AllObjects()
	if err != nil {
		return nil, err
	}
	return crossref.ComputeAllCrossRefs(snapshot), nil
}

// ListObjects returns paginated objects with optional project/type filters.
func (s *Service) ListObjects(_ context.Context, limit, offset int, project, objType, sort string) ([]ObjectListItem, int, error) {
	objs, total, err := s.db.ListObjects(limit, offset, project, objType, sort)
	if err != nil {
		return nil, 0, err
	}
	items := make([]ObjectListItem, len(objs))
	for i, o := range objs {
		items[i] = ObjectListItem{
			ID:        o.ID,
			Path:      o.Path,
			Title:     o.Title,
			Type:      o.Type,
			Project:   o.Project,
			Checksum:  o.Checksum,
			Tags:      nonNilSlice(o.Tags),
			UpdatedAt: o.UpdatedAt,
		}
	}
	return items, total, nil
}

// Search delegates full-text search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

// ObjectGraph builds the whole-vault object graph from the current snapshot.
func (s *Service) ObjectGraph(_ context.Context) (*models.Graph, error) {
	snapshot, err := s.db.AllObjects()
	if err != nil {
		return nil, err
	}
	return graph.BuildObjectGraph(snapshot), nil
}

// ProjectGraph builds the project dependency graph from the declared
// profiles and the current snapshot.
func (s *Service) ProjectGraph(_ context.Context) (*models.ProjectGraph, error) {
	snapshot, err := s.db.AllObjects()
	if err != nil {
		return nil, err
	}
	return graph.BuildProjectDependencyGraph(s.profiles, snapshot), nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
