package api

import (
	"time"

	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/objectservice"
)

// ObjectDetail is the full object response type (aliased from the domain layer).
type ObjectDetail = objectservice.ObjectDetail

// ObjectListItem is a lightweight item in a list response (aliased from the domain layer).
type ObjectListItem = objectservice.ObjectListItem

// ObjectListResponse wraps paginated object listings.
type ObjectListResponse struct {
	Objects []ObjectListItem `json:"objects" validate:"required"`
	Total   int              `json:"total" example:"42" validate:"required"`
}

// CrossRefsResponse is the cross-reference payload for a single object.
type CrossRefsResponse = models.CrossRefs

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	Path    string `json:"path" example:"refs/smith2024.md" validate:"required"`
	Title   string `json:"title" example:"Smith 2024" validate:"required"`
	Snippet string `json:"snippet" example:"...matched text..." validate:"required"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results" validate:"required"`
}

// GraphResponse wraps the object graph.
type GraphResponse = models.Graph

// ProjectGraphResponse wraps the project dependency graph.
type ProjectGraphResponse = models.ProjectGraph

// ObjectListItemDTO mirrors ObjectListItem for swag.
type ObjectListItemDTO struct {
	ID        string    `json:"id" example:"smith2024"`
	Path      string    `json:"path" example:"refs/smith2024.md"`
	Title     string    `json:"title" example:"Smith 2024"`
	Type      string    `json:"type,omitempty" example:"bibtex_entry"`
	Project   string    `json:"project,omitempty" example:"thesis"`
	Checksum  string    `json:"checksum" example:"abc123..."`
	Tags      []string  `json:"tags" example:"tag1,tag2"`
	UpdatedAt time.Time `json:"updated_at"`
}
