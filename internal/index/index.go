package index

import "github.com/starford/ansuz/internal/models"

// ObjectIndex defines the interface for object indexing operations.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type ObjectIndex interface {
	UpsertObject(o *models.Object) error
	DeleteObject(path string) error
	GetChecksum(path string) (string, error)
	ListObjects(limit, offset int, project, objType, sort string) ([]models.Object, int, error)
	AllObjects() ([]models.Object, error)
	AllChecksums() (map[string]string, error)
	Search(query string, limit int) ([]SearchResult, error)
	Close() error
}

// Verify *DB satisfies ObjectIndex at compile time.
var _ ObjectIndex = (*DB)(nil)
