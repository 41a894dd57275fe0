package storage

import "github.com/starford/ansuz/internal/models"

// Provider abstracts read access to the vault file tree.
type Provider interface {
	// List returns metadata for every .md file under dir (relative to root).
	List(dir string) ([]models.ObjectMetadata, error)
	// Read returns the raw bytes of a vault file.
	Read(path string) ([]byte, error)
}
