// Package vault loads the full object snapshot the cross-reference engine
// consumes.
package vault

import (
	"log/slog"
	"strings"

	"github.com/starford/ansuz/internal/checksum"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/parser"
	"github.com/starford/ansuz/internal/storage"
)

// FromFile parses raw Markdown bytes into an Object. The object id is the
// frontmatter "id" when present, otherwise the relative path with the .md
// suffix stripped.
func FromFile(path string, data []byte) (*models.Object, error) {
	res, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	id := res.String("id")
	if id == "" {
		id = strings.TrimSuffix(path, ".md")
	}

	return &models.Object{
		ID:          id,
		Type:        res.String("type"),
		Title:       res.Title,
		Project:     res.String("project"),
		Path:        path,
		Body:        res.Body,
		Frontmatter: res.Frontmatter,
		CitationKey: res.String("citation_key"),
		Tags:        res.Tags,
		Checksum:    checksum.Sum(data),
	}, nil
}

// Load walks the vault and returns every parseable object, in listing order.
// Unreadable files are logged and skipped; the snapshot is best-effort.
func Load(store storage.Provider, logger *slog.Logger) ([]models.Object, error) {
	metas, err := store.List("")
	if err != nil {
		return nil, err
	}

	out := make([]models.Object, 0, len(metas))
	for _, m := range metas {
		data, err := store.Read(m.Path)
		if err != nil {
			logger.Warn("vault: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		obj, err := FromFile(m.Path, data)
		if err != nil {
			logger.Warn("vault: parse failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		obj.UpdatedAt = m.UpdatedAt
		out = append(out, *obj)
	}
	return out, nil
}
