package index

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/starford/ansuz/internal/models"
)

// SearchResult represents one search hit.
type SearchResult struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// UpsertObject inserts or replaces an object and its FTS entry within a
// transaction.
func (db *DB) UpsertObject(o *models.Object) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	tagsJSON, _ := json.Marshal(o.Tags)

	_, err = tx.Exec(`
		INSERT INTO objects (path, id, title, type, project, citation_key, tags, body, checksum, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			id           = excluded.id,
			title        = excluded.title,
			type         = excluded.type,
			project      = excluded.project,
			citation_key = excluded.citation_key,
			tags         = excluded.tags,
			body         = excluded.body,
			checksum     = excluded.checksum,
			updated_at   = excluded.updated_at
	`, o.Path, o.ID, o.Title, o.Type, o.Project, o.CitationKey, string(tagsJSON), o.Body, o.Checksum, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert object: %w", err)
	}

	// FTS upsert (no-op when FTS5 tag is absent).
	if err := ftsUpsert(tx, o.Path, o.Title, o.Body, o.Tags); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteObject removes an object and its FTS entry.
func (db *DB) DeleteObject(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, path)
	_, _ = tx.Exec(`DELETE FROM objects WHERE path = ?`, path)

	return tx.Commit()
}

// GetChecksum returns the stored checksum for an object, or empty string if
// not found.
func (db *DB) GetChecksum(path string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM objects WHERE path = ?`, path).Scan(&cs)
	if err != nil {
		return "", nil // not found is fine
	}
	return cs, nil
}

// AllChecksums returns path → checksum for every indexed object.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM objects`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

// AllObjects returns the full object snapshot (including bodies) ordered by
// path, the deterministic input of the cross-reference engine.
func (db *DB) AllObjects() ([]models.Object, error) {
	rows, err := db.conn.Query(`
		SELECT path, id, title, type, project, citation_key, tags, body, checksum, updated_at
		FROM objects
		ORDER BY path
	`)
	if err != nil {
		return nil, fmt.Errorf("index: all objects: %w", err)
	}
	defer rows.Close()
	return scanObjects(rows)
}

// ListObjects returns a page of objects (bodies omitted) with optional
// project and type filters. sort must be one of updated_at, title, path.
func (db *DB) ListObjects(limit, offset int, project, objType, sort string) ([]models.Object, int, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	where := ` WHERE 1=1`
	args := []any{}
	if project != "" {
		where += ` AND project = ?`
		args = append(args, project)
	}
	if objType != "" {
		where += ` AND type = ?`
		args = append(args, objType)
	}

	var total int
	if err := db.conn.QueryRow(`SELECT count(*) FROM objects`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count objects: %w", err)
	}

	orderBy := `path`
	switch sort {
	case "updated_at":
		orderBy = `updated_at DESC`
	case "title":
		orderBy = `title`
	}

	query := `
		SELECT path, id, title, type, project, citation_key, tags, '' AS body, checksum, updated_at
		FROM objects` + where + ` ORDER BY ` + orderBy + ` LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list objects: %w", err)
	}
	defer rows.Close()

	objs, err := scanObjects(rows)
	if err != nil {
		return nil, 0, err
	}
	return objs, total, nil
}

func scanObjects(rows *sql.Rows) ([]models.Object, error) {
	var out []models.Object
	for rows.Next() {
		var o models.Object
		var tagsJSON string
		if err := rows.Scan(&o.Path, &o.ID, &o.Title, &o.Type, &o.Project,
			&o.CitationKey, &tagsJSON, &o.Body, &o.Checksum, &o.UpdatedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(tagsJSON), &o.Tags)
		out = append(out, o)
	}
	return out, rows.Err()
}
