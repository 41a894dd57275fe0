// Package models defines the domain types for Ansuz.
package models

import (
	"path"
	"strings"
	"time"
)

// Object type with special citation handling.
const TypeBibtexEntry = "bibtex_entry"

// Object represents a parsed Markdown file in the vault. The cross-reference
// engine consumes objects read-only; it never mutates them.
type Object struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Project     string                 `json:"project,omitempty"`
	Path        string                 `json:"path"` // vault-relative, forward-slash separated
	Body        string                 `json:"body,omitempty"`
	Frontmatter map[string]interface{} `json:"frontmatter,omitempty"`
	CitationKey string                 `json:"citation_key,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Checksum    string                 `json:"checksum,omitempty"`
	UpdatedAt   time.Time              `json:"updated_at,omitempty"`
}

// FallbackKey returns the basename of the object's path with any trailing
// .md extension stripped. Wikilinks may address an object by this key when
// they do not use its explicit id.
func (o *Object) FallbackKey() string {
	return strings.TrimSuffix(path.Base(o.Path), ".md")
}

// IsBibtexEntry reports whether the object is a bibliographic entry with a
// usable citation key.
func (o *Object) IsBibtexEntry() bool {
	return o.Type == TypeBibtexEntry && o.CitationKey != ""
}

// ObjectMetadata is a lightweight representation returned by list operations.
type ObjectMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LinkType distinguishes wikilink references from citation references.
type LinkType string

// Link types.
const (
	LinkTypeWikilink LinkType = "wikilink"
	LinkTypeCitation LinkType = "citation"
)

// Link is a typed reference extracted from an object body. Links are
// ephemeral: recomputed on every call, never stored.
type Link struct {
	TargetID    string   `json:"target_id"`
	DisplayText string   `json:"display_text,omitempty"`
	Context     string   `json:"context,omitempty"`
	Type        LinkType `json:"link_type"`
}

// Backlink records an inbound reference from another object.
type Backlink struct {
	SourceID    string   `json:"source_id"`
	SourceTitle string   `json:"source_title,omitempty"`
	SourcePath  string   `json:"source_path"`
	Context     string   `json:"context,omitempty"`
	Type        LinkType `json:"link_type"`
}

// CrossRefs holds the resolved outgoing and inbound references of one object.
type CrossRefs struct {
	ID        string     `json:"id"`
	Outgoing  []Link     `json:"outgoing_links"`
	Backlinks []Backlink `json:"backlinks"`
}

// GraphNode is a node in the object graph.
type GraphNode struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type,omitempty"`
	Project   string `json:"project,omitempty"`
	Path      string `json:"path"`
	LinkCount int    `json:"link_count"`
}

// GraphEdge is a directed edge between two graph nodes.
type GraphEdge struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Weight   int    `json:"weight,omitempty"`
	Directed bool   `json:"directed,omitempty"`
}

// Graph is the whole-vault object graph.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// ProjectProfile declares a project and the projects it includes.
type ProjectProfile struct {
	Name     string   `yaml:"name" json:"name"`
	Includes []string `yaml:"includes" json:"includes,omitempty"`
}

// ProjectGraphNode is a node in the project dependency graph.
type ProjectGraphNode struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ObjectCount int    `json:"object_count"`
}

// ProjectGraphType identifies the project dependency graph payload.
const ProjectGraphType = "project-deps"

// ProjectGraph is the dependency graph over declared project profiles.
type ProjectGraph struct {
	Type  string             `json:"type"`
	Nodes []ProjectGraphNode `json:"nodes"`
	Edges []GraphEdge        `json:"edges"`
}
