// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Ansuz tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/ansuz/internal/objectservice"
	"github.com/starford/ansuz/internal/storage"
)

// Server wraps the MCP server with Ansuz tools.
type Server struct {
	mcp   *server.MCPServer
	store storage.Provider
	svc   *objectservice.Service
}

// New creates a new MCP server with all Ansuz tools registered.
func New(store storage.Provider, svc *objectservice.Service) *Server {
	s := &Server{store: store, svc: svc}

	s.mcp = server.NewMCPServer(
		"Ansuz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_objects",
		mcp.WithDescription("Full-text search through object content and titles."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchObjects)

	s.mcp.AddTool(mcp.NewTool("read_object",
		mcp.WithDescription("Read the full content of a Markdown object."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the object (e.g. refs/smith2024.md)")),
	), s.readObject)

	s.mcp.AddTool(mcp.NewTool("list_objects",
		mcp.WithDescription("List all objects or objects in a specific folder."),
		mcp.WithString("folder", mcp.Description("Optional folder to list (empty for all)")),
	), s.listObjects)

	s.mcp.AddTool(mcp.NewTool("get_crossrefs",
		mcp.WithDescription("Get outgoing wikilinks/citations and backlinks for an object. "+
			"Backlinks cover both [[wikilink]] references and [@citation] references to "+
			"bibtex entries. See the ansuz://object-format resource for the syntax."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the object to cross-reference")),
	), s.getCrossRefs)

	s.mcp.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the vault graph as JSON. Type 'objects' is the wikilink "+
			"graph between objects; 'project-deps' is the project dependency graph."),
		mcp.WithString("type", mcp.Description("Graph type: objects (default) or project-deps")),
	), s.getGraph)

	s.mcp.AddTool(mcp.NewTool("get_object_contract",
		mcp.WithDescription("Returns the canonical Ansuz object format contract. "+
			"Call this to understand frontmatter fields and link syntax."),
	), s.getObjectContract)

	// Resource: object format contract.
	s.mcp.AddResource(
		mcp.NewResource("ansuz://object-format", "Object Format Contract",
			mcp.WithResourceDescription("Canonical Markdown object format used across the vault."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readObjectFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchObjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.svc.Search(ctx, query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readObject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) listObjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := ""
	if f, err := req.RequireString("folder"); err == nil {
		folder = f
	}

	metas, err := s.store.List(folder)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var paths []string
	for _, m := range metas {
		paths = append(paths, m.Path)
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) getCrossRefs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	refs, err := s.svc.CrossRefs(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	out, _ := json.MarshalIndent(refs, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getGraph(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	graphType := ""
	if gt, err := req.RequireString("type"); err == nil {
		graphType = gt
	}

	var payload any
	switch graphType {
	case "", "objects":
		g, err := s.svc.ObjectGraph(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		payload = g
	case "project-deps":
		g, err := s.svc.ProjectGraph(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		payload = g
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown graph type: %s", graphType)), nil
	}

	out, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getObjectContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ObjectFormatContract), nil
}

func (s *Server) readObjectFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "ansuz://object-format",
			MIMEType: "text/markdown",
			Text:     ObjectFormatContract,
		},
	}, nil
}
