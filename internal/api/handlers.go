package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/objectservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *objectservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *objectservice.Service) *Handler {
	return &Handler{svc: svc}
}

// objectPath extracts the object path from the URL (everything after the
// route prefix). Supports encoded slashes from OpenAPI clients
// (e.g. refs%2Fsmith2024.md).
func objectPath(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListObjects handles GET /api/objects.
//
//	@Summary		List objects with optional pagination and filtering
//	@Tags			objects
//	@Produce		json
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Param			project	query		string	false	"Filter by project"
//	@Param			type	query		string	false	"Filter by object type"
//	@Param			sort	query		string	false	"Sort field"	Enums(updated_at, title, path)
//	@Success		200		{object}	ObjectListResponse
//	@Security		BearerAuth
//	@Router			/objects [get]
func (h *Handler) ListObjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	project := q.Get("project")
	objType := q.Get("type")
	sort := q.Get("sort")

	items, total, err := h.svc.ListObjects(r.Context(), limit, offset, project, objType, sort)
	if err != nil {
		slog.Error("list objects failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"objects": items,
		"total":   total,
	})
}

// GetObject handles GET /api/objects/*.
//
//	@Summary		Get a single object by path, with its cross-references
//	@Tags			objects
//	@Produce		json
//	@Param			path	path		string	true	"Object path"
//	@Success		200		{object}	ObjectDetail
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/objects/{path} [get]
func (h *Handler) GetObject(w http.ResponseWriter, r *http.Request) {
	path := objectPath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	obj, err := h.svc.GetObject(r.Context(), path)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get object failed", slog.String("path", path), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

// CrossRefs handles GET /api/crossrefs/*.
//
//	@Summary		Get outgoing links and backlinks for an object
//	@Tags			crossrefs
//	@Produce		json
//	@Param			path	path		string	true	"Object path"
//	@Success		200		{object}	CrossRefsResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/crossrefs/{path} [get]
func (h *Handler) CrossRefs(w http.ResponseWriter, r *http.Request) {
	path := objectPath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	refs, err := h.svc.CrossRefs(r.Context(), path)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("crossrefs failed", slog.String("path", path), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, refs)
}

// Search handles GET /api/search.
//
//	@Summary		Full-text search across objects
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
	})
}

// Graph handles GET /api/graph.
//
//	@Summary		Get the object graph or the project dependency graph
//	@Tags			graph
//	@Produce		json
//	@Param			type	query		string	false	"Graph type"	Enums(objects, project-deps)	default(objects)
//	@Success		200		{object}	GraphResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/graph [get]
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	graphType := r.URL.Query().Get("type")
	switch graphType {
	case "", "objects":
		g, err := h.svc.ObjectGraph(r.Context())
		if err != nil {
			slog.Error("object graph failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
			return
		}
		writeJSON(w, http.StatusOK, g)
	case "project-deps":
		g, err := h.svc.ProjectGraph(r.Context())
		if err != nil {
			slog.Error("project graph failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
			return
		}
		writeJSON(w, http.StatusOK, g)
	default:
		writeJSON(w, http.StatusBadRequest, errorBody("unknown graph type"))
	}
}
