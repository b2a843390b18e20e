package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/luxtime/backend/internal/domain"
)

// CatalogReader is the slice of the catalog service the handlers need.
// Consumers define this interface, not the service implementation.
type CatalogReader interface {
	ListWatches(ctx context.Context) ([]domain.Watch, error)
	GetWatch(ctx context.Context, slug string) (*domain.Watch, error)
	ListPosts(ctx context.Context) ([]domain.BlogPost, error)
	GetPost(ctx context.Context, slug string) (*domain.BlogPost, error)
}

type CatalogHandler struct {
	catalog CatalogReader
}

func NewCatalogHandler(catalog CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListWatches(w http.ResponseWriter, r *http.Request) {
	watches, err := h.catalog.ListWatches(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, watches)
}

func (h *CatalogHandler) GetWatch(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	watch, err := h.catalog.GetWatch(r.Context(), slug)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, watch)
}

func (h *CatalogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.catalog.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *CatalogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.catalog.GetPost(r.Context(), slug)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}
