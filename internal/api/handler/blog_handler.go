package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"portfolio_api/internal/app/service"
	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

// Blog list responses are cacheable: five minutes fresh, five more stale
// while revalidating.
const blogListCacheControl = "public, max-age=300, stale-while-revalidate=300"

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(bs *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: bs}
}

func (h *BlogHandler) RegisterRoutes(r chi.Router) {
	// Blog mutations carry no role gate, unlike portfolios. The upstream
	// API ships with this asymmetry and it is preserved here rather than
	// silently aligned with the portfolio policy.
	r.Get("/", h.listBlogs)
	r.Post("/", h.createBlog)
	r.Get("/{blogID}", h.getBlog)
	r.Put("/{blogID}", h.updateBlog)
	r.Delete("/{blogID}", h.deleteBlog)
}

func (h *BlogHandler) listBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.ListBlogs(r.Context())
	if err != nil {
		common.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to get blog list", err)
		return
	}
	w.Header().Set("Cache-Control", blogListCacheControl)
	common.RespondWithJSON(w, http.StatusOK, blogs)
}

func (h *BlogHandler) getBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "blogID")
	if !ok {
		common.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	blog, err := h.blogService.GetBlog(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Blog not found", "Failed to get blog")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) createBlog(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithErrorDetail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	blog, err := h.blogService.CreateBlog(r.Context(), req)
	if err != nil {
		common.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to create blog", err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, blog)
}

func (h *BlogHandler) updateBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "blogID")
	if !ok {
		common.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	var fields model.Record
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		common.RespondWithErrorDetail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	blog, err := h.blogService.UpdateBlog(r.Context(), id, fields)
	if err != nil {
		respondServiceError(w, err, "Blog not found", "Failed to update blog")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "blogID")
	if !ok {
		common.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	deleted, err := h.blogService.DeleteBlog(r.Context(), id)
	if err != nil {
		common.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to delete blog", err)
		return
	}
	if !deleted {
		common.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseID reads an integer id path parameter. A non-numeric id can never
// resolve to a record, so callers treat failure as not-found.
func parseID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	return id, err == nil
}

// respondServiceError translates a service error into the outward envelope:
// not-found keeps a bare {message}, anything else is a 500 with detail.
func respondServiceError(w http.ResponseWriter, err error, notFoundMsg, failureMsg string) {
	if common.HTTPStatusFromError(err) == http.StatusNotFound {
		common.RespondWithError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	common.RespondWithErrorDetail(w, http.StatusInternalServerError, failureMsg, err)
}
