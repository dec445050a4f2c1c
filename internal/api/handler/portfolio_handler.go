package handler

import (
	"encoding/json"
	"net/http"

	"portfolio_api/internal/api/middleware"
	"portfolio_api/internal/app/service"
	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

const (
	// Collection responses and public single-item responses are cacheable.
	portfolioCacheControl = "public, max-age=300, stale-while-revalidate=300, must-revalidate"
	// Role-scoped responses must never be cached.
	privateCacheControl = "private, no-cache, no-store, must-revalidate"
)

type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

func NewPortfolioHandler(ps *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: ps}
}

func (h *PortfolioHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listPortfolios)
	r.Get("/{portfolioID}", h.getPortfolio)
	r.With(middleware.RequireRole(model.RoleUser)).Post("/", h.createPortfolio)
	r.With(middleware.RequireRole(model.RoleOwner)).Put("/{portfolioID}", h.updatePortfolio)
	r.With(middleware.RequireRole(model.RoleAdmin)).Delete("/{portfolioID}", h.deletePortfolio)
}

func (h *PortfolioHandler) listPortfolios(w http.ResponseWriter, r *http.Request) {
	portfolios, err := h.portfolioService.ListPortfolios(r.Context())
	if err != nil {
		common.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to obtain the portfolio list", err)
		return
	}
	w.Header().Set("Cache-Control", portfolioCacheControl)
	common.RespondWithJSON(w, http.StatusOK, portfolios)
}

func (h *PortfolioHandler) getPortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "portfolioID")
	if !ok {
		common.RespondWithError(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	role := middleware.RoleFromContext(r.Context())
	portfolio, err := h.portfolioService.GetPortfolio(r.Context(), id, role)
	if err != nil {
		respondServiceError(w, err, "Portfolio not found", "Failed to get the portfolio")
		return
	}

	if role == model.RolePublic {
		w.Header().Set("Cache-Control", portfolioCacheControl)
	} else {
		w.Header().Set("Cache-Control", privateCacheControl)
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
	}
	common.RespondWithJSON(w, http.StatusOK, portfolio)
}

func (h *PortfolioHandler) createPortfolio(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithErrorDetail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(r.Context(), req)
	if err != nil {
		common.RespondWithErrorDetail(w, http.StatusInternalServerError, "create portfolio failed", err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, portfolio)
}

func (h *PortfolioHandler) updatePortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "portfolioID")
	if !ok {
		common.RespondWithError(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	var fields model.Record
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		common.RespondWithErrorDetail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	portfolio, err := h.portfolioService.UpdatePortfolio(r.Context(), id, fields)
	if err != nil {
		respondServiceError(w, err, "Portfolio not found", "Failed to update the portfolio")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, portfolio)
}

func (h *PortfolioHandler) deletePortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "portfolioID")
	if !ok {
		common.RespondWithError(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	deleted, err := h.portfolioService.DeletePortfolio(r.Context(), id)
	if err != nil {
		common.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to delete the portfolio", err)
		return
	}
	if !deleted {
		common.RespondWithError(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
