package api

import (
	"net/http"
	"time"

	"portfolio_api/internal/api/handler"
	"portfolio_api/internal/api/middleware"
	"portfolio_api/internal/app/service"
	"portfolio_api/internal/common"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(
	logger zerolog.Logger,
	blogService *service.BlogService,
	portfolioService *service.PortfolioService,
) http.Handler {
	r := chi.NewRouter()

	// Base middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS)

	// Caller role, asserted via the x-user-role header.
	r.Use(middleware.RoleExtractor)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithJSON(w, http.StatusOK, map[string]any{
			"message": "Welcome to Developer Portfolio API Service",
			"endpoints": map[string]string{
				"portfolios": "/api/portfolios",
				"blogs":      "/api/blogs",
			},
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		blogHandler := handler.NewBlogHandler(blogService)
		api.Route("/blogs", blogHandler.RegisterRoutes)

		portfolioHandler := handler.NewPortfolioHandler(portfolioService)
		api.Route("/portfolios", portfolioHandler.RegisterRoutes)
	})

	return r
}
