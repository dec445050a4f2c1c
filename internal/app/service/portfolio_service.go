package service

import (
	"context"
	"time"

	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/domain/repository"
)

// PortfolioService implements portfolio CRUD over the injected record store
// and applies the role-scoped visibility projection on every read path.
type PortfolioService struct {
	portfolios repository.RecordStore
	now        func() time.Time
}

func NewPortfolioService(portfolios repository.RecordStore) *PortfolioService {
	return &PortfolioService{portfolios: portfolios, now: time.Now}
}

type CreatePortfolioRequest struct {
	Name        string               `json:"name"`
	Bio         string               `json:"bio"`
	Skills      []string             `json:"skills"`
	Projects    []model.Project      `json:"projects"`
	Contact     map[string]any       `json:"contact"`
	SocialLinks map[string]string    `json:"socialLinks"`
	BlogPosts   []model.EmbeddedPost `json:"blogPosts"`
}

// ListPortfolios returns the fixed public projection of every portfolio,
// regardless of the caller's role.
func (s *PortfolioService) ListPortfolios(ctx context.Context) ([]PortfolioSummaryView, error) {
	records, err := s.portfolios.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]PortfolioSummaryView, 0, len(records))
	for _, rec := range records {
		views = append(views, SummarizePortfolio(rec))
	}
	return views, nil
}

// GetPortfolio returns the portfolio projected for the caller's role.
func (s *PortfolioService) GetPortfolio(ctx context.Context, id int64, role model.Role) (*PortfolioDetailView, error) {
	rec, err := s.portfolios.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := ProjectPortfolio(rec, role)
	return &view, nil
}

func (s *PortfolioService) CreatePortfolio(ctx context.Context, req CreatePortfolioRequest) (model.Record, error) {
	if req.Skills == nil {
		req.Skills = []string{}
	}
	if req.Projects == nil {
		req.Projects = []model.Project{}
	}
	if req.Contact == nil {
		req.Contact = map[string]any{}
	}
	if req.SocialLinks == nil {
		req.SocialLinks = map[string]string{}
	}
	if req.BlogPosts == nil {
		req.BlogPosts = []model.EmbeddedPost{}
	}

	rec := model.Record{
		"name":        req.Name,
		"bio":         req.Bio,
		"skills":      req.Skills,
		"projects":    req.Projects,
		"contact":     req.Contact,
		"socialLinks": req.SocialLinks,
		"blogPosts":   req.BlogPosts,
		"createdAt":   s.now().UTC().Format(model.TimestampLayout),
	}
	return s.portfolios.Insert(ctx, rec)
}

// UpdatePortfolio shallow-merges the given fields and stamps updatedAt on
// every successful mutation, including no-op field changes. A caller-sent
// updatedAt is overwritten.
func (s *PortfolioService) UpdatePortfolio(ctx context.Context, id int64, fields model.Record) (model.Record, error) {
	partial := model.Record{}
	for k, v := range fields {
		partial[k] = v
	}
	partial["updatedAt"] = s.now().UTC().Format(model.TimestampLayout)
	return s.portfolios.Update(ctx, id, partial)
}

func (s *PortfolioService) DeletePortfolio(ctx context.Context, id int64) (bool, error) {
	return s.portfolios.Delete(ctx, id)
}
