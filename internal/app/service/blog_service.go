package service

import (
	"context"
	"time"

	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/domain/repository"
)

// BlogService implements blog CRUD over the injected record store. Blog
// reads return records unprojected; role-based shaping applies only to the
// blog summaries embedded in portfolios.
type BlogService struct {
	blogs repository.RecordStore
	now   func() time.Time
}

func NewBlogService(blogs repository.RecordStore) *BlogService {
	return &BlogService{blogs: blogs, now: time.Now}
}

type CreateBlogRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

func (s *BlogService) ListBlogs(ctx context.Context) ([]model.Record, error) {
	return s.blogs.List(ctx)
}

func (s *BlogService) GetBlog(ctx context.Context, id int64) (model.Record, error) {
	return s.blogs.Get(ctx, id)
}

func (s *BlogService) CreateBlog(ctx context.Context, req CreateBlogRequest) (model.Record, error) {
	rec := model.Record{
		"title":       req.Title,
		"content":     req.Content,
		"author":      req.Author,
		"category":    req.Category,
		"status":      model.StatusPublished,
		"publishDate": s.now().UTC().Format(model.TimestampLayout),
	}
	return s.blogs.Insert(ctx, rec)
}

// UpdateBlog shallow-merges the given fields onto the stored record. Fields
// are free-form; anything the caller sends except "id" is merged.
func (s *BlogService) UpdateBlog(ctx context.Context, id int64, fields model.Record) (model.Record, error) {
	return s.blogs.Update(ctx, id, fields)
}

func (s *BlogService) DeleteBlog(ctx context.Context, id int64) (bool, error) {
	return s.blogs.Delete(ctx, id)
}
