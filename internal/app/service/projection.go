package service

import (
	"portfolio_api/internal/domain/model"
)

// The visibility projector: pure read-side transforms that derive a
// role-scoped view of a stored portfolio without mutating the record.
//
// Two shapes exist. The collection view is fixed to the public shape for
// every caller; the single-item view widens with the caller's role.

type ProjectView struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demoUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
}

type SocialLinksView struct {
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
}

// PostSummaryView is the embedded blog shape in the collection view.
type PostSummaryView struct {
	Title       string `json:"title"`
	Summary     string `json:"summary,omitempty"`
	PublishDate string `json:"publishDate,omitempty"`
}

// PostDetailView is the embedded blog shape in the single-item view.
type PostDetailView struct {
	Title       string `json:"title"`
	Summary     string `json:"summary,omitempty"`
	Content     string `json:"content,omitempty"`
	PublishDate string `json:"publishDate,omitempty"`
	Status      string `json:"status,omitempty"`
}

type PortfolioSummaryView struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Bio         string            `json:"bio,omitempty"`
	Skills      []string          `json:"skills"`
	Projects    []ProjectView     `json:"projects"`
	SocialLinks SocialLinksView   `json:"socialLinks"`
	BlogPosts   []PostSummaryView `json:"blogPosts"`
	CreatedAt   string            `json:"createdAt,omitempty"`
	UpdatedAt   string            `json:"updatedAt,omitempty"`
}

type PortfolioDetailView struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Bio         string           `json:"bio,omitempty"`
	Skills      []string         `json:"skills"`
	Projects    []ProjectView    `json:"projects"`
	SocialLinks SocialLinksView  `json:"socialLinks"`
	BlogPosts   []PostDetailView `json:"blogPosts"`
	Contact     any              `json:"contact,omitempty"`
	CreatedAt   string           `json:"createdAt,omitempty"`
	UpdatedAt   string           `json:"updatedAt,omitempty"`
}

// SummarizePortfolio produces the fixed public collection shape: no contact,
// no project githubUrl, only published blog posts, social links restricted
// to github and linkedin.
func SummarizePortfolio(rec model.Record) PortfolioSummaryView {
	id, _ := rec.ID()
	view := PortfolioSummaryView{
		ID:          id,
		Name:        fieldString(rec, "name"),
		Bio:         fieldString(rec, "bio"),
		Skills:      fieldStringSlice(rec, "skills"),
		Projects:    projectViews(rec, model.RolePublic),
		SocialLinks: socialLinksView(rec),
		BlogPosts:   []PostSummaryView{},
		CreatedAt:   fieldString(rec, "createdAt"),
		UpdatedAt:   fieldString(rec, "updatedAt"),
	}
	for _, post := range fieldObjects(rec, "blogPosts") {
		if model.BlogStatus(fieldString(post, "status")) != model.StatusPublished {
			continue
		}
		view.BlogPosts = append(view.BlogPosts, PostSummaryView{
			Title:       fieldString(post, "title"),
			Summary:     fieldString(post, "summary"),
			PublishDate: fieldString(post, "publishDate"),
		})
	}
	return view
}

// ProjectPortfolio produces the role-scoped single-item shape.
func ProjectPortfolio(rec model.Record, role model.Role) PortfolioDetailView {
	id, _ := rec.ID()
	view := PortfolioDetailView{
		ID:          id,
		Name:        fieldString(rec, "name"),
		Bio:         fieldString(rec, "bio"),
		Skills:      fieldStringSlice(rec, "skills"),
		Projects:    projectViews(rec, role),
		SocialLinks: socialLinksView(rec),
		BlogPosts:   []PostDetailView{},
		CreatedAt:   fieldString(rec, "createdAt"),
		UpdatedAt:   fieldString(rec, "updatedAt"),
	}
	for _, post := range fieldObjects(rec, "blogPosts") {
		if !model.BlogStatus(fieldString(post, "status")).VisibleTo(role) {
			continue
		}
		view.BlogPosts = append(view.BlogPosts, PostDetailView{
			Title:       fieldString(post, "title"),
			Summary:     fieldString(post, "summary"),
			Content:     fieldString(post, "content"),
			PublishDate: fieldString(post, "publishDate"),
			Status:      fieldString(post, "status"),
		})
	}
	if role.AtLeast(model.RoleUser) {
		if contact := fieldObject(rec, "contact"); contact != nil {
			view.Contact = contact
		}
	}
	return view
}

// projectViews shapes the projects list. githubUrl survives projection only
// for owner and admin callers; every other project field is dropped.
func projectViews(rec model.Record, role model.Role) []ProjectView {
	views := []ProjectView{}
	for _, project := range fieldObjects(rec, "projects") {
		pv := ProjectView{
			Title:        fieldString(project, "title"),
			Description:  fieldString(project, "description"),
			Technologies: fieldStringSlice(project, "technologies"),
			DemoURL:      fieldString(project, "demoUrl"),
		}
		if role.AtLeast(model.RoleOwner) {
			pv.GithubURL = fieldString(project, "githubUrl")
		}
		views = append(views, pv)
	}
	return views
}

func socialLinksView(rec model.Record) SocialLinksView {
	links := fieldObject(rec, "socialLinks")
	return SocialLinksView{
		Github:   fieldString(links, "github"),
		Linkedin: fieldString(links, "linkedin"),
	}
}

func fieldString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func fieldStringSlice(obj map[string]any, key string) []string {
	out := []string{}
	items, _ := obj[key].([]any)
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func fieldObject(obj map[string]any, key string) map[string]any {
	m, _ := obj[key].(map[string]any)
	return m
}

func fieldObjects(obj map[string]any, key string) []map[string]any {
	items, _ := obj[key].([]any)
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
