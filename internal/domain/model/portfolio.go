package model

// Project is a portfolio entry. GithubURL is role-gated on read: only
// owner and admin callers ever see it in a projected response.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demoUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
}

// EmbeddedPost is a blog summary embedded in a portfolio. These are
// independent copies, not references to records in the blog collection.
type EmbeddedPost struct {
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	Content     string     `json:"content,omitempty"`
	PublishDate string     `json:"publishDate,omitempty"`
	Status      BlogStatus `json:"status,omitempty"`
}
