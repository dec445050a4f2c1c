package model

type BlogStatus string

const (
	StatusDraft     BlogStatus = "draft"
	StatusPreview   BlogStatus = "preview"
	StatusPublished BlogStatus = "published"
)

// VisibleTo reports whether a post with this status is shown to the given
// role inside a portfolio's embedded blog posts. Standalone blog endpoints
// apply no status filtering.
func (s BlogStatus) VisibleTo(role Role) bool {
	switch role {
	case RoleAdmin, RoleOwner:
		return true
	case RoleUser:
		return s == StatusPublished || s == StatusPreview
	default:
		return s == StatusPublished
	}
}
