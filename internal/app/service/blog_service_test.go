package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_api/internal/common"
	"portfolio_api/internal/platform/storage"
)

// serviceClock advances one millisecond per call.
func serviceClock(startMilli int64) func() time.Time {
	base := time.UnixMilli(startMilli).UTC()
	return func() time.Time {
		base = base.Add(time.Millisecond)
		return base
	}
}

func newTestBlogService() *BlogService {
	store := storage.NewMemoryStore("blogs")
	store.Now = serviceClock(1700000000000)
	svc := NewBlogService(store)
	svc.now = serviceClock(1700000000000)
	return svc
}

func TestCreateBlogDefaults(t *testing.T) {
	svc := newTestBlogService()
	ctx := context.Background()

	created, err := svc.CreateBlog(ctx, CreateBlogRequest{
		Title:    "Hello",
		Content:  "World",
		Author:   "Dev",
		Category: "go",
	})
	require.NoError(t, err)

	id, ok := created.ID()
	require.True(t, ok)
	assert.Equal(t, "published", created["status"])
	assert.NotEmpty(t, created["publishDate"])

	got, err := svc.GetBlog(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got["title"])
	assert.Equal(t, "World", got["content"])
	assert.Equal(t, "Dev", got["author"])
	assert.Equal(t, "go", got["category"])
	assert.Equal(t, "published", got["status"])
}

func TestUpdateBlogPartialMerge(t *testing.T) {
	svc := newTestBlogService()
	ctx := context.Background()

	created, err := svc.CreateBlog(ctx, CreateBlogRequest{Title: "Hello", Content: "World", Author: "Dev"})
	require.NoError(t, err)
	id, _ := created.ID()

	updated, err := svc.UpdateBlog(ctx, id, map[string]any{"title": "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated["title"])
	assert.Equal(t, "World", updated["content"])
	assert.Equal(t, "Dev", updated["author"])
}

func TestUpdateBlogFreeFormFields(t *testing.T) {
	svc := newTestBlogService()
	ctx := context.Background()

	created, err := svc.CreateBlog(ctx, CreateBlogRequest{Title: "Hello"})
	require.NoError(t, err)
	id, _ := created.ID()

	updated, err := svc.UpdateBlog(ctx, id, map[string]any{"tags": []string{"go", "web"}})
	require.NoError(t, err)
	assert.Equal(t, []any{"go", "web"}, updated["tags"])
}

func TestDeleteBlogThenGet(t *testing.T) {
	svc := newTestBlogService()
	ctx := context.Background()

	created, err := svc.CreateBlog(ctx, CreateBlogRequest{Title: "Hello"})
	require.NoError(t, err)
	id, _ := created.ID()

	deleted, err := svc.DeleteBlog(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteBlog(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.GetBlog(ctx, id)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
