package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/platform/storage"
)

func newTestPortfolioService() *PortfolioService {
	store := storage.NewMemoryStore("portfolios")
	store.Now = serviceClock(1700000000000)
	svc := NewPortfolioService(store)
	svc.now = serviceClock(1700000000000)
	return svc
}

func TestCreatePortfolioDefaults(t *testing.T) {
	svc := newTestPortfolioService()

	created, err := svc.CreatePortfolio(context.Background(), CreatePortfolioRequest{Name: "A"})
	require.NoError(t, err)

	_, ok := created.ID()
	assert.True(t, ok)
	assert.NotEmpty(t, created["createdAt"])
	assert.Equal(t, []any{}, created["skills"])
	assert.Equal(t, []any{}, created["projects"])
	assert.Equal(t, []any{}, created["blogPosts"])
	assert.Equal(t, map[string]any{}, created["contact"])
	assert.Equal(t, map[string]any{}, created["socialLinks"])
	assert.Nil(t, created["updatedAt"], "updatedAt is only stamped by updates")
}

func TestUpdatePortfolioStampsUpdatedAt(t *testing.T) {
	svc := newTestPortfolioService()
	ctx := context.Background()

	created, err := svc.CreatePortfolio(ctx, CreatePortfolioRequest{Name: "A", Bio: "bio"})
	require.NoError(t, err)
	id, _ := created.ID()

	first, err := svc.UpdatePortfolio(ctx, id, model.Record{"name": "B"})
	require.NoError(t, err)
	firstStamp, _ := first["updatedAt"].(string)
	require.NotEmpty(t, firstStamp)
	assert.Equal(t, "B", first["name"])
	assert.Equal(t, "bio", first["bio"])

	// A no-op field change still advances updatedAt.
	second, err := svc.UpdatePortfolio(ctx, id, model.Record{"name": "B"})
	require.NoError(t, err)
	secondStamp, _ := second["updatedAt"].(string)
	require.NotEmpty(t, secondStamp)
	assert.GreaterOrEqual(t, secondStamp, firstStamp)
}

func TestUpdatePortfolioOverridesCallerUpdatedAt(t *testing.T) {
	svc := newTestPortfolioService()
	ctx := context.Background()

	created, err := svc.CreatePortfolio(ctx, CreatePortfolioRequest{Name: "A"})
	require.NoError(t, err)
	id, _ := created.ID()

	updated, err := svc.UpdatePortfolio(ctx, id, model.Record{"updatedAt": "1999-01-01T00:00:00.000Z"})
	require.NoError(t, err)
	assert.NotEqual(t, "1999-01-01T00:00:00.000Z", updated["updatedAt"])
}

func TestGetPortfolioProjectsByRole(t *testing.T) {
	svc := newTestPortfolioService()
	ctx := context.Background()

	created, err := svc.CreatePortfolio(ctx, CreatePortfolioRequest{
		Name: "A",
		Projects: []model.Project{
			{Title: "CLI", GithubURL: "https://github.com/dev/cli"},
		},
		Contact: map[string]any{"email": "dev@example.com"},
	})
	require.NoError(t, err)
	id, _ := created.ID()

	public, err := svc.GetPortfolio(ctx, id, model.RolePublic)
	require.NoError(t, err)
	assert.Empty(t, public.Projects[0].GithubURL)
	assert.Nil(t, public.Contact)

	owner, err := svc.GetPortfolio(ctx, id, model.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/dev/cli", owner.Projects[0].GithubURL)
	assert.NotNil(t, owner.Contact)
}

func TestListPortfoliosAlwaysPublicShape(t *testing.T) {
	svc := newTestPortfolioService()
	ctx := context.Background()

	_, err := svc.CreatePortfolio(ctx, CreatePortfolioRequest{
		Name:    "A",
		Contact: map[string]any{"email": "dev@example.com"},
		BlogPosts: []model.EmbeddedPost{
			{Title: "Published", Status: model.StatusPublished},
			{Title: "Draft", Status: model.StatusDraft},
		},
	})
	require.NoError(t, err)

	views, err := svc.ListPortfolios(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].BlogPosts, 1)
	assert.Equal(t, "Published", views[0].BlogPosts[0].Title)
}

func TestDeletePortfolioThenGet(t *testing.T) {
	svc := newTestPortfolioService()
	ctx := context.Background()

	created, err := svc.CreatePortfolio(ctx, CreatePortfolioRequest{Name: "A"})
	require.NoError(t, err)
	id, _ := created.ID()

	deleted, err := svc.DeletePortfolio(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetPortfolio(ctx, id, model.RoleAdmin)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
