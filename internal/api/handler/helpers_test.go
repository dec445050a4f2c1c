package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"portfolio_api/internal/api/middleware"
	"portfolio_api/internal/app/service"
	"portfolio_api/internal/platform/storage"
)

// newTestAPI wires the handlers onto memory stores behind the role
// extractor, mirroring the production router's /api subtree.
func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	tick := func() func() time.Time {
		base := time.UnixMilli(1700000000000)
		return func() time.Time {
			base = base.Add(time.Millisecond)
			return base
		}
	}

	blogStore := storage.NewMemoryStore("blogs")
	blogStore.Now = tick()
	portfolioStore := storage.NewMemoryStore("portfolios")
	portfolioStore.Now = tick()

	r := chi.NewRouter()
	r.Use(middleware.RoleExtractor)
	r.Route("/api/blogs", NewBlogHandler(service.NewBlogService(blogStore)).RegisterRoutes)
	r.Route("/api/portfolios", NewPortfolioHandler(service.NewPortfolioService(portfolioStore)).RegisterRoutes)
	return r
}

// doRequest performs a JSON request against the test API. An empty role
// leaves the x-user-role header unset.
func doRequest(t *testing.T, api http.Handler, method, path, role, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("x-user-role", role)
	}

	w := httptest.NewRecorder()
	api.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func recordID(t *testing.T, body map[string]any) string {
	t.Helper()
	id, ok := body["id"].(float64)
	require.True(t, ok, "response carries a numeric id")
	return strconv.FormatInt(int64(id), 10)
}
