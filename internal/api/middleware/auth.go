package middleware

import (
	"context"
	"net/http"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
)

type contextKey string

const roleCtxKey contextKey = "userRole"

// RoleHeader carries the caller's asserted role. The claim is trusted as-is;
// verifying it is explicitly out of scope.
const RoleHeader = "X-User-Role"

// RoleExtractor resolves the caller's role from the request header and
// stores it in the request context. Absent or unknown values become public.
func RoleExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := model.ParseRole(r.Header.Get(RoleHeader))
		ctx := context.WithValue(r.Context(), roleCtxKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RoleFromContext returns the caller's role, defaulting to public.
func RoleFromContext(ctx context.Context) model.Role {
	if role, ok := ctx.Value(roleCtxKey).(model.Role); ok {
		return role
	}
	return model.RolePublic
}

// RequireRole gates an operation behind a minimum role. The request passes
// iff the caller's rank is at or above the required rank; otherwise a 403
// reporting both roles is written and the handler never runs.
func RequireRole(required model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if err := Authorize(role, required); err != nil {
				common.RespondWithAuthzError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Authorize decides allow/deny for a caller role against a required role.
// Deny returns an AuthorizationError carrying both roles.
func Authorize(current, required model.Role) *common.AuthorizationError {
	if current.AtLeast(required) {
		return nil
	}
	return &common.AuthorizationError{
		Required: string(required),
		Current:  string(current),
	}
}
