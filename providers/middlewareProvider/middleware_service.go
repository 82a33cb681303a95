package middlewareprovider

import (
	"context"
	"net/http"
	"strings"

	"assettag/models"
	"assettag/providers"
	"assettag/utils"

	"github.com/pkg/errors"
)

type contextKey string

const authUserContextKey contextKey = "auth_user_key"

type DefaultAuthMiddleware struct{}

func NewAuthMiddlewareService() providers.AuthMiddlewareService {
	return &DefaultAuthMiddleware{}
}

func (a *DefaultAuthMiddleware) JWTAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := r.Header.Get("Authorization")
			if accessToken == "" {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("missing access token"), "missing access token")
				return
			}
			accessToken = strings.TrimPrefix(accessToken, "Bearer ")

			authUser, err := ParseJWT(accessToken)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), authUserContextKey, authUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *DefaultAuthMiddleware) RequireRole(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool)
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authUser, err := a.GetUserFromContext(r)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !allowed[authUser.Role] {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *DefaultAuthMiddleware) GetUserFromContext(r *http.Request) (models.AuthUser, error) {
	authUser, ok := r.Context().Value(authUserContextKey).(models.AuthUser)
	if !ok {
		return models.AuthUser{}, errors.New("user not found in context")
	}
	return authUser, nil
}
