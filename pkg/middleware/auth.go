package middleware

import (
	"errors"
	"net/http"
	"strings"

	"helper-booking/internal/data/repository"
	"helper-booking/pkg/database"
	"helper-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth validates the access token on protected routes. The token is
// read from x-auth-token or an Authorization bearer header. When the
// store is running in memory mode the claimed identity is re-checked
// against the memory store, since tokens minted before a restart can
// reference users that no longer exist there.
func Auth(secret string, memUsers repository.UserRepository, state *database.ConnState, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "No token provided, authorization denied")
				return
			}

			claims, err := utils.ParseToken(token, secret)
			if err != nil {
				if errors.Is(err, utils.ErrTokenExpired) {
					logger.Warn("Expired token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Token has expired, please login again")
					return
				}
				logger.Warn("Invalid token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Token is not valid")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				utils.ResponseUnauthorized(w, "Token is not valid")
				return
			}

			if !state.Connected() {
				user, err := memUsers.FindByID(r.Context(), userID)
				if err != nil {
					logger.Error("Auth identity check failed",
						zap.Error(err), zap.String("user_id", claims.UserID))
					utils.ResponseInternalError(w, "Server error during authentication")
					return
				}
				if user == nil {
					logger.Warn("Token references unknown user in memory mode",
						zap.String("user_id", claims.UserID))
					utils.ResponseUnauthorized(w, "Token is not valid")
					return
				}
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if token := r.Header.Get("x-auth-token"); token != "" {
		return token
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
