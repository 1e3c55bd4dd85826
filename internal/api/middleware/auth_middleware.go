package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/models"
	"github.com/almasezhe/warauction/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey}
}

// Authenticate verifies an HS256 bearer token issued by the identity backend
// and stores its *models.Claims under UserContextKey.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return m.jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			logger.Warn("JWT validation failed", slog.Any("error", err))
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))
			return
		}

		if claims.UserID == uuid.Nil {
			logger.Warn("Token carries no user id")
			response.Error(w, errors.UnauthorizedError("Invalid token"))
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)

		requestScopedLogger := logger.With(slog.String("userId", claims.UserID.String()))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// ClaimsFromContext returns the verified claims, or nil outside Authenticate.
func ClaimsFromContext(ctx context.Context) *models.Claims {
	claims, _ := ctx.Value(UserContextKey).(*models.Claims)
	return claims
}
