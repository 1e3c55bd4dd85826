package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/utils/response"
	"github.com/google/uuid"
)

type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// RequireAdmin lets the request through only for members of the admins table.
// It must run after Authenticate.
func RequireAdmin(checker AdminChecker, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		ok, err := checker.IsAdmin(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Admin membership lookup failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !ok {
			logger.Warn("Admin access denied")
			response.Error(w, errors.ForbiddenError("Admin access required"))
			return
		}

		next.ServeHTTP(w, r)
	}
}
