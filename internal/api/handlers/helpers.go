package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/almasezhe/warauction/internal/api/middleware"
	"github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/models"
	"github.com/almasezhe/warauction/internal/utils/response"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// requireClaims writes a 401 and returns false when the request carries no
// verified claims.
func requireClaims(w http.ResponseWriter, r *http.Request) (*models.Claims, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		logger.Warn("Unauthorized access attempt: missing user claims")
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, logger, false
	}

	return claims, logger.With(slog.String("userID", claims.UserID.String())), true
}

func pagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return page, pageSize
}
