// Package testutils builds requests shaped the way the middleware chain leaves
// them for handlers: a discard logger and, for signed-in calls, verified claims.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/almasezhe/warauction/internal/api/middleware"
	"github.com/almasezhe/warauction/internal/models"
	"github.com/google/uuid"
)

const TestEmail = "test@example.com"

func newRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(context.WithValue(req.Context(), middleware.LoggerKey, logger))
}

// CreateTestRequestWithContext returns a request authenticated as userID.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)

	claims := &models.Claims{UserID: userID, Email: TestEmail}

	return req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	return newRequest(method, target, body, pathParams)
}
