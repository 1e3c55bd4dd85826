package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/almasezhe/warauction/internal/api/middleware"
	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/models"
	repository "github.com/almasezhe/warauction/internal/repositories"
	"github.com/google/uuid"
)

// IdentityService resolves the signed-in user behind verified token claims.
type IdentityService interface {
	Resolve(ctx context.Context, claims *models.Claims) (*models.Identity, error)
	Refresh(ctx context.Context, user *models.User) *models.Identity
	SignOut(ctx context.Context, userID uuid.UUID)
}

type identityService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	carts    CartService
}

func NewIdentityService(users repository.UserRepository, sessions repository.SessionRepository, carts CartService) IdentityService {
	return &identityService{users: users, sessions: sessions, carts: carts}
}

// Resolve prefers the cached snapshot and falls back to the users table.
// Snapshot read and write failures are logged and never fail the request.
func (s *identityService) Resolve(ctx context.Context, claims *models.Claims) (*models.Identity, error) {
	logger := middleware.LoggerFromContext(ctx)

	if claims == nil || claims.UserID == uuid.Nil {
		return nil, appErrors.UnauthorizedError("Authentication required")
	}

	identity, found, err := s.sessions.GetIdentity(ctx, claims.UserID)
	if err != nil {
		logger.Warn("Identity snapshot read failed", slog.String("user_id", claims.UserID.String()), slog.String("error", err.Error()))
	}

	if found {
		return identity, nil
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.UnauthorizedError("Unknown user").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load user").WithError(err)
	}

	return s.Refresh(ctx, user), nil
}

// Refresh rebuilds the snapshot from a freshly loaded or updated user.
func (s *identityService) Refresh(ctx context.Context, user *models.User) *models.Identity {
	identity := &models.Identity{
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
	}

	if err := s.sessions.SaveIdentity(ctx, identity); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Identity snapshot write failed", slog.String("user_id", user.ID.String()), slog.String("error", err.Error()))
	}

	return identity
}

func (s *identityService) SignOut(ctx context.Context, userID uuid.UUID) {
	if err := s.sessions.DeleteIdentity(ctx, userID); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Identity snapshot delete failed", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
	}

	s.carts.Discard(ctx, userID)
}
