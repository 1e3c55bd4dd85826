package repository

import (
	"context"
	"time"

	"github.com/almasezhe/warauction/internal/cache"
	"github.com/almasezhe/warauction/internal/models"
	"github.com/google/uuid"
)

// SessionRepository persists the identity snapshot of a signed-in user so it
// survives between requests without a users table round trip.
type SessionRepository interface {
	GetIdentity(ctx context.Context, userID uuid.UUID) (*models.Identity, bool, error)
	SaveIdentity(ctx context.Context, identity *models.Identity) error
	DeleteIdentity(ctx context.Context, userID uuid.UUID) error
}

type sessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewSessionRepo(c cache.Cache, ttl time.Duration) SessionRepository {
	return &sessionRepository{cache: c, ttl: ttl}
}

func sessionKey(userID uuid.UUID) string {
	return cache.Key(cache.SessionKeyPrefix, userID.String())
}

func (r *sessionRepository) GetIdentity(ctx context.Context, userID uuid.UUID) (*models.Identity, bool, error) {
	var identity models.Identity

	found, err := r.cache.Get(ctx, sessionKey(userID), &identity)
	if err != nil || !found {
		return nil, false, err
	}

	return &identity, true, nil
}

func (r *sessionRepository) SaveIdentity(ctx context.Context, identity *models.Identity) error {
	return r.cache.Set(ctx, sessionKey(identity.UserID), identity, r.ttl)
}

func (r *sessionRepository) DeleteIdentity(ctx context.Context, userID uuid.UUID) error {
	return r.cache.Delete(ctx, sessionKey(userID))
}
