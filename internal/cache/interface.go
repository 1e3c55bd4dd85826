package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CatalogKeyPrefix = "catalog"
	SessionKeyPrefix = "session"
)

// CatalogOptionsKey holds the full option list.
var CatalogOptionsKey = Key(CatalogKeyPrefix, "options")
