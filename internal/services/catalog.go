package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/almasezhe/warauction/internal/api/middleware"
	"github.com/almasezhe/warauction/internal/cache"
	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/metrics"
	"github.com/almasezhe/warauction/internal/models"
	repository "github.com/almasezhe/warauction/internal/repositories"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

type CatalogService interface {
	ListOptions(ctx context.Context) ([]models.Option, error)
	AvailableOptions(ctx context.Context) []models.Option
	GetOption(ctx context.Context, id int64) (*models.Option, error)
	CreateOption(ctx context.Context, req *models.CreateOptionRequest) (*models.Option, error)
	UpdateOption(ctx context.Context, id int64, req *models.UpdateOptionRequest) (*models.Option, error)
	DeleteOption(ctx context.Context, id int64) error
}

type catalogService struct {
	repo  repository.OptionRepository
	cache cache.Cache
	ttl   time.Duration
	group singleflight.Group
}

func NewCatalogService(repo repository.OptionRepository, c cache.Cache, ttl time.Duration) CatalogService {
	return &catalogService{repo: repo, cache: c, ttl: ttl}
}

// ListOptions serves the option list from the cache and collapses concurrent
// misses into one database query.
func (s *catalogService) ListOptions(ctx context.Context) ([]models.Option, error) {
	logger := middleware.LoggerFromContext(ctx)

	var options []models.Option

	found, err := s.cache.Get(ctx, cache.CatalogOptionsKey, &options)
	switch {
	case err != nil:
		metrics.RecordCatalogLookup("error")
		logger.Warn("Catalog cache read failed", slog.String("error", err.Error()))
	case found:
		metrics.RecordCatalogLookup("hit")
		return options, nil
	default:
		metrics.RecordCatalogLookup("miss")
	}

	// The shared load outlives any single caller; each caller still stops waiting on its own ctx.
	loadCtx := context.WithoutCancel(ctx)

	ch := s.group.DoChan(cache.CatalogOptionsKey, func() (any, error) {
		options, err := s.repo.ListOptions(loadCtx)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(loadCtx, cache.CatalogOptionsKey, options, s.ttl); err != nil {
			logger.Warn("Catalog cache write failed", slog.String("error", err.Error()))
		}

		return options, nil
	})

	select {
	case <-ctx.Done():
		return nil, appErrors.DatabaseError("Failed to load catalog").WithError(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, appErrors.DatabaseError("Failed to load catalog").WithError(res.Err)
		}

		return res.Val.([]models.Option), nil
	}
}

// AvailableOptions never fails: a catalog that cannot be loaded renders as empty.
func (s *catalogService) AvailableOptions(ctx context.Context) []models.Option {
	options, err := s.ListOptions(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Catalog unavailable, showing no options", slog.String("error", err.Error()))
		return []models.Option{}
	}

	return options
}

func (s *catalogService) GetOption(ctx context.Context, id int64) (*models.Option, error) {
	option, err := s.repo.GetOptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Option not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load option").WithError(err)
	}

	return option, nil
}

func (s *catalogService) CreateOption(ctx context.Context, req *models.CreateOptionRequest) (*models.Option, error) {
	option := &models.Option{
		Name:     req.Name,
		Cost:     decimal.NewFromInt(req.Cost),
		ImageURL: req.ImageURL,
	}

	if err := s.repo.CreateOption(ctx, option); err != nil {
		return nil, appErrors.DatabaseError("Failed to create option").WithError(err)
	}

	s.invalidate(ctx)

	return option, nil
}

func (s *catalogService) UpdateOption(ctx context.Context, id int64, req *models.UpdateOptionRequest) (*models.Option, error) {
	option, err := s.GetOption(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		option.Name = *req.Name
	}
	if req.Cost != nil {
		option.Cost = decimal.NewFromInt(*req.Cost)
	}
	if req.ImageURL != nil {
		option.ImageURL = *req.ImageURL
	}

	if err := s.repo.UpdateOption(ctx, option); err != nil {
		return nil, appErrors.DatabaseError("Failed to update option").WithError(err)
	}

	s.invalidate(ctx)

	return option, nil
}

func (s *catalogService) DeleteOption(ctx context.Context, id int64) error {
	if err := s.repo.DeleteOption(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Option not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete option").WithError(err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *catalogService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.CatalogOptionsKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache invalidation failed", slog.String("error", err.Error()))
	}
}
