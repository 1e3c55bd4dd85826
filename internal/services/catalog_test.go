package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/almasezhe/warauction/internal/cache"
	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/models"
	repository "github.com/almasezhe/warauction/internal/repositories"
	repoMocks "github.com/almasezhe/warauction/internal/repositories/mocks"
	service "github.com/almasezhe/warauction/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOptions() []models.Option {
	return []models.Option{
		{ID: 1, Name: "Shell", Cost: decimal.NewFromInt(100)},
		{ID: 2, Name: "Salvo", Cost: decimal.NewFromInt(150), ImageURL: "https://img.example.com/salvo.png"},
	}
}

func TestListOptions(t *testing.T) {
	t.Run("Success - Miss loads from repository and fills cache", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewOptionRepository(t)
		c := newMemoryCache()
		svc := service.NewCatalogService(repo, c, time.Minute)
		ctx := testContext()

		repo.On("ListOptions", mock.Anything).Return(testOptions(), nil).Once()

		// Act
		first, err := svc.ListOptions(ctx)
		require.NoError(t, err)
		second, err := svc.ListOptions(ctx)

		// Assert
		require.NoError(t, err)
		assert.Len(t, first, 2)
		require.Len(t, second, 2)
		assert.Equal(t, "Salvo", second[1].Name)
		assert.True(t, second[1].Cost.Equal(decimal.NewFromInt(150)))
		assert.True(t, c.has(cache.CatalogOptionsKey))
	})

	t.Run("Success - Cache read error falls back to repository", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		c := newMemoryCache()
		c.getErr = errors.New("connection refused")
		svc := service.NewCatalogService(repo, c, time.Minute)

		repo.On("ListOptions", mock.Anything).Return(testOptions(), nil).Once()

		options, err := svc.ListOptions(testContext())

		require.NoError(t, err)
		assert.Len(t, options, 2)
	})

	t.Run("Success - Cache write error is not fatal", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		c := newMemoryCache()
		c.setErr = errors.New("read only replica")
		svc := service.NewCatalogService(repo, c, time.Minute)

		repo.On("ListOptions", mock.Anything).Return(testOptions(), nil).Once()

		options, err := svc.ListOptions(testContext())

		require.NoError(t, err)
		assert.Len(t, options, 2)
		assert.False(t, c.has(cache.CatalogOptionsKey))
	})

	t.Run("Failure - Repository error", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		svc := service.NewCatalogService(repo, newMemoryCache(), time.Minute)

		repo.On("ListOptions", mock.Anything).Return(nil, errors.New("db down")).Once()

		options, err := svc.ListOptions(testContext())

		assert.Nil(t, options)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})

	t.Run("Success - Concurrent misses share one query", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewOptionRepository(t)
		c := newMemoryCache()
		svc := service.NewCatalogService(repo, c, time.Minute)
		ctx := testContext()

		const callers = 16

		var queries atomic.Int32
		release := make(chan struct{})

		repo.On("ListOptions", mock.Anything).Run(func(mock.Arguments) {
			queries.Add(1)
			<-release
		}).Return(testOptions(), nil)

		// Act
		var wg sync.WaitGroup
		for range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				options, err := svc.ListOptions(ctx)
				assert.NoError(t, err)
				assert.Len(t, options, 2)
			}()
		}

		require.Eventually(t, func() bool { return c.gets.Load() == callers }, time.Second, time.Millisecond)
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		// Assert
		assert.Equal(t, int32(1), queries.Load())
	})

	t.Run("Success - Cancelled caller does not fail callers sharing its load", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewOptionRepository(t)
		c := newMemoryCache()
		svc := service.NewCatalogService(repo, c, time.Minute)

		started := make(chan struct{})
		release := make(chan struct{})
		var loadCancelled atomic.Bool

		repo.On("ListOptions", mock.Anything).Run(func(args mock.Arguments) {
			loadCtx := args.Get(0).(context.Context)
			close(started)
			<-release
			loadCancelled.Store(loadCtx.Err() != nil)
		}).Return(testOptions(), nil).Once()

		ctxA, cancelA := context.WithCancel(testContext())
		defer cancelA()

		errA := make(chan error, 1)
		go func() {
			_, err := svc.ListOptions(ctxA)
			errA <- err
		}()
		<-started

		type result struct {
			options []models.Option
			err     error
		}
		resB := make(chan result, 1)
		go func() {
			options, err := svc.ListOptions(testContext())
			resB <- result{options, err}
		}()
		require.Eventually(t, func() bool { return c.gets.Load() == 2 }, time.Second, time.Millisecond)
		time.Sleep(20 * time.Millisecond)

		// Act
		cancelA()
		err := <-errA
		close(release)
		b := <-resB

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		require.NoError(t, b.err)
		assert.Len(t, b.options, 2)
		assert.False(t, loadCancelled.Load())
		assert.True(t, c.has(cache.CatalogOptionsKey))
	})
}

func TestAvailableOptions(t *testing.T) {
	t.Run("Success - Failed catalog renders as empty", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		svc := service.NewCatalogService(repo, newMemoryCache(), time.Minute)

		repo.On("ListOptions", mock.Anything).Return(nil, errors.New("db down")).Once()

		options := svc.AvailableOptions(testContext())

		assert.NotNil(t, options)
		assert.Empty(t, options)
	})

	t.Run("Success - Returns the catalog", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		svc := service.NewCatalogService(repo, newMemoryCache(), time.Minute)

		repo.On("ListOptions", mock.Anything).Return(testOptions(), nil).Once()

		assert.Len(t, svc.AvailableOptions(testContext()), 2)
	})
}

func TestGetOption(t *testing.T) {
	t.Run("Success - Found", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		svc := service.NewCatalogService(repo, newMemoryCache(), time.Minute)
		option := testOptions()[0]

		repo.On("GetOptionByID", mock.Anything, int64(1)).Return(&option, nil).Once()

		got, err := svc.GetOption(testContext(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Shell", got.Name)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		svc := service.NewCatalogService(repo, newMemoryCache(), time.Minute)

		repo.On("GetOptionByID", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound).Once()

		got, err := svc.GetOption(testContext(), 9)

		assert.Nil(t, got)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		svc := service.NewCatalogService(repo, newMemoryCache(), time.Minute)

		repo.On("GetOptionByID", mock.Anything, int64(9)).Return(nil, errors.New("timeout")).Once()

		_, err := svc.GetOption(testContext(), 9)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestOptionMutationsInvalidateCache(t *testing.T) {
	seed := func(t *testing.T, c *memoryCache) {
		t.Helper()
		require.NoError(t, c.Set(testContext(), cache.CatalogOptionsKey, testOptions(), time.Minute))
	}

	t.Run("Success - Create", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewOptionRepository(t)
		c := newMemoryCache()
		seed(t, c)
		svc := service.NewCatalogService(repo, c, time.Minute)
		req := &models.CreateOptionRequest{Name: "Barrage", Cost: 250}

		repo.On("CreateOption", mock.Anything, mock.MatchedBy(func(o *models.Option) bool {
			return o.Name == "Barrage" && o.Cost.Equal(decimal.NewFromInt(250))
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Option).ID = 3
		}).Return(nil).Once()

		// Act
		option, err := svc.CreateOption(testContext(), req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), option.ID)
		assert.False(t, c.has(cache.CatalogOptionsKey))
	})

	t.Run("Success - Update applies only set fields", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		c := newMemoryCache()
		seed(t, c)
		svc := service.NewCatalogService(repo, c, time.Minute)
		existing := testOptions()[1]
		cost := int64(175)

		repo.On("GetOptionByID", mock.Anything, int64(2)).Return(&existing, nil).Once()
		repo.On("UpdateOption", mock.Anything, mock.MatchedBy(func(o *models.Option) bool {
			return o.Name == "Salvo" && o.Cost.Equal(decimal.NewFromInt(175)) && o.ImageURL != ""
		})).Return(nil).Once()

		option, err := svc.UpdateOption(testContext(), 2, &models.UpdateOptionRequest{Cost: &cost})

		require.NoError(t, err)
		assert.True(t, option.Cost.Equal(decimal.NewFromInt(175)))
		assert.False(t, c.has(cache.CatalogOptionsKey))
	})

	t.Run("Failure - Delete missing option keeps cache", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		c := newMemoryCache()
		seed(t, c)
		svc := service.NewCatalogService(repo, c, time.Minute)

		repo.On("DeleteOption", mock.Anything, int64(7)).Return(repository.ErrNotFound).Once()

		err := svc.DeleteOption(testContext(), 7)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.True(t, c.has(cache.CatalogOptionsKey))
	})

	t.Run("Success - Delete", func(t *testing.T) {
		repo := repoMocks.NewOptionRepository(t)
		c := newMemoryCache()
		seed(t, c)
		svc := service.NewCatalogService(repo, c, time.Minute)

		repo.On("DeleteOption", mock.Anything, int64(1)).Return(nil).Once()

		require.NoError(t, svc.DeleteOption(testContext(), 1))
		assert.False(t, c.has(cache.CatalogOptionsKey))
	})
}
