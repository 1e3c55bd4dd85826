package service_test

import (
	"errors"
	"testing"

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

func TestListAuctionItems(t *testing.T) {
	items := []models.AuctionItem{
		{ID: 1, Name: "Helmet", IsActive: true},
		{ID: 2, Name: "Flag", IsActive: false},
	}

	t.Run("Success - Active only", func(t *testing.T) {
		repo := repoMocks.NewAuctionRepository(t)
		svc := service.NewAuctionService(repo)
		repo.On("ListItems", mock.Anything).Return(items, nil).Once()

		got, err := svc.ListItems(testContext(), true)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Helmet", got[0].Name)
	})

	t.Run("Success - All items", func(t *testing.T) {
		repo := repoMocks.NewAuctionRepository(t)
		svc := service.NewAuctionService(repo)
		repo.On("ListItems", mock.Anything).Return(items, nil).Once()

		got, err := svc.ListItems(testContext(), false)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		repo := repoMocks.NewAuctionRepository(t)
		svc := service.NewAuctionService(repo)
		repo.On("ListItems", mock.Anything).Return(nil, errors.New("boom")).Once()

		_, err := svc.ListItems(testContext(), false)

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestAuctionItemMutations(t *testing.T) {
	t.Run("Success - Create marks the item active", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewAuctionRepository(t)
		svc := service.NewAuctionService(repo)
		req := &models.CreateAuctionItemRequest{Name: "Helmet", CurrentBid: 40, TimeLeft: 3600}

		repo.On("CreateItem", mock.Anything, mock.MatchedBy(func(it *models.AuctionItem) bool {
			return it.IsActive && it.CurrentBid.Equal(decimal.NewFromInt(40)) && it.TimeLeft == 3600
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.AuctionItem).ID = 10
		}).Return(nil).Once()

		// Act
		item, err := svc.CreateItem(testContext(), req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(10), item.ID)
	})

	t.Run("Success - Update can deactivate", func(t *testing.T) {
		repo := repoMocks.NewAuctionRepository(t)
		svc := service.NewAuctionService(repo)
		inactive := false
		existing := &models.AuctionItem{ID: 3, Name: "Helmet", IsActive: true, CurrentBid: decimal.NewFromInt(40)}

		repo.On("GetItemByID", mock.Anything, int64(3)).Return(existing, nil).Once()
		repo.On("UpdateItem", mock.Anything, mock.MatchedBy(func(it *models.AuctionItem) bool {
			return !it.IsActive && it.Name == "Helmet"
		})).Return(nil).Once()

		item, err := svc.UpdateItem(testContext(), 3, &models.UpdateAuctionItemRequest{IsActive: &inactive})

		require.NoError(t, err)
		assert.False(t, item.IsActive)
	})

	t.Run("Failure - Update missing item", func(t *testing.T) {
		repo := repoMocks.NewAuctionRepository(t)
		svc := service.NewAuctionService(repo)
		repo.On("GetItemByID", mock.Anything, int64(4)).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.UpdateItem(testContext(), 4, &models.UpdateAuctionItemRequest{})

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Delete missing item", func(t *testing.T) {
		repo := repoMocks.NewAuctionRepository(t)
		svc := service.NewAuctionService(repo)
		repo.On("DeleteItem", mock.Anything, int64(4)).Return(repository.ErrNotFound).Once()

		err := svc.DeleteItem(testContext(), 4)

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}
