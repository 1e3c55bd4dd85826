package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/almasezhe/warauction/internal/models"
	repository "github.com/almasezhe/warauction/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var auctionCols = []string{"id", "name", "description", "current_bid", "time_left", "image_url", "is_active", "created_at"}

func TestAuctionRepository(t *testing.T) {
	t.Run("Success - List", func(t *testing.T) {
		// Arrange
		db, mock := newMock(t)
		repo := repository.NewAuctionRepo(db)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM auction_items ORDER BY id`)).WillReturnRows(sqlmock.NewRows(auctionCols).
			AddRow(1, "Signed flag", "From the 93rd brigade", "2500", 3600, "", true, now))

		// Act
		items, err := repo.ListItems(t.Context())

		// Assert
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Signed flag", items[0].Name)
		assert.True(t, items[0].CurrentBid.Equal(decimal.NewFromInt(2500)))
		assert.Equal(t, 3600, items[0].TimeLeft)
		assert.True(t, items[0].IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Create", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAuctionRepo(db)
		item := &models.AuctionItem{Name: "Helmet", CurrentBid: decimal.NewFromInt(100), TimeLeft: 60, IsActive: true}
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO auction_items`)).
			WithArgs(item.Name, item.Description, item.CurrentBid, item.TimeLeft, item.ImageURL, item.IsActive).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))

		require.NoError(t, repo.CreateItem(t.Context(), item))
		assert.Equal(t, int64(11), item.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Update", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAuctionRepo(db)
		item := &models.AuctionItem{ID: 11, Name: "Helmet", CurrentBid: decimal.NewFromInt(150)}

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE auction_items`)).
			WithArgs(item.Name, item.Description, item.CurrentBid, item.TimeLeft, item.ImageURL, item.IsActive, item.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateItem(t.Context(), item))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Get missing item", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAuctionRepo(db)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM auction_items WHERE id = $1`)).WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(auctionCols))

		item, err := repo.GetItemByID(t.Context(), 5)

		assert.Nil(t, item)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Failure - Delete missing item", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAuctionRepo(db)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM auction_items WHERE id = $1`)).WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteItem(t.Context(), 5)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
