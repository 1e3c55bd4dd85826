package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/almasezhe/warauction/internal/models"
	repository "github.com/almasezhe/warauction/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderCols = []string{
	"id", "user_id", "username", "email", "payment_method", "message", "rush", "extra_service",
	"subtotal", "message_surcharge", "modifier_surcharge", "total", "payment_intent_id", "status", "created_at",
}

func sampleOrder() *models.Order {
	return &models.Order{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		Username:          "sniper",
		Email:             "sniper@example.com",
		PaymentMethod:     models.PaymentMethodVisa,
		Message:           "for the front",
		Rush:              true,
		Subtotal:          decimal.NewFromInt(400),
		MessageSurcharge:  decimal.Zero,
		ModifierSurcharge: decimal.NewFromInt(30),
		Total:             decimal.NewFromInt(430),
		PaymentIntentID:   "pi_123",
		Status:            models.OrderStatusPending,
		Lines: []models.OrderLine{
			{OptionID: 1, Name: "Shell", UnitCost: decimal.NewFromInt(100), Quantity: 1},
			{OptionID: 2, Name: "Drone", UnitCost: decimal.NewFromInt(150), Quantity: 2},
		},
	}
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	insertOrderSQL := regexp.QuoteMeta(`INSERT INTO orders`)
	insertLineSQL := regexp.QuoteMeta(`INSERT INTO order_lines (order_id, option_id, name, unit_cost, quantity)`)

	t.Run("Success - Order and lines committed together", func(t *testing.T) {
		// Arrange
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		order := sampleOrder()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WithArgs(order.ID, order.UserID, order.Username, order.Email, order.PaymentMethod, order.Message,
				order.Rush, order.ExtraService, order.Subtotal, order.MessageSurcharge, order.ModifierSurcharge,
				order.Total, order.PaymentIntentID, order.Status).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		for _, line := range order.Lines {
			mock.ExpectExec(insertLineSQL).
				WithArgs(order.ID, line.OptionID, line.Name, line.UnitCost, line.Quantity).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		// Act
		err := repo.CreateOrder(t.Context(), order)

		// Assert
		require.NoError(t, err)
		assert.WithinDuration(t, now, order.CreatedAt, time.Second)
		for _, line := range order.Lines {
			assert.Equal(t, order.ID, line.OrderID)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Line insert rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		order := sampleOrder()
		dbErr := errors.New("check constraint quantity > 0")

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec(insertLineSQL).WillReturnError(dbErr)
		mock.ExpectRollback()

		err := repo.CreateOrder(t.Context(), order)

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to insert order line")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Order insert rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		dbErr := errors.New("duplicate key")

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).WillReturnError(dbErr)
		mock.ExpectRollback()

		err := repo.CreateOrder(t.Context(), sampleOrder())

		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Begin error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		err := repo.CreateOrder(t.Context(), sampleOrder())

		assert.ErrorContains(t, err, "failed to begin transaction")
	})
}

func TestOrderRepository_GetOrderByID(t *testing.T) {
	getSQL := regexp.QuoteMeta(`FROM orders WHERE id = $1`)
	linesSQL := regexp.QuoteMeta(`SELECT option_id, name, unit_cost, quantity FROM order_lines WHERE order_id = $1`)

	t.Run("Success - Loads lines", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		o := sampleOrder()
		now := time.Now()

		mock.ExpectQuery(getSQL).WithArgs(o.ID).WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow(o.ID.String(), o.UserID.String(), o.Username, o.Email, o.PaymentMethod, o.Message, o.Rush, o.ExtraService,
				"400", "0", "30", "430", o.PaymentIntentID, "pending", now))
		mock.ExpectQuery(linesSQL).WithArgs(o.ID).WillReturnRows(sqlmock.NewRows([]string{"option_id", "name", "unit_cost", "quantity"}).
			AddRow(1, "Shell", "100", 1).
			AddRow(2, "Drone", "150", 2))

		order, err := repo.GetOrderByID(t.Context(), o.ID)

		require.NoError(t, err)
		assert.Equal(t, o.ID, order.ID)
		assert.Equal(t, o.UserID, order.UserID)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.True(t, order.Total.Equal(decimal.NewFromInt(430)))
		require.Len(t, order.Lines, 2)
		assert.Equal(t, 2, order.Lines[1].Quantity)
		assert.Equal(t, o.ID, order.Lines[1].OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		id := uuid.New()
		mock.ExpectQuery(getSQL).WithArgs(id).WillReturnRows(sqlmock.NewRows(orderCols))

		order, err := repo.GetOrderByID(t.Context(), id)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestOrderRepository_ListOrdersByUser(t *testing.T) {
	countSQL := regexp.QuoteMeta(`SELECT COUNT(*) FROM orders WHERE user_id = $1`)
	listSQL := regexp.QuoteMeta(`FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`)

	t.Run("Success - Second page", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		userID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(countSQL).WithArgs(userID).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery(listSQL).WithArgs(userID, 2, 2).WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow(uuid.NewString(), userID.String(), "sniper", "s@example.com", "paypal", "", false, true,
				"100", "0", "100", "200", "", "pending", now))

		orders, total, err := repo.ListOrdersByUser(t.Context(), userID, 2, 2)

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, orders, 1)
		assert.Equal(t, "paypal", orders[0].PaymentMethod)
		assert.True(t, orders[0].ExtraService)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Count error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		dbErr := errors.New("count failed")
		mock.ExpectQuery(countSQL).WillReturnError(dbErr)

		orders, total, err := repo.ListOrdersByUser(t.Context(), uuid.New(), 1, 10)

		assert.Nil(t, orders)
		assert.Zero(t, total)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestOrderRepository_UpdateStatusByPaymentIntent(t *testing.T) {
	updateSQL := regexp.QuoteMeta(`UPDATE orders SET status = $1 WHERE payment_intent_id = $2`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		mock.ExpectExec(updateSQL).WithArgs(models.OrderStatusConfirmed, "pi_123").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatusByPaymentIntent(t.Context(), "pi_123", models.OrderStatusConfirmed))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown intent", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewOrderRepo(db)
		mock.ExpectExec(updateSQL).WithArgs(models.OrderStatusCancelled, "pi_missing").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatusByPaymentIntent(t.Context(), "pi_missing", models.OrderStatusCancelled)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
