package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/almasezhe/warauction/internal/models"
	"github.com/almasezhe/warauction/internal/utils"
	"github.com/google/uuid"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error)
	UpdateStatusByPaymentIntent(ctx context.Context, paymentIntentID string, status models.OrderStatus) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `id, user_id, username, email, payment_method, message, rush, extra_service,
	subtotal, message_surcharge, modifier_surcharge, total, COALESCE(payment_intent_id, ''), status, created_at`

// CreateOrder writes the order row and all of its lines in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) (err error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO orders (id, user_id, username, email, payment_method, message, rush, extra_service,
			subtotal, message_surcharge, modifier_surcharge, total, payment_intent_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING created_at`

	err = tx.QueryRowContext(dbCtx, query,
		order.ID, order.UserID, order.Username, order.Email, order.PaymentMethod, order.Message,
		order.Rush, order.ExtraService, order.Subtotal, order.MessageSurcharge, order.ModifierSurcharge,
		order.Total, order.PaymentIntentID, order.Status,
	).Scan(&order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_lines (order_id, option_id, name, unit_cost, quantity)
		VALUES ($1, $2, $3, $4, $5)`

	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID

		if _, err = tx.ExecContext(dbCtx, lineQuery, order.ID, line.OptionID, line.Name, line.UnitCost, line.Quantity); err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, notFound(err)
	}

	rows, err := r.DB.QueryContext(dbCtx,
		`SELECT option_id, name, unit_cost, quantity FROM order_lines WHERE order_id = $1 ORDER BY option_id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order lines: %w", err)
	}
	defer rows.Close()

	order.Lines = make([]models.OrderLine, 0)

	for rows.Next() {
		line := models.OrderLine{OrderID: order.ID}
		if err := rows.Scan(&line.OptionID, &line.Name, &line.UnitCost, &line.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}

		order.Lines = append(order.Lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrdersByUser pages a user's orders newest first. Lines are not loaded.
func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, size, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]models.Order, 0, size)

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}

		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) UpdateStatusByPaymentIntent(ctx context.Context, paymentIntentID string, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `UPDATE orders SET status = $1 WHERE payment_intent_id = $2`, status, paymentIntentID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return expectAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	o := &models.Order{}

	err := row.Scan(&o.ID, &o.UserID, &o.Username, &o.Email, &o.PaymentMethod, &o.Message, &o.Rush, &o.ExtraService,
		&o.Subtotal, &o.MessageSurcharge, &o.ModifierSurcharge, &o.Total, &o.PaymentIntentID, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}

	return o, nil
}
