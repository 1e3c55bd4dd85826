package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/almasezhe/warauction/internal/models"
	"github.com/almasezhe/warauction/internal/utils"
)

type AuctionRepository interface {
	ListItems(ctx context.Context) ([]models.AuctionItem, error)
	GetItemByID(ctx context.Context, id int64) (*models.AuctionItem, error)
	CreateItem(ctx context.Context, item *models.AuctionItem) error
	UpdateItem(ctx context.Context, item *models.AuctionItem) error
	DeleteItem(ctx context.Context, id int64) error
}

type auctionRepository struct {
	DB *sql.DB
}

func NewAuctionRepo(db *sql.DB) AuctionRepository {
	return &auctionRepository{DB: db}
}

const auctionColumns = `id, name, COALESCE(description, ''), current_bid, time_left, COALESCE(image_url, ''), is_active, created_at`

func scanAuctionItem(row rowScanner) (*models.AuctionItem, error) {
	item := &models.AuctionItem{}

	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.CurrentBid, &item.TimeLeft, &item.ImageURL, &item.IsActive, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *auctionRepository) ListItems(ctx context.Context) ([]models.AuctionItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+auctionColumns+` FROM auction_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying auction items: %w", err)
	}
	defer rows.Close()

	items := make([]models.AuctionItem, 0)

	for rows.Next() {
		item, err := scanAuctionItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning auction item: %w", err)
		}

		items = append(items, *item)
	}

	return items, rows.Err()
}

func (r *auctionRepository) GetItemByID(ctx context.Context, id int64) (*models.AuctionItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	item, err := scanAuctionItem(r.DB.QueryRowContext(dbCtx, `SELECT `+auctionColumns+` FROM auction_items WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}

	return item, nil
}

func (r *auctionRepository) CreateItem(ctx context.Context, item *models.AuctionItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO auction_items (name, description, current_bid, time_left, image_url, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query, item.Name, item.Description, item.CurrentBid, item.TimeLeft, item.ImageURL, item.IsActive).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *auctionRepository) UpdateItem(ctx context.Context, item *models.AuctionItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE auction_items
		SET name = $1, description = $2, current_bid = $3, time_left = $4, image_url = $5, is_active = $6
		WHERE id = $7`

	res, err := r.DB.ExecContext(dbCtx, query, item.Name, item.Description, item.CurrentBid, item.TimeLeft, item.ImageURL, item.IsActive, item.ID)
	if err != nil {
		return fmt.Errorf("updating auction item: %w", err)
	}

	return expectAffected(res)
}

func (r *auctionRepository) DeleteItem(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM auction_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting auction item: %w", err)
	}

	return expectAffected(res)
}
