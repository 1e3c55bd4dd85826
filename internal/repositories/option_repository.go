package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/almasezhe/warauction/internal/models"
	"github.com/almasezhe/warauction/internal/utils"
)

type OptionRepository interface {
	ListOptions(ctx context.Context) ([]models.Option, error)
	GetOptionByID(ctx context.Context, id int64) (*models.Option, error)
	CreateOption(ctx context.Context, option *models.Option) error
	UpdateOption(ctx context.Context, option *models.Option) error
	DeleteOption(ctx context.Context, id int64) error
}

type optionRepository struct {
	DB *sql.DB
}

func NewOptionRepo(db *sql.DB) OptionRepository {
	return &optionRepository{DB: db}
}

func (r *optionRepository) ListOptions(ctx context.Context) ([]models.Option, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, cost, COALESCE(image_url, '') FROM options ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying options: %w", err)
	}
	defer rows.Close()

	options := make([]models.Option, 0)

	for rows.Next() {
		var o models.Option
		if err := rows.Scan(&o.ID, &o.Name, &o.Cost, &o.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning option: %w", err)
		}

		options = append(options, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating options: %w", err)
	}

	return options, nil
}

func (r *optionRepository) GetOptionByID(ctx context.Context, id int64) (*models.Option, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, cost, COALESCE(image_url, '') FROM options WHERE id = $1`

	o := &models.Option{}
	if err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&o.ID, &o.Name, &o.Cost, &o.ImageURL); err != nil {
		return nil, notFound(err)
	}

	return o, nil
}

func (r *optionRepository) CreateOption(ctx context.Context, option *models.Option) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO options (name, cost, image_url) VALUES ($1, $2, $3) RETURNING id`

	return r.DB.QueryRowContext(dbCtx, query, option.Name, option.Cost, option.ImageURL).Scan(&option.ID)
}

func (r *optionRepository) UpdateOption(ctx context.Context, option *models.Option) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE options SET name = $1, cost = $2, image_url = $3 WHERE id = $4`

	res, err := r.DB.ExecContext(dbCtx, query, option.Name, option.Cost, option.ImageURL, option.ID)
	if err != nil {
		return fmt.Errorf("updating option: %w", err)
	}

	return expectAffected(res)
}

func (r *optionRepository) DeleteOption(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM options WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting option: %w", err)
	}

	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
