package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/almasezhe/warauction/internal/models"
	"github.com/almasezhe/warauction/internal/utils"
	"github.com/google/uuid"
)

type AdminRepository interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	GrantAdmin(ctx context.Context, userID uuid.UUID) error
	RevokeAdmin(ctx context.Context, userID uuid.UUID) error
}

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepo(db *sql.DB) AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	err := r.DB.QueryRowContext(dbCtx, `SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking admin membership: %w", err)
	}

	return exists, nil
}

func (r *adminRepository) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT user_id, created_at FROM admins ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("querying admins: %w", err)
	}
	defer rows.Close()

	admins := make([]models.Admin, 0)

	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.UserID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning admin: %w", err)
		}

		admins = append(admins, a)
	}

	return admins, rows.Err()
}

// GrantAdmin is idempotent.
func (r *adminRepository) GrantAdmin(ctx context.Context, userID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO admins (user_id, created_at) VALUES ($1, NOW()) ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.DB.ExecContext(dbCtx, query, userID); err != nil {
		return fmt.Errorf("granting admin: %w", err)
	}

	return nil
}

func (r *adminRepository) RevokeAdmin(ctx context.Context, userID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM admins WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("revoking admin: %w", err)
	}

	return expectAffected(res)
}
