package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/almasezhe/warauction/internal/models"
	"github.com/almasezhe/warauction/internal/utils"
	"github.com/google/uuid"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, page, size int) ([]models.User, int, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, email, username, COALESCE(avatar_url, ''), password, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &models.User{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&user.ID, &user.Email, &user.Username, &user.AvatarURL, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}

	return user, nil
}

// UpdateUser persists the mutable profile fields: username, avatar and password hash.
func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users SET username = $1, avatar_url = $2, password = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, user.Username, user.AvatarURL, user.Password, user.ID).Scan(&user.UpdatedAt)
	if err != nil {
		return notFound(err)
	}

	return nil
}

func (r *userRepository) ListUsers(ctx context.Context, page, size int) ([]models.User, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `
		SELECT id, email, username, COALESCE(avatar_url, ''), created_at, updated_at
		FROM users
		ORDER BY created_at
		LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]models.User, 0, size)

	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning user: %w", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
