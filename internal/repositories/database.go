package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/almasezhe/warauction/internal/config"
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ErrNotFound is returned when a lookup by key matches no row.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	DB      *sql.DB
	Option  OptionRepository
	Order   OrderRepository
	User    UserRepository
	Auction AuctionRepository
	Admin   AdminRepository
}

func New(cfg *config.Config) (*Repository, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewFromDB(db), nil
}

// NewFromDB builds every repository on top of an already opened pool.
func NewFromDB(db *sql.DB) *Repository {
	return &Repository{
		DB:      db,
		Option:  NewOptionRepo(db),
		Order:   NewOrderRepo(db),
		User:    NewUserRepo(db),
		Auction: NewAuctionRepo(db),
		Admin:   NewAdminRepo(db),
	}
}

func (r *Repository) Close() error {
	return r.DB.Close()
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	return err
}
