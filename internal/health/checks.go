package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/almasezhe/warauction/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
)

type Endpoints struct {
	DB          *sql.DB
	RedisClient *redis.Client
	Version     string
}

// NewHealthHandler checks the live pools owned by main. Stripe is only probed
// when an API key is configured and never fails the overall status.
func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check: func(ctx context.Context) error {
				return endpoints.DB.PingContext(ctx)
			},
		},
		{
			Name:    "redis",
			Timeout: 2 * time.Second,
			Check: func(ctx context.Context) error {
				return endpoints.RedisClient.Ping(ctx).Err()
			},
		},
	}

	if cfg.Stripe.APIKey != "" {
		checks = append(checks, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				params := &stripe.BalanceParams{Params: stripe.Params{Context: ctx}}
				if _, err := balance.Get(params); err != nil {
					return fmt.Errorf("failed to connect to stripe: %w", err)
				}

				return nil
			},
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: endpoints.Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
