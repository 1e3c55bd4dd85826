package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/almasezhe/warauction/docs"
	"github.com/almasezhe/warauction/internal/api/handlers"
	"github.com/almasezhe/warauction/internal/api/middleware"
	"github.com/almasezhe/warauction/internal/cache"
	"github.com/almasezhe/warauction/internal/config"
	"github.com/almasezhe/warauction/internal/health"
	"github.com/almasezhe/warauction/internal/metrics"
	repository "github.com/almasezhe/warauction/internal/repositories"
	service "github.com/almasezhe/warauction/internal/services"
	"github.com/almasezhe/warauction/internal/telemetry"
	"github.com/almasezhe/warauction/pkg/sendgrid"
	"github.com/almasezhe/warauction/pkg/stripe"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

// @title						War Auction API
// @version					1.0
// @description				Catalog, cart pricing and order checkout for the war auction storefront.
// @host						localhost:8080
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the JWT issued by the identity provider.
func main() {
	// Logger setup
	logger := telemetry.NewLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTracer, err := telemetry.SetupTracer(ctx, cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	sessionRepo := repository.NewSessionRepo(redisCache, cfg.Cache.SessionTTL)
	checkoutLimiter := repository.NewRateLimiter(redisClient, cfg.RateLimit, nil)

	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	sendGridClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	catalogService := service.NewCatalogService(repos.Option, redisCache, cfg.Cache.CatalogTTL)
	cartService := service.NewCartService(catalogService, cfg.Pricing)
	notificationService := service.NewNotificationService(sendGridClient)
	checkoutService := service.NewCheckoutService(cartService, repos.Order, stripeClient, notificationService, cfg.Stripe.Currency)
	identityService := service.NewIdentityService(repos.User, sessionRepo, cartService)
	profileService := service.NewProfileService(repos.User, identityService)
	adminService := service.NewAdminService(repos.Admin, repos.User)
	auctionService := service.NewAuctionService(repos.Auction)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(checkoutService, identityService)
	paymentHandler := handlers.NewPaymentHandler(checkoutService)
	profileHandler := handlers.NewProfileHandler(profileService, identityService)
	adminHandler := handlers.NewAdminHandler(adminService)
	auctionHandler := handlers.NewAuctionHandler(auctionService)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))
	admin := func(next http.Handler) http.HandlerFunc {
		return authMiddleware.Authenticate(middleware.RequireAdmin(adminService, next))
	}

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:          repos.DB,
		RedisClient: redisClient,
		Version:     version,
	})
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// Setup router
	routerMux := http.NewServeMux()

	// Catalog and auction board
	routerMux.HandleFunc("GET /api/v1/options", catalogHandler.ListOptions())
	routerMux.HandleFunc("GET /api/v1/options/{id}", catalogHandler.GetOption())
	routerMux.HandleFunc("GET /api/v1/auction", auctionHandler.ListItems(true))

	// Cart
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("DELETE /api/v1/cart", authMiddleware.Authenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.SetQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("PATCH /api/v1/cart/modifiers", authMiddleware.Authenticate(cartHandler.UpdateModifiers()))

	// Orders and payments
	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(middleware.RateLimit(checkoutLimiter, "checkout", orderHandler.Checkout())))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())

	// Profile
	routerMux.HandleFunc("GET /api/v1/me", authMiddleware.Authenticate(profileHandler.Me()))
	routerMux.HandleFunc("GET /api/v1/profile", authMiddleware.Authenticate(profileHandler.GetProfile()))
	routerMux.HandleFunc("PATCH /api/v1/profile/username", authMiddleware.Authenticate(profileHandler.UpdateUsername()))
	routerMux.HandleFunc("PATCH /api/v1/profile/avatar", authMiddleware.Authenticate(profileHandler.UpdateAvatar()))
	routerMux.HandleFunc("PATCH /api/v1/profile/password", authMiddleware.Authenticate(profileHandler.UpdatePassword()))
	routerMux.HandleFunc("POST /api/v1/signout", authMiddleware.Authenticate(profileHandler.SignOut()))

	// Admin
	routerMux.HandleFunc("POST /api/v1/admin/options", admin(catalogHandler.CreateOption()))
	routerMux.HandleFunc("PUT /api/v1/admin/options/{id}", admin(catalogHandler.UpdateOption()))
	routerMux.HandleFunc("DELETE /api/v1/admin/options/{id}", admin(catalogHandler.DeleteOption()))
	routerMux.HandleFunc("GET /api/v1/admin/auction", admin(auctionHandler.ListItems(false)))
	routerMux.HandleFunc("POST /api/v1/admin/auction", admin(auctionHandler.CreateItem()))
	routerMux.HandleFunc("PATCH /api/v1/admin/auction/{id}", admin(auctionHandler.UpdateItem()))
	routerMux.HandleFunc("DELETE /api/v1/admin/auction/{id}", admin(auctionHandler.DeleteItem()))
	routerMux.HandleFunc("GET /api/v1/admin/admins", admin(adminHandler.ListAdmins()))
	routerMux.HandleFunc("POST /api/v1/admin/admins/{userId}", admin(adminHandler.GrantAdmin()))
	routerMux.HandleFunc("DELETE /api/v1/admin/admins/{userId}", admin(adminHandler.RevokeAdmin()))
	routerMux.HandleFunc("GET /api/v1/admin/users", admin(adminHandler.ListUsers()))

	// Operations
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "warauction")

	// Setup http server
	server := http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.HTTPServer.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
