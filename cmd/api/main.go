package main

import (
	"log"

	"pawmart/config"
	"pawmart/internal/handler"
	"pawmart/internal/payments"
	"pawmart/internal/redis"
	"pawmart/internal/repository"
	"pawmart/internal/server"
	"pawmart/internal/services"
	"pawmart/pkg/database"
	"pawmart/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.ApplyMigrations("migrations"); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redis.Initialize(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	cache := redis.NewCacheStore(redis.GetClient(), redis.DefaultCacheConfig())
	limiter := redis.NewRateLimiter(redis.GetClient(), redis.DefaultRateLimitConfig())

	db := database.DB
	txRunner := repository.NewTxRunner(db)
	petRepo := repository.NewPetRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	adoptionRepo := repository.NewAdoptionRepository(db)
	webhookLogRepo := repository.NewWebhookLogRepository(db)
	userRepo := repository.NewUserRepository(db)

	gateway := payments.NewStripeGateway(payments.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		SuccessURL:    cfg.CheckoutSuccessURL,
		CancelURL:     cfg.CheckoutCancelURL,
		Currency:      cfg.Currency,
	})
	if !gateway.Configured() {
		l.Warnf("Stripe gateway not configured; checkout sessions and webhooks will be rejected")
	}

	authService := services.NewAuthService(cfg.JWTSecret)
	orderService := services.NewOrderService(txRunner, orderRepo, petRepo, userRepo, gateway, cache, l)
	webhookService := services.NewWebhookService(txRunner, orderRepo, petRepo, webhookLogRepo, gateway, cache, l)
	adoptionService := services.NewAdoptionService(txRunner, adoptionRepo, petRepo, cache, l)
	petService := services.NewPetService(petRepo, cache, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Order:    handler.NewOrderHandler(orderService),
		Webhook:  handler.NewWebhookHandler(webhookService, l),
		Adoption: handler.NewAdoptionHandler(adoptionService),
		Pet:      handler.NewPetHandler(petService),
	}, authService, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
