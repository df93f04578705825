package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawmart/config"
	"pawmart/internal/handler"
	"pawmart/internal/middleware"
	"pawmart/internal/redis"
	"pawmart/internal/services"
	"pawmart/internal/transport/httpdto"
	"pawmart/pkg/database"
	"pawmart/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Order    *handler.OrderHandler
	Webhook  *handler.WebhookHandler
	Adoption *handler.AdoptionHandler
	Pet      *handler.PetHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService, limiter *redis.RateLimiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
			return
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	// The gateway calls this; it authenticates with its signature header,
	// never with a bearer token.
	s.engine.POST("/v1/webhooks/stripe", handlers.Webhook.HandleStripe)

	s.engine.GET("/v1/pets/:id", handlers.Pet.GetByID)

	auth := middleware.AuthMiddleware(authService)

	orders := s.engine.Group("/v1/orders", auth)
	{
		orders.POST("", middleware.OrderRateLimitMiddleware(limiter), handlers.Order.Create)
		orders.POST("/checkout-session", middleware.OrderRateLimitMiddleware(limiter), handlers.Order.CreateCheckoutSession)
		orders.GET("/:id", handlers.Order.GetByID)
	}

	adoptions := s.engine.Group("/v1/adoptions", auth)
	{
		adoptions.POST("", middleware.AdoptionRateLimitMiddleware(limiter), handlers.Adoption.Create)
		adoptions.GET("/:id", handlers.Adoption.GetByID)
		adoptions.POST("/:id/decision", middleware.AdminOnly(), handlers.Adoption.Decide)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
