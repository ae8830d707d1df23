// Package server
//
// @title Electronics Shop Admin API
// @version 1.0
// @description Back-office API for the electronics shop
// @host localhost:3000
// @BasePath /
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/levanduy093-work/electronics-admin/internal/auth"
	"github.com/levanduy093-work/electronics-admin/internal/config"
	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// Server represents the HTTP server
type Server struct {
	router    *gin.Engine
	db        *gorm.DB
	config    *config.Config
	logger    zerolog.Logger
	validator *validator.Validate
	cron      *cron.Cron
	version   string
}

// New creates a new server instance
func New(cfg *config.Config, zlog zerolog.Logger, version string) (*Server, error) {
	// Initialize database with production settings
	db, err := initDatabase(cfg, zlog)
	if err != nil {
		return nil, err
	}

	// Run database migrations
	if err := models.AutoMigrate(db); err != nil {
		return nil, err
	}

	// Initialize JWT authentication
	// Load JWT secret from database (auto-generated during first setup)
	var conf models.Config
	if err := db.First(&conf).Error; err == nil {
		auth.InitializeJWT(conf.JWTSecret)
		zlog.Debug().Msg("Loaded JWT secret from database")
	} else {
		// No config yet - JWT will be initialized during setupFirstAdmin
		zlog.Info().Msg("No config found - JWT will be initialized during first setup")
	}

	// Initialize validator
	validate := validator.New()

	validate.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "low", "normal", "high":
			return true
		}
		return false
	})

	validate.RegisterValidation("movementtype", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case models.MovementIn, models.MovementOut, models.MovementAdjust:
			return true
		}
		return false
	})

	server := &Server{
		db:        db,
		config:    cfg,
		logger:    zlog,
		validator: validate,
		version:   version,
	}

	// Seed catalog data if a seed file is configured
	if err := server.seedFromFile(os.Getenv("SEED_FILE")); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	// Schedule the expired-voucher sweep
	if cfg.Vouchers.SweepSchedule != "" {
		server.cron = cron.New()
		if _, err := server.cron.AddFunc(cfg.Vouchers.SweepSchedule, server.sweepExpiredVouchers); err != nil {
			return nil, fmt.Errorf("invalid voucher sweep schedule %q: %w", cfg.Vouchers.SweepSchedule, err)
		}
	}

	// Setup router
	server.setupRouter()

	return server, nil
}

// initDatabase initializes the database connection with production settings
func initDatabase(cfg *config.Config, zlog zerolog.Logger) (*gorm.DB, error) {
	const (
		maxOpenConns    = 8
		maxIdleConns    = 4
		connMaxLifetime = 300 // 5 minutes
		busyTimeout     = 5000
		cacheSize       = 10000 // 10MB
	)

	db, err := gorm.Open(sqlite.Open(cfg.Database.URL), &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				LogLevel:                  logger.Error,
				IgnoreRecordNotFoundError: true,
				SlowThreshold:             200 * time.Millisecond,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Apply SQLite pragmas directly (connection string pragmas may not work with all drivers)
	// WAL mode must be set first for optimal concurrency
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeout),
		fmt.Sprintf("PRAGMA cache_size=-%d", cacheSize),
		"PRAGMA foreign_keys=1",
		"PRAGMA temp_store=2",
	}

	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			zlog.Warn().Str("pragma", pragma).Err(err).Msg("Failed to apply pragma")
		}
	}

	return db, nil
}

// setupRouter configures the Gin router with routes and middleware
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()

	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	// CORS middleware for the web admin
	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.config.HTTP.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (no auth required)
	s.router.GET("/health", s.healthCheck)

	// Uploaded files are served statically
	s.router.Static("/uploads", s.config.Uploads.Dir)

	// Public auth endpoints (no auth required)
	s.router.POST("/auth/setup", s.setupFirstAdmin)
	s.router.POST("/auth/login", s.login)
	s.router.POST("/auth/refresh", s.refresh)

	// Authenticated routes (JWT required)
	authed := s.router.Group("")
	authed.Use(JWTAuthMiddleware(s.db, s.logger))
	authed.GET("/auth/me", s.getCurrentUser)

	// Everything the back office touches is admin only. A valid customer
	// token gets 403 here, which the admin client treats as terminal.
	admin := authed.Group("")
	admin.Use(AdminOnlyMiddleware(s.logger))
	{
		// User management. GET /users doubles as the client's admin probe.
		admin.GET("/users", s.listUsers)
		admin.POST("/users", s.createUser)
		admin.PATCH("/users/:id", s.updateUser)
		admin.DELETE("/users/:id", s.deleteUser)

		// Catalog
		admin.GET("/products", s.listProducts)
		admin.POST("/products", s.createProduct)
		admin.GET("/products/:id", s.getProduct)
		admin.PATCH("/products/:id", s.updateProduct)
		admin.DELETE("/products/:id", s.deleteProduct)

		// Orders
		admin.GET("/orders", s.listOrders)
		admin.GET("/orders/:id", s.getOrder)
		admin.PATCH("/orders/:id", s.updateOrder)

		// Shipments
		admin.GET("/shipments", s.listShipments)
		admin.POST("/shipments", s.createShipment)
		admin.PATCH("/shipments/:id", s.updateShipment)
		admin.DELETE("/shipments/:id", s.deleteShipment)

		// Vouchers
		admin.GET("/vouchers", s.listVouchers)
		admin.POST("/vouchers", s.createVoucher)
		admin.PATCH("/vouchers/:id", s.updateVoucher)
		admin.DELETE("/vouchers/:id", s.deleteVoucher)

		// Banners
		admin.GET("/banners", s.listBanners)
		admin.POST("/banners", s.createBanner)
		admin.PATCH("/banners/reorder", s.reorderBanners)
		admin.PATCH("/banners/:id", s.updateBanner)
		admin.DELETE("/banners/:id", s.deleteBanner)

		// Notifications
		admin.GET("/notifications/admin/all", s.listNotifications)
		admin.POST("/notifications/admin", s.createNotification)
		admin.PATCH("/notifications/admin/:id", s.updateNotification)
		admin.DELETE("/notifications/admin/all", s.deleteAllNotifications)
		admin.DELETE("/notifications/admin/:id", s.deleteNotification)

		// Reviews
		admin.GET("/reviews", s.listReviews)
		admin.DELETE("/reviews/:id", s.deleteReview)

		// Transactions
		admin.GET("/transactions", s.listTransactions)
		admin.POST("/transactions", s.createTransaction)
		admin.PATCH("/transactions/:id", s.updateTransaction)
		admin.DELETE("/transactions/:id", s.deleteTransaction)

		// Inventory movements
		admin.GET("/inventory-movements", s.listMovements)
		admin.POST("/inventory-movements", s.createMovement)
		admin.PATCH("/inventory-movements/:id", s.updateMovement)
		admin.DELETE("/inventory-movements/:id", s.deleteMovement)

		// Uploads
		admin.POST("/upload/image", s.uploadImage)
		admin.POST("/upload/file", s.uploadFile)
		admin.POST("/upload/image/by-url", s.uploadImageByURL)
	}
}

// loggingMiddleware creates a custom logging middleware using zerolog
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start)

		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}

// @Router /health [get]
// @Success 200 {object} map[string]interface{}
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"timestamp": time.Now().UTC(),
		"service":   "eshop-admin-api",
	})
}

// GetDB returns the database connection, used by tests
func (s *Server) GetDB() *gorm.DB {
	return s.db
}

// Router returns the configured gin engine, used by tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server and blocks until shutdown
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:    s.config.HTTP.Addr,
		Handler: s.router,
	}

	if s.cron != nil {
		s.cron.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.Info().Str("addr", s.config.HTTP.Addr).Msg("Server listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	if s.cron != nil {
		s.cron.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}
