package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/samsaracrafts/storefront/internal"
	"github.com/samsaracrafts/storefront/internal/cart"
	"github.com/samsaracrafts/storefront/internal/category"
	"github.com/samsaracrafts/storefront/internal/checkout"
	"github.com/samsaracrafts/storefront/internal/cookie"
	"github.com/samsaracrafts/storefront/internal/email"
	"github.com/samsaracrafts/storefront/internal/handler"
	"github.com/samsaracrafts/storefront/internal/handler/admin"
	"github.com/samsaracrafts/storefront/internal/handler/storefront"
	"github.com/samsaracrafts/storefront/internal/middleware"
	"github.com/samsaracrafts/storefront/internal/postgres"
	"github.com/samsaracrafts/storefront/internal/router"
	"github.com/samsaracrafts/storefront/internal/routes"
	"github.com/samsaracrafts/storefront/internal/storage"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application queries
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Initialize services
	productService := postgres.NewProductService(pool)
	remedyService := postgres.NewRemedyService(pool)
	subscriberService := postgres.NewSubscriberService(pool)

	// Blob storage for product and remedy images
	store, err := storage.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// In-memory cart sessions, swept periodically
	cartManager := cart.NewManager(cart.DefaultSessionTTL)
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if removed := cartManager.Sweep(); removed > 0 {
				logger.Info("cart sessions swept", "removed", removed, "live", cartManager.Len())
			}
		}
	}()

	// Category slug resolution for browse URLs
	resolver := category.NewResolver()

	// WhatsApp checkout handoff
	whatsapp := checkout.NewWhatsApp(cfg.WhatsAppNumber, cfg.Email.FromName)

	// Email: SMTP sender plus the newsletter broadcaster
	sender := email.NewSMTPSender(&email.SMTPConfig{
		Host:     cfg.Email.Host,
		Port:     int(cfg.Email.Port),
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
		FromName: cfg.Email.FromName,
	})

	// Load templates with renderer
	logger.Info("Loading templates...")
	renderer, err := handler.NewRenderer("web/templates")
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	emailTemplates, err := handler.LoadEmailTemplates("web/templates")
	if err != nil {
		return fmt.Errorf("failed to load email templates: %w", err)
	}
	logger.Info("Templates loaded successfully")

	newsletter := email.NewNewsletter(sender, subscriberService, cfg.Email.From, cfg.Email.FromName, emailTemplates, logger)

	// Cookies are Secure outside of development
	cookies := cookie.NewConfig(cfg.Env != "dev")

	// ==========================================================================
	// Build route dependencies
	// ==========================================================================

	storefrontDeps := routes.StorefrontDeps{
		HomeHandler:       storefront.NewHomeHandler(productService, remedyService, renderer, logger),
		ProductHandler:    storefront.NewProductHandler(productService, resolver, renderer, logger),
		RemedyHandler:     storefront.NewRemedyHandler(remedyService, renderer, logger),
		CartHandler:       storefront.NewCartHandler(cartManager, productService, remedyService, renderer, cookies, logger),
		CheckoutHandler:   storefront.NewCheckoutHandler(cartManager, whatsapp, logger),
		NewsletterHandler: storefront.NewNewsletterHandler(subscriberService, renderer, logger),
	}

	adminDeps := routes.AdminDeps{
		AdminSecret:       cfg.AdminSecret,
		AuthHandler:       admin.NewAuthHandler(cfg.AdminSecret, renderer, cookies, logger),
		DashboardHandler:  admin.NewDashboardHandler(productService, remedyService, subscriberService, renderer, logger),
		ProductHandler:    admin.NewProductHandler(productService, store, renderer, logger),
		RemedyHandler:     admin.NewRemedyHandler(remedyService, store, renderer, logger),
		SubscriberHandler: admin.NewSubscriberHandler(subscriberService, newsletter, renderer, logger),
	}

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	metrics := middleware.NewMetrics("storefront")

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(middleware.UploadMaxBodySize),
		router.Logger(logger),
	)

	// Static files and locally stored uploads
	r.Static("/static/", "./web/static")
	if cfg.Storage.Provider == "local" || cfg.Storage.Provider == "" {
		r.Static(cfg.Storage.LocalURL+"/", cfg.Storage.LocalPath)
	}

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)
	routes.RegisterAdminRoutes(r, adminDeps)

	// ==========================================================================
	// Start server
	// ==========================================================================

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
