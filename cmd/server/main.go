package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glass_office/internal/config"
	"glass_office/internal/database"
	"glass_office/internal/handlers"
	"glass_office/internal/logger"
	"glass_office/internal/migrations"
	"glass_office/internal/printing"
	"glass_office/internal/redis"
	"glass_office/internal/repository"
	"glass_office/internal/services"
	"glass_office/internal/store"
	"glass_office/pkg/email"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer func() { _ = log.Sync() }()

	// Initialize document store
	docs, pinger, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to open document store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer closeStore()

	// Initialize email client
	notifyTimeout := time.Duration(cfg.NotifyTimeout) * time.Second
	emailClient, err := email.NewClient(email.Config{
		APIKey:      cfg.ResendAPIKey,
		FromAddress: cfg.ResidentialEmailFrom,
		BaseURL:     cfg.ResendBaseURL,
		Timeout:     notifyTimeout,
	})
	if err != nil {
		log.Fatal("Failed to create email client", zap.Error(err))
	}
	if !emailClient.IsEnabled() {
		log.Warn("Technician email notifications disabled; set RESEND_API_KEY and RESIDENTIAL_EMAIL_FROM")
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(docs)
	seqRepo := repository.NewSequenceRepository(docs)
	poRepo := repository.NewPurchaseOrderRepository(docs)
	invoiceRepo := repository.NewInvoiceRepository(docs)
	quoteRepo := repository.NewQuoteRepository(docs)
	customerRepo := repository.NewCustomerRepository(docs)
	vendorRepo := repository.NewVendorRepository(docs)
	techRepo := repository.NewTechnicianRepository(docs, store.Technicians)
	serviceTechRepo := repository.NewTechnicianRepository(docs, store.ServiceTechs)
	residentialRepo := repository.NewResidentialRequestRepository(docs)
	serviceRequestRepo := repository.NewServiceRequestRepository(docs)

	// Initialize services
	var clock services.Clock
	renderer := printing.NewRenderer()
	notifier := services.NewNotifier(emailClient, notifyTimeout, log, clock)

	orderService := services.NewOrderService(orderRepo, seqRepo, renderer, log, clock)
	poService := services.NewPurchaseOrderService(poRepo, orderRepo, renderer, log, clock)
	invoiceService := services.NewInvoiceService(invoiceRepo, orderRepo, seqRepo, log, clock)
	residentialService := services.NewResidentialRequestService(residentialRepo, serviceTechRepo, seqRepo, notifier, log, clock)
	serviceRequestService := services.NewServiceRequestService(serviceRequestRepo, techRepo, notifier, log, clock)
	customerService := services.NewCustomerService(customerRepo, log, clock)
	vendorService := services.NewVendorService(vendorRepo, log, clock)
	quoteService := services.NewQuoteService(quoteRepo, clock)

	// Setup routes
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(log), handlers.CORS(cfg.AllowedOrigins))

	handlers.RegisterRoutes(router, handlers.Handlers{
		API:            handlers.NewAPIHandler(cfg.StoreBackend, pinger, log),
		Orders:         handlers.NewOrderHandler(orderService, invoiceService, log),
		PurchaseOrders: handlers.NewPurchaseOrderHandler(poService, log),
		Requests:       handlers.NewRequestHandler(residentialService, serviceRequestService, log),
		Directory:      handlers.NewDirectoryHandler(customerService, vendorService, quoteService, log),
		Technicians:    handlers.NewTechnicianHandler(services.NewTechnicianService(techRepo, clock), log),
		ServiceTechs:   handlers.NewTechnicianHandler(services.NewTechnicianService(serviceTechRepo, clock), log),
	})

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("port", cfg.ServerPort), zap.String("backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
}

// openStore connects the configured backend. The returned pinger is nil for the
// in-memory store.
func openStore(cfg *config.Config, log *zap.Logger) (store.DocumentStore, handlers.Pinger, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := migrations.RunMigrations(db, log); err != nil {
			return nil, nil, nil, err
		}
		docs := database.NewDocumentStore(db)
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return docs, docs, closeFn, nil

	case config.BackendMemory:
		log.Warn("Using in-memory document store; data is lost on restart")
		return store.NewMemoryStore(), nil, func() {}, nil

	case config.BackendRedis:
		client, err := redis.Initialize(cfg.RedisURL, cfg.RedisKeyPrefix)
		if err != nil {
			return nil, nil, nil, err
		}
		return client, client, func() { _ = client.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}
