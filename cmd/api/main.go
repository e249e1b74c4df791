package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sangkips/alinea-erp/internal/application/service"
	"github.com/sangkips/alinea-erp/internal/config"
	"github.com/sangkips/alinea-erp/internal/domain/event"
	"github.com/sangkips/alinea-erp/internal/infrastructure/database"
	"github.com/sangkips/alinea-erp/internal/infrastructure/events"
	"github.com/sangkips/alinea-erp/internal/infrastructure/lock"
	"github.com/sangkips/alinea-erp/internal/infrastructure/repository"
	"github.com/sangkips/alinea-erp/internal/presentation/http/handler"
	"github.com/sangkips/alinea-erp/internal/presentation/http/middleware"
	"github.com/sangkips/alinea-erp/internal/presentation/http/routes"
	"github.com/sangkips/alinea-erp/pkg/logger"
	"github.com/sangkips/alinea-erp/pkg/metrics"
	"github.com/sangkips/alinea-erp/pkg/utils"
	"go.uber.org/zap"
)

type totalsPublisher interface {
	event.Publisher
	Close() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.InitLogger(cfg.App.Env, cfg.App.Debug); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.EnvFile != "" {
		logger.Info("Loaded environment file", zap.String("file", cfg.EnvFile))
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	if cfg.App.SeedCompany != "" {
		company, err := database.SeedCompany(context.Background(), db, cfg.App.SeedCompany)
		if err != nil {
			logger.Warn("Failed to seed company", zap.Error(err))
		} else {
			logger.Info("Company ready", zap.String("company_id", company.ID.String()), zap.String("slug", company.Slug))
		}
	}

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatal("Failed to register metrics", zap.Error(err))
	}

	locker := newLocker(cfg.Redis)
	publisher := newPublisher(cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", zap.Error(err))
		}
	}()

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Initialize repositories
	ackRepo := repository.NewAcknowledgementRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	poRepo := repository.NewPurchaseOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	ackService := service.NewAcknowledgementService(ackRepo, invoiceRepo, productRepo, customerRepo, companyRepo, locker, publisher)
	invoiceService := service.NewInvoiceService(invoiceRepo, ackRepo, companyRepo, locker, publisher)
	poService := service.NewPurchaseOrderService(poRepo, companyRepo, locker, publisher)
	pricingService := service.NewPricingService(productRepo)

	handlers := &routes.Handlers{
		Acknowledgement: handler.NewAcknowledgementHandler(ackService),
		Invoice:         handler.NewInvoiceHandler(invoiceService),
		PurchaseOrder:   handler.NewPurchaseOrderHandler(poService),
		Pricing:         handler.NewPricingHandler(pricingService),
	}

	rateLimiter := middleware.NewCompanyRateLimiter(middleware.RateLimiterConfigFor(cfg.RateLimit.Requests, cfg.RateLimit.Duration))
	defer rateLimiter.Stop()

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeIdempotencyKeys(ctx, idempotencyRepo.DeleteExpired, time.Hour)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", port),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}

// newLocker uses Redis when configured so that several API instances share
// order locks, and an in-process lock otherwise
func newLocker(cfg config.RedisConfig) service.OrderLocker {
	if cfg.Addr == "" {
		logger.Info("Using in-process order locks")
		return lock.NewLocalLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to redis", zap.String("addr", cfg.Addr), zap.Error(err))
	}

	logger.Info("Using redis order locks", zap.String("addr", cfg.Addr))
	return lock.NewRedisLocker(client, cfg.LockTTL, cfg.LockTimeout)
}

func newPublisher(cfg config.KafkaConfig) totalsPublisher {
	if len(cfg.Brokers) == 0 {
		logger.Info("Kafka not configured, totals events are logged only")
		return events.NewLogPublisher()
	}
	logger.Info("Publishing totals events", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.TotalsTopic))
	return events.NewKafkaPublisher(cfg)
}

func purgeIdempotencyKeys(ctx context.Context, deleteExpired func(context.Context) error, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := deleteExpired(ctx); err != nil {
				logger.Warn("Failed to purge idempotency keys", zap.Error(err))
			}
		}
	}
}
