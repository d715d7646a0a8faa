package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"servija-api/config"
	"servija-api/internal/application/ports"
	"servija-api/internal/application/services"
	"servija-api/internal/infrastructure/cache"
	"servija-api/internal/infrastructure/db/postgres"
	categoryDB "servija-api/internal/infrastructure/db/postgres/category"
	providerDB "servija-api/internal/infrastructure/db/postgres/provider"
	requestDB "servija-api/internal/infrastructure/db/postgres/request"
	userDB "servija-api/internal/infrastructure/db/postgres/user"
	"servija-api/internal/infrastructure/jwt"
	"servija-api/internal/infrastructure/metrics"
	"servija-api/internal/infrastructure/mq"
	"servija-api/internal/interface/api/rest"
	"servija-api/internal/interface/api/rest/middleware"
	"servija-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	rdb        *redis.Client
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

// LoadConfig reads an optional .env file and the environment.
func LoadConfig() (config.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, fmt.Errorf("error loading .env file: %w", err)
	}
	return config.Load(), nil
}

// NewLogger builds a development logger for SERVICE_ENV=dev and a
// production logger otherwise.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func NewApp(ctx context.Context) (*App, error) {
	// config
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// logger
	logger, err := NewLogger(cfg)
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	if cfg.App.JWTSecret == "" {
		logger.Fatal("SERVICE_JWT_SECRET is required")
	}

	// metrics
	mCounter := metrics.NewCounter(prometheus.DefaultRegisterer)

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.HTTP.CORSOrigins))
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if _, err = postgres.Migrate(ctx, dbPool, logger); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// redis
	rdb, err := cache.NewClient(ctx, logger, cfg)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}
	// rmqConsumer writes the audit trail through the logger
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, zap.NewStdLog(logger.Named("audit")).Writer())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = rmqConsumer.Init(); err != nil {
		logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}

	return &App{
		logger:     logger,
		cfg:        cfg,
		db:         dbPool,
		rdb:        rdb,
		httpSrv:    httpSrv,
		router:     r,
		mCounter:   mCounter,
		mq:         rbMQ,
		mqConsumer: rmqConsumer,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

// InitControllers wires repositories, services and controllers. ctx bounds
// background work owned by middleware.
func (a *App) InitControllers(ctx context.Context) {
	// repos
	userRepo := userDB.NewRepository(a.db)
	providerRepo := providerDB.NewRepository(a.db)
	categoryRepo := categoryDB.NewRepository(a.db)
	requestRepo := requestDB.NewRepository(a.db)
	txManager := postgres.NewTxManager(a.db)

	// category name cache; a nil client must stay an untyped nil
	var rdb cache.Redis
	if a.rdb != nil {
		rdb = a.rdb
	}
	categoryNames := cache.NewCategoryNames(rdb, a.cfg.Redis.TTL, a.logger)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret, a.cfg.App.JWTTTL)
	propagator := services.NewPropagator(providerRepo, requestRepo, a.logger, a.mCounter)
	reconciler := services.NewReconciler(providerRepo, a.logger, a.mCounter)
	authService := services.NewAuthService(txManager, userRepo, jwtService, propagator, a.mq, a.logger, a.mCounter)
	categoryService := services.NewCategoryService(txManager, categoryRepo, providerRepo, categoryNames, a.logger, a.mCounter)
	profileService := services.NewProfileService(
		txManager, userRepo, providerRepo, categoryService, reconciler, propagator, a.mq, a.logger, a.mCounter,
	)
	userService := services.NewUserService(txManager, userRepo, providerRepo, a.mq, a.logger, a.mCounter)
	providerService := services.NewProviderService(txManager, providerRepo, userRepo, a.mq, a.logger, a.mCounter)
	requestService := services.NewRequestService(requestRepo, providerRepo, a.logger, a.mCounter)

	// controllers
	guard := rest.NewGuard(jwtService, authService, a.logger)
	limiter := middleware.RateLimiter(ctx, a.cfg.HTTP.RateLimitRPS, a.cfg.HTTP.RateLimitBurst, a.mCounter)
	rest.NewAuthController(a.router, a.logger, authService, guard, limiter)
	rest.NewProfileController(a.router, profileService, a.logger, guard)
	rest.NewUserController(a.router, userService, a.logger, guard)
	rest.NewCategoryController(a.router, categoryService, a.logger, guard)
	rest.NewProviderController(a.router, providerService, a.logger, guard)
	rest.NewRequestController(a.router, requestService, a.logger, guard)

	// ops
	a.router.GET(rest.RouteHealth, a.healthHandler)
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := a.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "db": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *App) Logger() *zap.Logger { return a.logger }
