// Package app assembles and runs the booking service.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/santiagoprado21/southpark-reservas/internal/auth"
	"github.com/santiagoprado21/southpark-reservas/internal/availability"
	"github.com/santiagoprado21/southpark-reservas/internal/cache"
	"github.com/santiagoprado21/southpark-reservas/internal/config"
	"github.com/santiagoprado21/southpark-reservas/internal/handler"
	"github.com/santiagoprado21/southpark-reservas/internal/middleware"
	"github.com/santiagoprado21/southpark-reservas/internal/pricing"
	"github.com/santiagoprado21/southpark-reservas/internal/repository"
	"github.com/santiagoprado21/southpark-reservas/internal/router"
	"github.com/santiagoprado21/southpark-reservas/internal/service"
	"github.com/santiagoprado21/southpark-reservas/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"southpark-reservas",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initScheduleCache() ports.ScheduleCache {
	if a.cfg.Redis.Addr == "" {
		a.log.Info("redis disabled, availability cache is a no-op")
		return cache.Noop{}
	}

	a.redis = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))

	return cache.NewScheduleCache(a.redis, a.cfg.Redis.CacheTTL, a.log)
}

func (a *App) initServices() error {
	courtRepo := repository.NewCourtRepo(a.db)
	reservationRepo := repository.NewReservationRepo(a.db)
	blockRepo := repository.NewBlockRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	scheduleCache := a.initScheduleCache()

	availabilityService := availability.NewService(courtRepo, reservationRepo, blockRepo, scheduleCache)
	calculator := pricing.NewCalculator(pricing.Config{
		DepositPercent: a.cfg.Booking.DepositPercent,
	})

	courtService := service.NewCourtService(courtRepo, scheduleCache)
	reservationService := service.NewReservationService(
		reservationRepo, courtRepo, availabilityService, calculator, scheduleCache, a.log,
	)
	blockService := service.NewBlockService(blockRepo, courtRepo, scheduleCache, a.log)

	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	userService := service.NewUserService(userRepo, tokens)

	middleware.RegisterMetrics()

	h := handler.NewHandler(
		courtService, availabilityService, reservationService, blockService, userService, a.log,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Authenticate(tokens),
		middleware.RequireAdmin(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Metrics(),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
