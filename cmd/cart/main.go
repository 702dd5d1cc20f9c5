package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/cart_service/internal/config"
	"github.com/Skotchmaster/cart_service/internal/db"
	"github.com/Skotchmaster/cart_service/internal/httpserver"
	"github.com/Skotchmaster/cart_service/internal/logging"
	loggingmw "github.com/Skotchmaster/cart_service/internal/middleware/logging"
	"github.com/Skotchmaster/cart_service/internal/mykafka"
	"github.com/Skotchmaster/cart_service/internal/repo"
	"github.com/Skotchmaster/cart_service/internal/service"
)

type eventProducer interface {
	service.EventPublisher
	Close() error
}

func newProducer(brokers []string) (eventProducer, error) {
	if len(brokers) == 0 {
		return mykafka.Nop{}, nil
	}
	return mykafka.NewProducer(brokers)
}

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustOneOf(cfg.DBDriver, "DB_DRIVER", db.DriverPostgres, db.DriverSQLite)

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gormDB, err := db.Open(initCtx, cfg.DBDriver, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := repo.AutoMigrate(gormDB); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	prod, err := newProducer(cfg.KafkaBrokers)
	if err != nil {
		log.Fatalf("kafka producer: %v", err)
	}
	if len(cfg.KafkaBrokers) == 0 {
		logger.Warn("KAFKA_BROKERS is empty, cart events are disabled")
	}

	cartService := &service.CartService{
		Repo:      &repo.GormRepo{DB: gormDB},
		Publisher: prod,
		Topic:     cfg.KafkaTopic,
	}

	cartHandler := &httpserver.CartHTTP{Svc: cartService}
	if cfg.LegacyConflictStatus {
		cartHandler.ConflictStatus = http.StatusSeeOther
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CartHandler: cartHandler,
		DB:          gormDB,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("cart listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	if err := db.Close(gormDB); err != nil {
		logger.Error("db close error", "error", err)
	}

	logger.Info("cart stopped")
}
