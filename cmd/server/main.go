package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vendora/internal/board"
	"vendora/internal/catalog"
	"vendora/internal/commons"
	"vendora/internal/config"
	"vendora/internal/infrastructure/logger"
	"vendora/internal/infrastructure/mysql"
	"vendora/internal/server"
	"vendora/internal/shop"
	"vendora/internal/user"
	"vendora/internal/withdrawal"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if err := mysql.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("migrating database", zap.Error(err))
	}

	boardCtrl, boardSvc := board.NewModule(cfg.Orders, zapLogger)
	catalogCtrl := catalog.NewModule(db, zapLogger)
	shopCtrl := shop.NewModule(db, zapLogger)
	withdrawalCtrl := withdrawal.NewModule(db, zapLogger)
	userCtrl := user.NewModule(db, zapLogger)

	router := server.NewRouter(boardCtrl, catalogCtrl, shopCtrl, withdrawalCtrl, userCtrl, zapLogger)
	srv := server.New(cfg.Server, router, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start()
	})
	g.Go(func() error {
		return boardSvc.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zapLogger.Fatal("server error", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
