package main

import (
	"errors"
	"log"
	"net/http"

	"go.uber.org/zap"

	"parlayPickem/config"
	"parlayPickem/database"
	"parlayPickem/logger"
	"parlayPickem/metrics"
	"parlayPickem/scheduler"
	"parlayPickem/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zlog, err := logger.New("parlay-pickem", cfg.Env)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() {
		_ = zlog.Sync()
	}()

	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}

	cronService := scheduler.SetupCron(db, zlog)
	defer cronService.Stop()

	metricsServer := metrics.StartServer(cfg.MetricsPort, func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	})
	defer func() {
		_ = metricsServer.Close()
	}()

	srv := web.NewServer(cfg, db, zlog)
	zlog.Info("listening",
		zap.String("httpPort", cfg.HTTPPort),
		zap.String("metricsPort", cfg.MetricsPort),
	)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
