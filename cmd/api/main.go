package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jayantaf631991/debt-dashboard/internal/config"
	"github.com/jayantaf631991/debt-dashboard/internal/handler"
	"github.com/jayantaf631991/debt-dashboard/internal/ledger"
	"github.com/jayantaf631991/debt-dashboard/internal/notify"
	"github.com/jayantaf631991/debt-dashboard/internal/recorder"
	"github.com/jayantaf631991/debt-dashboard/internal/scheduler"
	"github.com/jayantaf631991/debt-dashboard/internal/storage"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Config validation: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Pick the persistence backend
	var store storage.Store
	switch {
	case cfg.Storage.DBConn != "":
		pg, err := storage.NewPostgresStore(cfg.Storage.DBConn)
		if err != nil {
			logger.Fatalf("Failed to connect to postgres: %v", err)
		}
		defer pg.Close()
		store = pg
		logger.Info("using postgres storage")
	case cfg.Storage.RemoteServerURL != "":
		store = storage.NewHTTPStore(cfg.Storage.RemoteServerURL)
		logger.Infof("using remote server storage at %s", cfg.Storage.RemoteServerURL)
	default:
		store = storage.NewFileStore(cfg.Storage.DataDir, logger)
		logger.Infof("using file storage under %s", cfg.Storage.DataDir)
	}

	// Audit recorder, sqlite when configured
	var rec recorder.Recorder
	if cfg.Storage.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Storage.SQLitePath, logger)
		if err != nil {
			logger.Warnf("init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Load state and wire layers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl, err := ledger.NewController(ctx, cfg.Namespace, store, rec, logger)
	if err != nil {
		logger.Fatalf("Failed to load dashboard state: %v", err)
	}
	h := handler.NewHandler(ctrl, store, logger)

	// Backup scheduler, thrice daily
	var sender *notify.Sender
	if cfg.MailEnabled() {
		sender = notify.NewSender(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
		}, logger)
	}
	sched := scheduler.NewScheduler(ctrl, rec, sender, logger, cfg.Namespace, cfg.Storage.BackupDir)
	if err := sched.RegisterAll(cfg.Schedule.BackupCrons); err != nil {
		logger.Fatalf("Failed to register backup jobs: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Setup router
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received, stopping...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown: %v", err)
	}
}
