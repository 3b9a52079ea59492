package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/avetrov/habits-server/internal/api/http/handler"
	"github.com/avetrov/habits-server/internal/api/http/router"
	httpServer "github.com/avetrov/habits-server/internal/api/http/server"
	"github.com/avetrov/habits-server/internal/config"
	"github.com/avetrov/habits-server/internal/logger"
	"github.com/avetrov/habits-server/internal/model"
	"github.com/avetrov/habits-server/internal/repository/mongodb"
	"github.com/avetrov/habits-server/internal/server"
	"github.com/avetrov/habits-server/internal/service"
	"github.com/avetrov/habits-server/internal/web"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := mongodb.NewConnection(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Error("failed to close storage connection", "error", err)
		}
	}()

	habitRepo := mongodb.NewHabitRepository(db)
	completionRepo := mongodb.NewCompletionRepository(db)

	tracker := service.NewTracker(habitRepo, completionRepo, logger)

	templates, err := web.New()
	if err != nil {
		logger.Fatal("failed to load templates", "error", err)
	}

	habitHandler := handler.NewHabit(tracker, templates, logger)
	healthHandler := handler.NewHealth(db)

	r := router.New(habitHandler, healthHandler, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
