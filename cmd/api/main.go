package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/config"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/db"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/geo"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/logger"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/metrics"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/repository/postgres"
	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)

	metaSvc := services.NewMetaService(repos.Meta)
	txnSvc := services.NewTransactionService(repos.Transactions, repos.Rankings)
	userSvc := services.NewUserService(repos.Users, repos.Rankings)
	insuranceSvc := services.NewInsuranceService(repos.Insurance)
	rankingSvc := services.NewRankingService(repos.Rankings)
	geoClient := geo.NewClient(cfg.GeoJSONURL, cfg.GeoJSONTimeout, log)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:          cfg,
		MetaSvc:      metaSvc,
		TxnSvc:       txnSvc,
		UserSvc:      userSvc,
		InsuranceSvc: insuranceSvc,
		RankingSvc:   rankingSvc,
		Geo:          geoClient,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
