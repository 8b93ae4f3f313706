package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acaimanager/internal/config"
	"acaimanager/internal/infra"
	"acaimanager/internal/repository"
	"acaimanager/internal/router"
	"acaimanager/internal/service"
	"acaimanager/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Background plumbing: the BRPOP worker pool for report mailing and
	// recurring-expense generation, plus the hourly cron that feeds the
	// latter. Wired here at the composition root so the workers reach the
	// services through their narrow interfaces.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	usuarioRepo := repository.NewUsuarioRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	despesaRepo := repository.NewDespesaRepository(db)
	fechamentoRepo := repository.NewFechamentoRepository(db)
	configRepo := repository.NewConfiguracaoRepository(db)

	dashboardSvc := service.NewDashboardService(vendaRepo, despesaRepo, fechamentoRepo, configRepo, rdb)
	despesaSvc := service.NewDespesaService(despesaRepo, dashboardSvc)
	fechamentoSvc := service.NewFechamentoService(fechamentoRepo, vendaRepo, despesaRepo, configRepo, dispatcher)

	relatorioW := worker.NewRelatorioWorker(fechamentoSvc, mailer, rdb, cfg.PDFStoragePath)
	despesasW := worker.NewDespesasWorker(despesaSvc)
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, map[string]worker.Handler{
		"relatorio":            relatorioW.Process,
		"despesas_recorrentes": despesasW.Process,
	})
	worker.StartRecorrentesCron(ctx, worker.RecorrentesCronConfig{
		UsuarioRepo: usuarioRepo,
		Dispatcher:  dispatcher,
	})

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("acaimanager backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
