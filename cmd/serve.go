package main

import (
	"context"
	"domainchecker/internal/api"
	"domainchecker/internal/api/handler/v1handler"
	"domainchecker/internal/checker"
	"domainchecker/internal/config"
	"domainchecker/internal/worker"
	"domainchecker/pkg/logger"
	"domainchecker/pkg/tracing"
	"domainchecker/pkg/whois/netwhois"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func newWhoisClient(cfg *config.Config) *netwhois.Client {
	return netwhois.New(netwhois.Options{
		Timeout: cfg.Whois.Timeout,
		Servers: cfg.Whois.Servers,
	})
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			shutdownTracing := tracing.Setup(logger.Get(ctx), tracing.Options{SampleRatio: cfg.Tracing.SampleRatio})

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			chkr := checker.New(strg, newWhoisClient(cfg), checker.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, chkr, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:   v1handler.Deps{Checker: chkr},
				Health: strg.Pool.Ping,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop background workers", zap.Error(err))
			}
			if err := shutdownTracing(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop tracing", zap.Error(err))
			}
		},
	}

	return cmd
}
