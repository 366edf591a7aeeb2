package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/soneium-tools/token-faucet/internal/chain"
	"github.com/soneium-tools/token-faucet/internal/claim"
	"github.com/soneium-tools/token-faucet/internal/config"
	faucethttp "github.com/soneium-tools/token-faucet/internal/http"
	"github.com/soneium-tools/token-faucet/internal/logger"
	"github.com/soneium-tools/token-faucet/internal/metrics"
	"github.com/soneium-tools/token-faucet/internal/networks"
	"github.com/soneium-tools/token-faucet/internal/status"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	// Local deployments keep secrets in .env.local; absence is fine.
	_ = godotenv.Load(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("token-faucet",
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)

	registry, err := networks.NewRegistry(cfg.Overrides())
	if err != nil {
		logger.Fatal("failed to build network registry", "error", err)
	}
	for _, n := range registry.ListUsable() {
		logger.Info("network configured", "network", n.ID, "chain_id", n.ChainID)
	}
	if !cfg.HasOperatorKey() {
		logger.Warn("no operator key configured, running read-only")
	}

	clients, err := chain.NewClientRegistry(cfg)
	if err != nil {
		logger.Fatal("failed to build client registry", "error", err)
	}
	defer clients.Close()

	m := metrics.New()
	claimService := claim.NewService(registry, clients)
	statusService := status.NewService(registry, clients)
	handler := faucethttp.NewServer(registry, claimService, statusService, m)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler,
	}

	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	} else {
		logger.Info("HTTP server gracefully stopped")
	}
}
