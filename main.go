package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"teashop/internal/catalog"
	"teashop/internal/config"
	"teashop/internal/rng"
	"teashop/internal/server"
	"teashop/internal/sim"
	"teashop/internal/telemetry"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			logger.Error("load catalog", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
	}

	bal, err := config.LoadBalance(cfg.Difficulty, cfg.BalancePath)
	if err != nil {
		logger.Error("load balance", "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := sim.NewEngine(cat, bal, rng.New(seed), logger)
	repo := telemetry.NewMemoryRepository()
	engine.Telemetry = repo

	srv := server.New(engine, server.NewSession(engine.NewGame()), repo, logger)

	logger.Info("teashop listening",
		"addr", cfg.Addr,
		"difficulty", cfg.Difficulty,
		"seed", seed,
	)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
