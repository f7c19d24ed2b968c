package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/pension-gap/internal/cache"
	"github.com/rpgo/pension-gap/internal/calculation"
	"github.com/rpgo/pension-gap/internal/config"
	"github.com/rpgo/pension-gap/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve projections over HTTP",
	Long: `serve starts the HTTP API (POST /v1/projection). Settings come from the
environment, optionally loaded from a .env file:

  PENSIONGAP_ADDR        listen address (default :8080)
  PENSIONGAP_REDIS_ADDR  Redis address; unset keeps results in memory
  PENSIONGAP_REDIS_DB    Redis database number
  PENSIONGAP_CACHE_TTL   cache entry lifetime, e.g. 24h`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides PENSIONGAP_ADDR)")
	serveCmd.Flags().String("env-file", ".env", "environment file to load if present")
	serveCmd.Flags().BoolP("verbose", "v", false, "log debug output")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	addr, _ := cmd.Flags().GetString("addr")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := config.LoadServerSettings(envFile)
	if err != nil {
		return err
	}
	if addr != "" {
		settings.Addr = addr
	}

	logger := newStdLogger(cmd.ErrOrStderr(), verbose)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, settings, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logger)
	cached, err := cache.NewCachedEngine(engine, repo)
	if err != nil {
		return err
	}

	srv := server.New(cached, server.WithClock(nowFunc), server.WithLogger(logger))
	logger.Infof("listening on %s", settings.Addr)
	return srv.ListenAndServe(ctx, settings.Addr)
}

func openRepository(ctx context.Context, s config.ServerSettings, logger calculation.Logger) (cache.Repository, func(), error) {
	if s.RedisAddr == "" {
		logger.Infof("using in-memory result cache")
		return cache.NewMemoryCache(), func() {}, nil
	}
	rc := cache.NewRedisCache(s.RedisAddr, s.RedisDB, s.CacheTTL)
	if err := rc.Ping(ctx); err != nil {
		_ = rc.Close()
		return nil, nil, fmt.Errorf("redis %s unreachable: %w", s.RedisAddr, err)
	}
	logger.Infof("using redis result cache at %s (db %d, ttl %s)", s.RedisAddr, s.RedisDB, s.CacheTTL)
	return rc, func() { _ = rc.Close() }, nil
}
