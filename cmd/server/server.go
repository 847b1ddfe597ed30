package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	apiv1alpha1 "github.com/KirkDiggler/hunt-ballistics/internal/api/ballistics/v1alpha1"
	"github.com/KirkDiggler/hunt-ballistics/internal/config"
	"github.com/KirkDiggler/hunt-ballistics/internal/engine"
	"github.com/KirkDiggler/hunt-ballistics/internal/handlers/ballistics/v1alpha1"
	"github.com/KirkDiggler/hunt-ballistics/internal/logging"
	"github.com/KirkDiggler/hunt-ballistics/internal/orchestrators/ballistics"
	"github.com/KirkDiggler/hunt-ballistics/internal/pkg/clock"
	"github.com/KirkDiggler/hunt-ballistics/internal/redis"
	"github.com/KirkDiggler/hunt-ballistics/internal/repositories/lethality"
	"github.com/KirkDiggler/hunt-ballistics/internal/repositories/weapons"
)

const (
	shutdownTimeout  = 30 * time.Second
	redisPingTimeout = 3 * time.Second
)

var (
	configDir string
	v         = viper.New()
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the ballistics gRPC server. Settings come from flags, HUNT_BALLISTICS_* variables and hunt-ballistics.yaml.`,
	RunE:  runServer,
}

func init() {
	flags := serverCmd.Flags()
	flags.StringVar(&configDir, "config-dir", ".", "Directory containing hunt-ballistics.yaml")
	flags.Int("port", 50051, "gRPC server port")
	flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.Bool("log-pretty", false, "Human readable console logs")
	flags.String("catalog", "", "Weapon catalog YAML file, empty for the embedded catalog")

	_ = v.BindPFlag(config.KeyServerPort, flags.Lookup("port"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogPretty, flags.Lookup("log-pretty"))
	_ = v.BindPFlag(config.KeyCatalogPath, flags.Lookup("catalog"))
}

// app holds the wired server and whatever must be released on shutdown
type app struct {
	server  *grpc.Server
	health  *health.Server
	closers []func() error
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c() // nolint:errcheck // best effort on shutdown
	}
}

func newApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app, error) {
	a := &app{}

	weaponRepo, err := weapons.NewInMemory(&weapons.Config{Path: cfg.Catalog.Path})
	if err != nil {
		return nil, fmt.Errorf("failed to load weapon catalog: %w", err)
	}

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	var cache lethality.Repository
	if cfg.Cache.Enabled {
		cache, err = a.connectCache(ctx, cfg, logger)
		if err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("lethality cache disabled")
			cache = nil
		} else {
			purgeStaleEntries(ctx, weaponRepo, cache, logger)
		}
	}

	service, err := ballistics.NewOrchestrator(&ballistics.Config{
		Engine:         eng,
		WeaponRepo:     weaponRepo,
		LethalityCache: cache,
		CacheTTL:       cfg.Cache.TTL,
		Logger:         &logger,
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create ballistics service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{BallisticsService: service})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create handler: %w", err)
	}

	interceptorLogger := logging.InterceptorLogger(logger)
	a.server = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	apiv1alpha1.RegisterBallisticsServiceServer(a.server, handler)

	a.health = health.NewServer()
	grpc_health_v1.RegisterHealthServer(a.server, a.health)
	a.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	a.health.SetServingStatus(apiv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return a, nil
}

func (a *app) connectCache(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (lethality.Repository, error) {
	client, err := redis.Connect(strings.Split(cfg.Cache.RedisAddr, ","), &redis.Options{
		DialTimeout: redisPingTimeout,
	})
	if err != nil {
		return nil, err
	}

	if err := redis.Ping(ctx, client, redisPingTimeout); err != nil {
		_ = client.Close() // nolint:errcheck // the ping error is the one worth reporting
		return nil, err
	}

	repo, err := lethality.NewRedisRepository(&lethality.Config{
		Client: client,
		Clock:  clock.New(),
		TTL:    cfg.Cache.TTL,
	})
	if err != nil {
		_ = client.Close() // nolint:errcheck // the config error is the one worth reporting
		return nil, err
	}

	a.closers = append(a.closers, client.Close)
	logger.Info().Str("addr", cfg.Cache.RedisAddr).Dur("ttl", cfg.Cache.TTL).Msg("lethality cache enabled")
	return repo, nil
}

// purgeStaleEntries drops results cached for earlier catalogs. Failures only
// leave garbage behind until the TTL expires.
func purgeStaleEntries(ctx context.Context, repo weapons.Repository, cache lethality.Repository, logger zerolog.Logger) {
	listed, err := repo.List(ctx, &weapons.ListInput{})
	if err != nil {
		logger.Warn().Err(err).Msg("could not read catalog version")
		return
	}

	purged, err := cache.PurgeStale(ctx, lethality.PurgeStaleInput{KeepVersion: listed.Version})
	if err != nil {
		logger.Warn().Err(err).Msg("stale lethality purge failed")
		return
	}

	logger.Info().
		Str("catalog_version", listed.Version).
		Int("scanned", purged.Scanned).
		Int("deleted", purged.Deleted).
		Msg("purged stale lethality entries")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(v, configDir)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Pretty)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("gRPC server starting")
		if err := a.server.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down gRPC server")
		a.health.Shutdown()

		stopped := make(chan struct{})
		go func() {
			a.server.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(shutdownTimeout):
			logger.Warn().Msg("graceful shutdown timeout exceeded, forcing stop")
			a.server.Stop()
		case <-stopped:
			logger.Info().Msg("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}
