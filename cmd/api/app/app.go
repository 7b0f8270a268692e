package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"rest-user-service/cmd/api/server"
	ginhandler "rest-user-service/internal/adapter/gin/handler"
	"rest-user-service/internal/adapter/gin/middleware"
	ginrouter "rest-user-service/internal/adapter/gin/router"
	"rest-user-service/internal/adapter/repository/memory"
	"rest-user-service/internal/config"
	"rest-user-service/internal/usecase/user"
	"rest-user-service/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App represents the application. Dependencies are constructed here and
// passed down explicitly; nothing is process-global.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server

	redisClient *redis.Client
}

// New creates a new application instance.
func New() (*App, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	l, err := initLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// The store lives for the process lifetime and starts empty.
	repo := memory.NewUserRepoMem(l)
	userUC := user.New(repo, l)
	userHandler := ginhandler.NewUserHandler(userUC, l)

	var redisClient *redis.Client
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr})
		rateLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           true,
		}, l)
	}

	router := ginrouter.SetupRouter(userHandler, rateLimiter, cfg.Auth.Token, l)
	srv := server.NewHTTPServer(router, ":"+cfg.App.HTTPPort, l)

	return &App{
		Config:      cfg,
		Logger:      l,
		HTTP:        srv,
		redisClient: redisClient,
	}, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the server
// fails.
func (a *App) Run(ctx context.Context) error {
	a.Logger.Info("starting application",
		zap.String("service", a.Config.Logger.ServiceName),
		zap.String("version", a.Config.Logger.ServiceVersion),
		zap.String("address", a.HTTP.Addr),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown()
	})

	return g.Wait()
}

// shutdown gracefully stops the server within the configured timeout.
func (a *App) shutdown() error {
	timeout := time.Duration(a.Config.App.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.Logger.Info("shutting down application",
		zap.Int("timeout_seconds", a.Config.App.ShutdownTimeoutSeconds),
	)

	var errs []error

	if err := a.HTTP.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("failed to shutdown HTTP server", zap.Error(err))
		errs = append(errs, fmt.Errorf("HTTP shutdown: %w", err))
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.Logger.Error("failed to close Redis client", zap.Error(err))
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}

	if err := a.Logger.Sync(); err != nil {
		// Sync on stdout/stderr is expected to fail on some platforms
		if err.Error() != "sync /dev/stdout: invalid argument" &&
			err.Error() != "sync /dev/stderr: invalid argument" {
			errs = append(errs, fmt.Errorf("logger sync: %w", err))
		}
	}

	a.Logger.Info("application shutdown complete")

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    getEnvironment(),
	})
}

// getConfigPath returns the configuration path
func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}

// getEnvironment returns the application environment
func getEnvironment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
