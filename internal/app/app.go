package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/publisher-backend/internal/adapter/postgres"
	mediarepo "github.com/heartmarshall/publisher-backend/internal/adapter/postgres/media"
	postrepo "github.com/heartmarshall/publisher-backend/internal/adapter/postgres/post"
	pubrepo "github.com/heartmarshall/publisher-backend/internal/adapter/postgres/publication"
	"github.com/heartmarshall/publisher-backend/internal/config"
	"github.com/heartmarshall/publisher-backend/internal/service/media"
	"github.com/heartmarshall/publisher-backend/internal/service/post"
	"github.com/heartmarshall/publisher-backend/internal/service/publication"
	"github.com/heartmarshall/publisher-backend/internal/transport/middleware"
	"github.com/heartmarshall/publisher-backend/internal/transport/rest"
)

// Deps holds the collaborators needed to build the HTTP handler.
type Deps struct {
	Pool   *pgxpool.Pool
	Schema rest.SchemaVersioner
	Logger *slog.Logger
	Clock  func() time.Time
	CORS   config.CORSConfig
	// RequestsPerMinute of zero disables rate limiting.
	RequestsPerMinute int
	Limiter           *middleware.RateLimiter
}

// NewHandler wires repositories, services and REST handlers into a single
// http.Handler wrapped with the middleware chain.
func NewHandler(d Deps) http.Handler {
	mediaSvc := media.NewService(d.Logger, mediarepo.New(d.Pool))
	postSvc := post.NewService(d.Logger, postrepo.New(d.Pool))
	pubSvc := publication.NewService(d.Logger, pubrepo.New(d.Pool), d.Clock)

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(d.Pool, d.Schema, BuildVersion()),
		Media:       rest.NewMediaHandler(mediaSvc, d.Logger),
		Post:        rest.NewPostHandler(postSvc, d.Logger),
		Publication: rest.NewPublicationHandler(pubSvc, d.Logger),
	})

	mws := []middleware.Middleware{
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	}
	if d.Limiter != nil {
		mws = append(mws, d.Limiter.Limit(d.RequestsPerMinute))
	}

	return middleware.Chain(mws...)(router)
}

// Run is the application entry point. It loads configuration, connects to
// the database, optionally applies migrations and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, sqlDB, err := postgres.NewMigrator(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: NewHandler(Deps{
			Pool:              pool,
			Schema:            migrator,
			Logger:            logger,
			Clock:             time.Now,
			CORS:              cfg.CORS,
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Limiter:           limiter,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
