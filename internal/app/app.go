package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/recipebox-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/activity"
	analyticsrepo "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/analytics"
	auditrepo "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/audit"
	categoryrepo "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/category"
	mealplanrepo "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/mealplan"
	reciperepo "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/recipe"
	userrepo "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/recipebox-backend/internal/auth"
	"github.com/heartmarshall/recipebox-backend/internal/config"
	"github.com/heartmarshall/recipebox-backend/internal/metrics"
	"github.com/heartmarshall/recipebox-backend/internal/service/activity"
	"github.com/heartmarshall/recipebox-backend/internal/service/analytics"
	"github.com/heartmarshall/recipebox-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/recipebox-backend/internal/service/auth"
	"github.com/heartmarshall/recipebox-backend/internal/service/bulk"
	"github.com/heartmarshall/recipebox-backend/internal/service/category"
	"github.com/heartmarshall/recipebox-backend/internal/service/recipe"
	"github.com/heartmarshall/recipebox-backend/internal/service/user"
	"github.com/heartmarshall/recipebox-backend/internal/transport/dataloader"
	"github.com/heartmarshall/recipebox-backend/internal/transport/middleware"
	"github.com/heartmarshall/recipebox-backend/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// Run is the application entry point. It wires the database, services and
// HTTP transport, then serves until ctx is cancelled and shuts the server
// down gracefully.
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

	shutdownTracing, err := SetupTracing(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer pool.Close()

	m := metrics.New()
	m.SetBuildInfo(Version)

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           NewHandler(cfg, logger, pool, m, limiter),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app.Run: listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// NewHandler builds repositories, services and handlers on top of pool and
// returns the fully wrapped HTTP handler.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
) http.Handler {
	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	recipes := reciperepo.New(pool)
	categories := categoryrepo.New(pool)

	activityRec := activity.NewRecorder(logger, activityrepo.New(pool), users, m.RecorderFailures("activity"))
	auditRec := audit.NewRecorder(logger, auditrepo.New(pool), m.RecorderFailures("audit"))

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwt, cfg.Auth)
	recipeService := recipe.NewService(logger, recipes, activityRec, auditRec)
	userService := user.NewService(logger, users, mealplanrepo.New(pool), auditRec, cfg.Auth.PasswordHashCost)
	categoryService := category.NewService(logger, categories, recipes, tx, auditRec)
	analyticsService := analytics.NewService(logger, analyticsrepo.New(pool))
	coordinator := bulk.NewCoordinator(logger, recipeService, userService, m.BulkItems(), cfg.Recipes.BulkMaxIDs)

	router := &rest.Router{
		Health:     rest.NewHealthHandler(pool, Version),
		Metrics:    m.Handler(),
		Auth:       rest.NewAuthHandler(authService, logger),
		Recipes:    rest.NewRecipeHandler(recipeService, logger),
		Users:      rest.NewUserHandler(userService, logger),
		Admin:      rest.NewAdminHandler(recipeService, userService, coordinator, logger),
		Categories: rest.NewCategoryHandler(categoryService, logger),
		Analytics:  rest.NewAnalyticsHandler(analyticsService, logger),
		Activity:   rest.NewActivityHandler(activityRec, logger),
		AuthLimit:  limiter.Limit(cfg.RateLimit.AuthRequests, cfg.RateLimit.AuthWindow),
		Loaders:    dataloader.Middleware(users),
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Tracing(otel.GetTracerProvider()),
		m.Instrument,
		middleware.Except(middleware.Logger(logger), "/live", "/ready"),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router.Handler())
}
