// Command cleanup physically removes recipes that have sat in the trash
// longer than the configured retention period. It is intended to be invoked
// by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/recipebox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/recipebox-backend/internal/app"
	"github.com/heartmarshall/recipebox-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	recipeRepo := recipe.New(pool)

	threshold := time.Now().Add(-cfg.Recipes.TrashRetention())

	purged, err := recipeRepo.PurgeDeletedBefore(ctx, threshold)
	if err != nil {
		logger.Error("trash purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("trash purge completed",
		slog.Int64("purged", purged),
		slog.Time("threshold", threshold),
	)
}
