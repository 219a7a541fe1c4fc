// Command seeder inserts demo users, categories and recipes so a fresh
// database has something to browse. Existing rows are left untouched, so it
// is safe to run repeatedly.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        report what would be seeded without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/recipebox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/recipebox-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/recipebox-backend/internal/app"
	"github.com/heartmarshall/recipebox-backend/internal/app/seeder"
	"github.com/heartmarshall/recipebox-backend/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "report what would be seeded without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repos := seeder.Repos{
		Users:      user.New(pool),
		Categories: category.New(pool),
		Recipes:    recipe.New(pool),
	}

	pipeline := seeder.NewPipeline(logger, repos, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
