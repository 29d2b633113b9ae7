package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/talenthub/talenthub-cli/internal/api"
	"github.com/talenthub/talenthub-cli/internal/cli"
	"github.com/talenthub/talenthub-cli/internal/config"
	"github.com/talenthub/talenthub-cli/internal/logging"
	"github.com/talenthub/talenthub-cli/internal/repositories/bookmarks"
	"github.com/talenthub/talenthub-cli/internal/repositories/metadata"
	"github.com/talenthub/talenthub-cli/internal/services"
	"github.com/talenthub/talenthub-cli/internal/session"
	"github.com/talenthub/talenthub-cli/internal/storage"
)

func main() {
	// .env is optional; real environment variables take precedence anyway.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	metadataRepo := metadata.NewSQLiteRepository(db)
	bookmarkRepo := bookmarks.NewSQLiteRepository(db)

	var manager *session.Manager
	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, func() string {
		return manager.Token()
	})
	manager = session.NewManager(client, metadataRepo, logger)
	client.SetUnauthorizedHandler(manager.HandleUnauthorized)

	jobService := services.NewJobService(client, bookmarkRepo)

	app := cli.NewApp(manager, client, jobService, logger)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
