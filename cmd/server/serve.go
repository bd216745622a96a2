package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	httpadapter "cv-builder/internal/adapter/http"
	"cv-builder/internal/adapter/repository"
	"cv-builder/internal/infrastructure/migration"
	"cv-builder/internal/logger"
	"cv-builder/internal/render"
	"cv-builder/internal/usecase"
	"cv-builder/pkg/infrastructure"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the editor and public résumé server",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address (default :8080)")
	serveCmd.Flags().StringP("storage", "s", "", "storage backend: redis or postgres")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("storage", serveCmd.Flags().Lookup("storage"))
}

func serve() {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer zlog.Sync()

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	store, cleanup, err := newStore(ctx, config, zlog)
	if err != nil {
		zlog.Fatal("connecting storage", zap.Error(err))
	}
	defer cleanup()

	builder := usecase.NewBuilder(store, zlog)
	projector := render.NewProjector(config.Templates)
	exporter := usecase.NewPDFExporter(
		builder,
		projector,
		infrastructure.NewChromedpRenderer(),
		usecase.NewArtifactStore(),
		zlog,
	)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httpadapter.NewHandler(builder, projector, exporter, config.Templates, zlog).RegisterRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zlog.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			zlog.Error("shutdown", zap.Error(err))
		}
	}()

	zlog.Info("starting the cv-builder server",
		zap.String("listen", config.Listen),
		zap.String("storage", config.Storage),
		zap.String("version", version),
	)
	if err := app.Listen(config.Listen); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// newStore builds the configured storage backend and its cleanup func.
func newStore(ctx context.Context, config *Config, zlog *zap.Logger) (repository.Store, func(), error) {
	switch config.Storage {
	case "redis":
		client, err := infrastructure.NewRedisClient(ctx, config.Redis.Addr, config.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisStore(client), func() { client.Close() }, nil
	case "postgres":
		pool, err := infrastructure.NewDocumentsPool(ctx, config.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := migration.Run(ctx, pool, zlog); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repository.NewPostgresStore(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", config.Storage)
	}
}
