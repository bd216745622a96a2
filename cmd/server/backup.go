package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"cv-builder/internal/logger"
	"cv-builder/internal/usecase"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the stored document to a JSON backup file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		path := usecase.BackupFilename
		if len(args) == 1 {
			path = args[0]
		}
		exportBackup(path)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the stored document with a JSON backup file",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		importBackup(args[0])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func exportBackup(path string) {
	ctx := context.Background()
	builder, cleanup, zlog := newCLIBuilder(ctx)
	defer cleanup()

	data, err := builder.ExportBackup(ctx)
	if err != nil {
		zlog.Fatal("exporting backup", zap.Error(err))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		zlog.Fatal("writing backup file", zap.Error(err))
	}
	zlog.Info("backup written", zap.String("path", path))
}

func importBackup(path string) {
	ctx := context.Background()
	builder, cleanup, zlog := newCLIBuilder(ctx)
	defer cleanup()

	raw, err := os.ReadFile(path)
	if err != nil {
		zlog.Fatal("reading backup file", zap.Error(err))
	}
	if _, err := builder.ImportBackup(ctx, raw); err != nil {
		zlog.Fatal("importing backup", zap.Error(err))
	}
	zlog.Info("backup imported", zap.String("path", path))
}

func newCLIBuilder(ctx context.Context) (*usecase.Builder, func(), *zap.Logger) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	store, cleanup, err := newStore(ctx, config, zlog)
	if err != nil {
		zlog.Fatal("connecting storage", zap.Error(err))
	}
	return usecase.NewBuilder(store, zlog), cleanup, zlog
}
