package commands

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/beesaferoot/estate-catalog/internal/config"
	"github.com/beesaferoot/estate-catalog/internal/httpapi"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			zapCfg := zap.NewProductionConfig()
			if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
				zapCfg.Level = zap.NewAtomicLevelAt(lvl)
			}
			logger, err := zapCfg.Build()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := getDB()
			if err != nil {
				return err
			}

			router := httpapi.NewRouter(newService(db), logger)
			logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
			return http.ListenAndServe(cfg.HTTPAddr, router)
		},
	}
}
