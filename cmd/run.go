package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/kuku/internal/app"
	"github.com/abhisek/kuku/internal/logger"
)

// runApp resolves settings, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, r, gen, err := loadDrill(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting kuku",
		zap.String("version", version),
		zap.Stringer("range", r),
		zap.Bool("chant", cfg.Chant),
		zap.Uint64("seed", gen.Seed()),
	)

	return app.Run(app.Options{
		Range:     r,
		Chant:     cfg.Chant,
		Generator: gen,
		Logger:    log,
	})
}
