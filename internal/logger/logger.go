package logger

import (
	"go.uber.org/zap"

	"github.com/abhisek/kuku/internal/config"
)

// New builds the application logger. The TUI owns the terminal, so logs only
// go to cfg.LogFile; without one a no-op logger is returned.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}

	return zc.Build()
}
