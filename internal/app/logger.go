// Package app provides logger initialization.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/guttosm/nutrition-lookup/config"
	"github.com/guttosm/nutrition-lookup/internal/logger"
)

// InitializeLogger initializes the global logger writing to stderr.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}

// InitializeFileLogger points the global logger at cfg.File, appending.
// The terminal client owns stdout and stderr, so its logs go to a file.
func InitializeFileLogger(cfg config.LogConfig) (io.Closer, error) {
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
	}
	logger.InitWithWriter(cfg.Level, cfg.Pretty, f)
	return f, nil
}
