package utils

import (
	"log"
	"sync"

	"bookingsite/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger, built on first use from AppConfig.
var (
	Logger     *zap.Logger
	loggerOnce sync.Once
)

// NewLogger builds a JSON production logger when production is set and a
// colored development logger otherwise. A parsable level overrides the default
// (info in production, debug elsewhere).
func NewLogger(production bool, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if level != "" {
		if lvl, err := zapcore.ParseLevel(level); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}
	return cfg.Build(zap.Fields(zap.String("service", "bookingsite")))
}

// InitializeLogger builds Logger from AppConfig and installs it as zap's global.
func InitializeLogger() {
	logger, err := NewLogger(config.IsProduction(), config.AppConfig.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = logger
	zap.ReplaceGlobals(Logger)
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		if Logger == nil {
			InitializeLogger()
		}
	})
	return Logger
}
