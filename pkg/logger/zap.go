package logger

import (
	"go-product-catalog/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger: console encoding with colours in
// development, JSON in every other environment.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsDevelopment() {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Logger.Encoding != "" {
		zc.Encoding = cfg.Logger.Encoding
	}
	zc.DisableCaller = cfg.Logger.DisableCaller
	zc.DisableStacktrace = cfg.Logger.DisableStacktrace

	return zc.Build()
}
