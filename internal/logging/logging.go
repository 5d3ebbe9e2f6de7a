package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the application logger.
// Production mode emits JSON with ISO8601 timestamps; development mode
// uses the human-readable console encoder.
func NewLogger(isProduction bool) (*zap.Logger, error) {
	if !isProduction {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
