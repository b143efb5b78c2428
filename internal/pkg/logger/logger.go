// Package logger builds the zap logger shared by the HTTP layer, the unit of work
// and background jobs.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New returns a production logger for mode "prod" or "production" and a
// development logger otherwise.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}
