package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/config"
)

// New builds a logger for the configured environment.
// Outside production DPanic panics, so session wiring bugs surface immediately.
func New(cfg *config.Config, name string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)

	if cfg.Env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return l.Named(name).With(zap.String("env", cfg.Env)), nil
}
