package config

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lifeline-app/lifeline/pkg/utils/logging"
)

// Sentry holds CLI flags for error monitoring
type Sentry struct {
	dsn         string
	environment string
}

// Flags returns CLI flags for Sentry configuration
func (s *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN (empty disables error monitoring)",
			Sources:     cli.EnvVars("LIFELINE_SENTRY_DSN"),
			Destination: &s.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment tag",
			Value:       "production",
			Sources:     cli.EnvVars("LIFELINE_SENTRY_ENV"),
			Destination: &s.environment,
		},
	}
}

// Configure initializes the Sentry SDK when a DSN is provided
func (s *Sentry) Configure(ctx context.Context) error {
	if s.dsn == "" {
		logging.From(ctx).Info("Sentry DSN not configured, error monitoring disabled")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              s.dsn,
		Environment:      s.environment,
		AttachStacktrace: true,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to initialize Sentry")
	}

	logging.From(ctx).Info("Sentry error monitoring enabled", "environment", s.environment)
	return nil
}

// Flush drains buffered Sentry events before shutdown
func (s *Sentry) Flush() {
	if s.dsn == "" {
		return
	}
	sentry.Flush(2 * time.Second)
}
