package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lifeline-app/lifeline/pkg/cli/config"
	httpctrl "github.com/lifeline-app/lifeline/pkg/controller/http"
	"github.com/lifeline-app/lifeline/pkg/repository/memory"
	"github.com/lifeline-app/lifeline/pkg/service/advisor"
	"github.com/lifeline-app/lifeline/pkg/service/maps"
	"github.com/lifeline-app/lifeline/pkg/service/worker"
	"github.com/lifeline-app/lifeline/pkg/usecase"
	"github.com/lifeline-app/lifeline/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var profilePath string
	var locCfg config.Locator
	var guideCfg config.Guide
	var geminiCfg config.Gemini
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("LIFELINE_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "profile",
			Usage:       "Path to a deployment profile TOML file",
			Sources:     cli.EnvVars("LIFELINE_PROFILE"),
			Destination: &profilePath,
		},
	}

	// Add shared config flags
	flags = append(flags, locCfg.Flags()...)
	flags = append(flags, guideCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(ctx); err != nil {
				return goerr.Wrap(err, "failed to configure error monitoring")
			}
			defer sentryCfg.Flush()

			// Apply deployment profile defaults before building services
			if profilePath != "" {
				profile, err := config.LoadProfile(profilePath)
				if err != nil {
					return goerr.Wrap(err, "failed to load deployment profile")
				}
				locCfg.SetDefaultPosition(profile.Latitude, profile.Longitude)
				logging.From(ctx).Info("Deployment profile loaded",
					"region", profile.Region,
					"emergency_number", profile.EmergencyNumber,
				)
			}

			source, geocoder, err := locCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure location services")
			}

			assets, dataPath := guideCfg.Configure(ctx)

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}

			repo := memory.New()
			defer func() {
				if err := repo.Close(); err != nil {
					logging.From(ctx).Error("failed to close repository", "error", err.Error())
				}
			}()

			ucOpts := []usecase.Option{
				usecase.WithLocationSource(source),
				usecase.WithGeocoder(geocoder),
				usecase.WithMapOpener(maps.New(maps.NewExecLauncher())),
				usecase.WithAssets(assets, dataPath),
			}

			if llmClient != nil {
				adv, err := advisor.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to create advisor service")
				}
				ucOpts = append(ucOpts, usecase.WithAdvisor(adv))
				logging.From(ctx).Info("LLM advisor enabled")
			} else {
				logging.From(ctx).Info("LLM advisor disabled, advice uses static guidance")
			}

			uc := usecase.New(repo, ucOpts...)

			uc.Guide.Init(ctx)

			// Start dataset reload worker for directory-backed stores
			var reloadWorker *worker.GuideReloadWorker
			if guideCfg.ReloadEnabled() {
				reloadWorker = worker.NewGuideReloadWorker(uc.Guide, guideCfg.ReloadInterval())
				if err := reloadWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start guide reload worker")
				}
				defer reloadWorker.Stop()
			}

			handler, err := httpctrl.New(uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.From(ctx).Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.From(ctx).Info("Received shutdown signal", "signal", sig)

				if reloadWorker != nil {
					reloadWorker.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.From(ctx).Info("Server shutdown completed")
				return nil
			}
		},
	}
}
