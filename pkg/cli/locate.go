package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lifeline-app/lifeline/pkg/cli/config"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
	"github.com/lifeline-app/lifeline/pkg/repository/memory"
	"github.com/lifeline-app/lifeline/pkg/service/maps"
	"github.com/lifeline-app/lifeline/pkg/usecase"
)

func cmdLocate() *cli.Command {
	var openMap bool
	var profilePath string
	var locCfg config.Locator

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "open-map",
			Usage:       "Open the resolved position in an external map application",
			Destination: &openMap,
		},
		&cli.StringFlag{
			Name:        "profile",
			Usage:       "Path to a deployment profile TOML file",
			Sources:     cli.EnvVars("LIFELINE_PROFILE"),
			Destination: &profilePath,
		},
	}
	flags = append(flags, locCfg.Flags()...)

	return &cli.Command{
		Name:  "locate",
		Usage: "Resolve the device location once and print it",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			var profile *config.Profile
			if profilePath != "" {
				p, err := config.LoadProfile(profilePath)
				if err != nil {
					return goerr.Wrap(err, "failed to load deployment profile")
				}
				profile = p
				locCfg.SetDefaultPosition(p.Latitude, p.Longitude)
			}

			source, geocoder, err := locCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure location services")
			}

			uc := usecase.New(memory.New(),
				usecase.WithLocationSource(source),
				usecase.WithGeocoder(geocoder),
				usecase.WithMapOpener(maps.New(maps.NewExecLauncher())),
			)

			result := uc.Location.CurrentLocation(ctx)

			label := color.New(color.FgGreen).Sprint("resolved")
			if result.Outcome != types.OutcomeResolved {
				label = color.New(color.FgRed).Sprint(result.Outcome.String())
			}
			fmt.Printf("[%s] %s\n", label, result.String())

			if profile != nil {
				fmt.Printf("Emergency number (%s): %s\n",
					profile.Region, color.New(color.FgRed, color.Bold).Sprint(profile.EmergencyNumber))
			}

			if openMap {
				if !uc.Location.OpenInMap(ctx) {
					return goerr.New("failed to open location in map")
				}
			}

			return nil
		},
	}
}
