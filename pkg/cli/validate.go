package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lifeline-app/lifeline/pkg/cli/config"
	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var guideCfg config.Guide
	var profilePath string

	var flags []cli.Flag
	flags = append(flags, guideCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "profile",
		Usage:       "Path to a deployment profile TOML file to validate",
		Sources:     cli.EnvVars("LIFELINE_PROFILE"),
		Destination: &profilePath,
	})

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the guide dataset and optional profile file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			assets, dataPath := guideCfg.Configure(ctx)
			raw, err := assets.LoadString(dataPath)
			if err != nil {
				return goerr.Wrap(err, "failed to load guide dataset")
			}

			conditions, err := model.DecodeGuideDocument([]byte(raw))
			if err != nil {
				return goerr.Wrap(err, "failed to decode guide dataset")
			}

			issues := 0
			seen := make(map[string]bool, len(conditions))
			for i, cond := range conditions {
				if cond.ID == model.DefaultConditionID {
					logger.Warn("record has no id", "index", i, "title", cond.Title)
					issues++
				}
				if cond.Title == model.DefaultConditionTitle {
					logger.Warn("record has no title", "index", i, "id", cond.ID)
					issues++
				}
				if !cond.Severity.IsValid() {
					logger.Warn("record has unrecognized severity",
						"index", i, "id", cond.ID, "severity", cond.Severity.String())
					issues++
				}
				if seen[cond.ID] {
					logger.Warn("duplicate condition id (later record wins)",
						"index", i, "id", cond.ID)
					issues++
				}
				seen[cond.ID] = true
			}

			logger.Info("Guide dataset validated",
				"conditions", len(conditions), "issues", issues)

			if profilePath != "" {
				profile, err := config.LoadProfile(profilePath)
				if err != nil {
					return goerr.Wrap(err, "profile validation failed")
				}
				logger.Info("Profile validated",
					"region", profile.Region,
					"emergency_number", profile.EmergencyNumber,
				)
			}

			if issues > 0 {
				return fmt.Errorf("guide dataset validation found %d issue(s)", issues)
			}
			return nil
		},
	}
}
