package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lifeline-app/lifeline/pkg/cli/config"
	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
	"github.com/lifeline-app/lifeline/pkg/repository/memory"
	"github.com/lifeline-app/lifeline/pkg/usecase"
)

func cmdGuide() *cli.Command {
	var guideCfg config.Guide
	var severityFilter string

	buildGuide := func(ctx context.Context) *usecase.UseCases {
		assets, dataPath := guideCfg.Configure(ctx)
		uc := usecase.New(memory.New(), usecase.WithAssets(assets, dataPath))
		uc.Guide.Init(ctx)
		return uc
	}

	return &cli.Command{
		Name:  "guide",
		Usage: "Query the emergency first-aid guide",
		Flags: guideCfg.Flags(),
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List emergency conditions",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "severity",
						Usage:       "Filter by severity (high, medium, low)",
						Destination: &severityFilter,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					uc := buildGuide(ctx)

					var conds []*model.EmergencyCondition
					var err error
					if severityFilter != "" {
						conds, err = uc.Guide.ListBySeverity(ctx, types.Severity(severityFilter))
					} else {
						conds, err = uc.Guide.ListConditions(ctx)
					}
					if err != nil {
						return goerr.Wrap(err, "failed to list conditions")
					}

					for _, cond := range conds {
						printConditionLine(cond)
					}
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Show one emergency condition in full",
				ArgsUsage: "<condition-id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return goerr.New("exactly one condition id is required")
					}
					uc := buildGuide(ctx)

					cond, err := uc.Guide.GetCondition(ctx, c.Args().First())
					if err != nil {
						return goerr.Wrap(err, "condition not found", goerr.V("id", c.Args().First()))
					}

					printCondition(cond)
					return nil
				},
			},
			{
				Name:      "search",
				Usage:     "Search conditions by title, description or symptom",
				ArgsUsage: "<query>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() == 0 {
						return goerr.New("a search query is required")
					}
					uc := buildGuide(ctx)

					conds, err := uc.Guide.Search(ctx, strings.Join(c.Args().Slice(), " "))
					if err != nil {
						return goerr.Wrap(err, "search failed")
					}

					if len(conds) == 0 {
						fmt.Println("no matching conditions")
						return nil
					}
					for _, cond := range conds {
						printConditionLine(cond)
					}
					return nil
				},
			},
		},
	}
}

func severityColor(severity types.Severity) *color.Color {
	switch severity.Normalize() {
	case types.SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case types.SeverityMedium:
		return color.New(color.FgYellow)
	case types.SeverityLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func printConditionLine(cond *model.EmergencyCondition) {
	fmt.Printf("%-20s %-10s %s\n",
		cond.ID,
		severityColor(cond.Severity).Sprint(cond.Severity.String()),
		cond.Title,
	)
}

func printCondition(cond *model.EmergencyCondition) {
	info := model.SeverityInfoFor(cond.Severity)

	fmt.Printf("%s (%s)\n", color.New(color.Bold).Sprint(cond.Title), cond.ID)
	fmt.Printf("Severity: %s - %s\n",
		severityColor(cond.Severity).Sprint(cond.Severity.String()), info.Description)
	fmt.Printf("\n%s\n", cond.Description)

	printList("Symptoms", cond.Symptoms, color.New(color.FgWhite))
	printList("Do", cond.Dos, color.New(color.FgGreen))
	printList("Don't", cond.Donts, color.New(color.FgRed))
	printList("Urgent actions", cond.UrgentActions, color.New(color.FgRed, color.Bold))

	if len(cond.AssessmentQuestions) > 0 {
		fmt.Println("\nAssessment questions:")
		for _, q := range cond.AssessmentQuestions {
			if question, ok := q["question"].(string); ok {
				fmt.Printf("  - %s\n", question)
			}
		}
	}
}

func printList(title string, items []string, c *color.Color) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", c.Sprint(item))
	}
}
