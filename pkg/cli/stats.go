package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/cli/config"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
	"github.com/oneirolab/dreamvault/pkg/usecase"
	"github.com/oneirolab/dreamvault/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdStats() *cli.Command {
	var rangeStr string
	var topTags int
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "range",
			Usage:       "Time range for statistics (all, week or month)",
			Value:       "all",
			Destination: &rangeStr,
		},
		&cli.IntFlag{
			Name:        "top-tags",
			Usage:       "Number of tags to show (0 shows all)",
			Value:       10,
			Destination: &topTags,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "stats",
		Usage: "Show journal statistics",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			rng, err := types.ParseTimeRange(rangeStr)
			if err != nil {
				return goerr.Wrap(err, "invalid range")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo)
			summary, err := uc.Dream.Stats(ctx, usecase.QueryOptions{Range: rng}, topTags)
			if err != nil {
				return goerr.Wrap(err, "failed to compute statistics")
			}

			title := color.New(color.Bold, color.FgCyan)
			label := color.New(color.FgHiWhite)

			title.Printf("Dream journal statistics (%s)\n\n", rng)
			label.Printf("  Entries:         %d\n", summary.Count)
			label.Printf("  Recorded days:   %d\n", summary.RecordedDays)
			label.Printf("  Average clarity: %.1f\n", summary.AverageClarity)

			if len(summary.Emotions) > 0 {
				title.Printf("\nEmotions\n")
				for _, e := range summary.Emotions {
					fmt.Printf("  %s  %d\n", e.Label, e.Count)
				}
			}

			if len(summary.Tags) > 0 {
				title.Printf("\nTags\n")
				for _, e := range summary.Tags {
					fmt.Printf("  %-16s %d\n", e.Label, e.Count)
				}
			}

			return nil
		},
	}
}
