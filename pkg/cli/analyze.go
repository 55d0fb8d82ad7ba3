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

func cmdAnalyze() *cli.Command {
	var id string
	var repoCfg config.Repository
	var analysisCfg config.Analysis

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "id",
			Usage:       "Dream record ID to analyze",
			Required:    true,
			Destination: &id,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, analysisCfg.Flags()...)

	return &cli.Command{
		Name:  "analyze",
		Usage: "Request an interpretation for one journal entry",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if !analysisCfg.Configured() {
				return goerr.New("analysis-api-key is required for the analyze command")
			}
			client, err := analysisCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure analysis client")
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

			uc := usecase.New(repo, usecase.WithAnalysisService(client))
			dream, err := uc.Analyze.AnalyzeDream(ctx, types.DreamID(id))
			if err != nil {
				return goerr.Wrap(err, "failed to analyze dream", goerr.V("id", id))
			}

			title := color.New(color.Bold, color.FgCyan)
			title.Printf("%s\n\n", dream.Title)
			fmt.Println(dream.Analysis.Narrative)
			if len(dream.Analysis.Symbols) > 0 {
				title.Printf("\nSymbols\n")
				for _, s := range dream.Analysis.Symbols {
					fmt.Printf("  - %s\n", s)
				}
			}
			if dream.Analysis.Theme != "" {
				title.Printf("\nTheme\n")
				fmt.Printf("  %s\n", dream.Analysis.Theme)
			}
			if dream.Analysis.SentimentScore != nil {
				title.Printf("\nSentiment\n")
				fmt.Printf("  %.2f\n", *dream.Analysis.SentimentScore)
			}

			return nil
		},
	}
}
