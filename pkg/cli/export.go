package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/cli/config"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/usecase"
	"github.com/oneirolab/dreamvault/pkg/utils/logging"
	"github.com/oneirolab/dreamvault/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var output string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (stdout when empty)",
			Destination: &output,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export the journal as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
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
			dreams, err := uc.Dream.ListDreams(ctx, usecase.QueryOptions{})
			if err != nil {
				return goerr.Wrap(err, "failed to list dreams")
			}

			data, err := model.EncodeJournal(dreams)
			if err != nil {
				return err
			}

			if output == "" {
				safe.Write(ctx, os.Stdout, append(data, '\n'))
				return nil
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write journal", goerr.V("path", output))
			}
			logging.Default().Info("Journal exported", "path", output, "entries", len(dreams))
			return nil
		},
	}
}
