package cli

import (
	"context"
	"errors"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/cli/config"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/repository"
	"github.com/oneirolab/dreamvault/pkg/usecase"
	"github.com/oneirolab/dreamvault/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var input string
	var skipInvalid bool
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Journal JSON file to import (accepts legacy exports)",
			Required:    true,
			Destination: &input,
		},
		&cli.BoolFlag{
			Name:        "skip-invalid",
			Usage:       "Skip invalid or already-imported entries instead of aborting",
			Destination: &skipInvalid,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "import",
		Usage: "Import journal entries from a JSON export",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := os.ReadFile(input)
			if err != nil {
				return goerr.Wrap(err, "failed to read import file", goerr.V("path", input))
			}

			dreams, err := model.DecodeJournal(data)
			if err != nil {
				return goerr.Wrap(err, "failed to decode import file", goerr.V("path", input))
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

			imported := 0
			skipped := 0
			for _, d := range dreams {
				if _, err := uc.Dream.CreateDream(ctx, d); err != nil {
					if skipInvalid && (errors.Is(err, model.ErrInvalidDream) || errors.Is(err, repository.ErrDuplicateID)) {
						logging.Default().Warn("skipping entry",
							"id", d.ID, "title", d.Title, "error", err.Error())
						skipped++
						continue
					}
					return goerr.Wrap(err, "failed to import entry", goerr.V("id", d.ID))
				}
				imported++
			}

			logging.Default().Info("Journal imported",
				"path", input, "imported", imported, "skipped", skipped)
			return nil
		},
	}
}
