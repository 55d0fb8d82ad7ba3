package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/service/analysis"
	"github.com/urfave/cli/v3"
)

const defaultAnalysisEndpoint = "https://api.dreambuff.com/dream/analysis"

// Analysis holds CLI flags for the dream analysis endpoint
type Analysis struct {
	endpoint string
	apiKey   string
	userID   string
	timeout  time.Duration
}

// Flags returns CLI flags for analysis configuration
func (a *Analysis) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "analysis-endpoint",
			Usage:       "Dream analysis endpoint URL",
			Value:       defaultAnalysisEndpoint,
			Category:    "Analysis",
			Sources:     cli.EnvVars("DREAMVAULT_ANALYSIS_ENDPOINT"),
			Destination: &a.endpoint,
		},
		&cli.StringFlag{
			Name:        "analysis-api-key",
			Usage:       "API key for the analysis endpoint (analysis is disabled when empty)",
			Category:    "Analysis",
			Sources:     cli.EnvVars("DREAMVAULT_ANALYSIS_API_KEY"),
			Destination: &a.apiKey,
		},
		&cli.StringFlag{
			Name:        "analysis-user-id",
			Usage:       "User identifier sent with analysis requests",
			Value:       "1",
			Category:    "Analysis",
			Sources:     cli.EnvVars("DREAMVAULT_ANALYSIS_USER_ID"),
			Destination: &a.userID,
		},
		&cli.DurationFlag{
			Name:        "analysis-timeout",
			Usage:       "Timeout for analysis requests",
			Value:       30 * time.Second,
			Category:    "Analysis",
			Sources:     cli.EnvVars("DREAMVAULT_ANALYSIS_TIMEOUT"),
			Destination: &a.timeout,
		},
	}
}

// Configured reports whether an API key was provided
func (a *Analysis) Configured() bool {
	return a.apiKey != ""
}

// Configure builds the analysis client, or nil when no API key is set
func (a *Analysis) Configure() (*analysis.Client, error) {
	if !a.Configured() {
		return nil, nil
	}

	client, err := analysis.New(a.endpoint, a.apiKey,
		analysis.WithUserID(a.userID),
		analysis.WithTimeout(a.timeout),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure analysis client")
	}
	return client, nil
}
