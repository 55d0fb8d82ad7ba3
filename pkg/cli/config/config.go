package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig represents the journal seed configuration file
type AppConfig struct {
	Entries []SeedEntry `toml:"entry"`
}

// SeedEntry represents one seed journal entry in the configuration
type SeedEntry struct {
	Title      string   `toml:"title"`
	Content    string   `toml:"content"`
	OccurredOn string   `toml:"occurred_on"`
	Clarity    int      `toml:"clarity"`
	Emotion    string   `toml:"emotion"`
	Tags       []string `toml:"tags"`
	Location   string   `toml:"location"`
	IsLucid    bool     `toml:"is_lucid"`
}

// Validate checks if the SeedEntry is valid
func (e *SeedEntry) Validate() error {
	if e.Title == "" {
		return goerr.Wrap(ErrInvalidConfig, "entry title is required")
	}
	if e.Clarity < model.ClarityMin || e.Clarity > model.ClarityMax {
		return goerr.Wrap(ErrInvalidConfig, "entry clarity must be between 1 and 10",
			goerr.V("title", e.Title), goerr.V("clarity", e.Clarity))
	}
	if e.OccurredOn != "" {
		if _, err := parseOccurredOn(e.OccurredOn); err != nil {
			return goerr.Wrap(ErrInvalidConfig, "entry occurred_on is not a valid date",
				goerr.V("title", e.Title), goerr.V("occurred_on", e.OccurredOn))
		}
	}
	return nil
}

// Validate checks all entries of the AppConfig
func (c *AppConfig) Validate() error {
	for i, e := range c.Entries {
		if err := e.Validate(); err != nil {
			return goerr.Wrap(err, "invalid seed entry", goerr.V(EntryIndexKey, i))
		}
	}
	return nil
}

// Dreams converts the configured entries into dream records. Entries
// without a date default to now.
func (c *AppConfig) Dreams(now time.Time) []*model.Dream {
	dreams := make([]*model.Dream, 0, len(c.Entries))
	for _, e := range c.Entries {
		date := now
		if e.OccurredOn != "" {
			if parsed, err := parseOccurredOn(e.OccurredOn); err == nil {
				date = parsed
			}
		}
		dreams = append(dreams, &model.Dream{
			Title:    e.Title,
			Content:  e.Content,
			Date:     date,
			Clarity:  e.Clarity,
			Emotion:  e.Emotion,
			Tags:     e.Tags,
			Location: e.Location,
			IsLucid:  e.IsLucid,
		})
	}
	return dreams
}

// LoadAppConfig reads and validates a TOML seed configuration file
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "seed configuration file does not exist",
				goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read seed configuration", goerr.V(ConfigPathKey, path))
	}

	var cfg AppConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse seed configuration",
			goerr.V(ConfigPathKey, path), goerr.V("parse_error", err.Error()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parseOccurredOn(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
