package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
)

// Clarity bounds for a dream record. Values outside the range are rejected
// at the use case boundary, not by the repositories.
const (
	ClarityMin = 1
	ClarityMax = 10
)

// Dream represents a single journal entry for one recorded dream
type Dream struct {
	ID         types.DreamID   `json:"id"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Date       time.Time       `json:"occurredOn"`
	Clarity    int             `json:"clarity"`
	Emotion    string          `json:"emotion"`
	Tags       []string        `json:"tags"`
	Location   string          `json:"location,omitempty"`
	IsFavorite bool            `json:"isFavorite"`
	IsLucid    bool            `json:"isLucidDream"`
	RelatedIDs []types.DreamID `json:"relatedRecordIds,omitempty"`
	Analysis   *Analysis       `json:"analysis,omitempty"`
}

// Analysis holds externally computed interpretive metadata attached to a
// dream. When present, Narrative is always non-empty; the other fields may
// be independently absent.
type Analysis struct {
	Narrative      string    `json:"narrative"`
	Symbols        []string  `json:"symbols,omitempty"`
	SentimentScore *float64  `json:"sentimentScore,omitempty"`
	Theme          string    `json:"theme,omitempty"`
	ComputedAt     time.Time `json:"computedAt"`
}

// ErrInvalidDream marks a record that violates the entity invariants
var ErrInvalidDream = goerr.New("invalid dream record")

// Validate checks the invariants of a dream record
func (d *Dream) Validate() error {
	if d.Clarity < ClarityMin || d.Clarity > ClarityMax {
		return goerr.Wrap(ErrInvalidDream, "clarity must be between 1 and 10", goerr.V("clarity", d.Clarity))
	}
	if d.Analysis != nil {
		if !d.Analysis.ComputedAt.IsZero() && d.Analysis.Narrative == "" {
			return goerr.Wrap(ErrInvalidDream, "analysis narrative is required when computedAt is set", goerr.V("id", d.ID))
		}
	}
	return nil
}

// Clone creates a deep copy of a dream record
func (d *Dream) Clone() *Dream {
	copied := &Dream{
		ID:         d.ID,
		Title:      d.Title,
		Content:    d.Content,
		Date:       d.Date,
		Clarity:    d.Clarity,
		Emotion:    d.Emotion,
		Location:   d.Location,
		IsFavorite: d.IsFavorite,
		IsLucid:    d.IsLucid,
	}
	if d.Tags != nil {
		copied.Tags = make([]string, len(d.Tags))
		copy(copied.Tags, d.Tags)
	}
	if d.RelatedIDs != nil {
		copied.RelatedIDs = make([]types.DreamID, len(d.RelatedIDs))
		copy(copied.RelatedIDs, d.RelatedIDs)
	}
	if d.Analysis != nil {
		copied.Analysis = d.Analysis.Clone()
	}
	return copied
}

// Clone creates a deep copy of an analysis block
func (a *Analysis) Clone() *Analysis {
	copied := &Analysis{
		Narrative:  a.Narrative,
		Theme:      a.Theme,
		ComputedAt: a.ComputedAt,
	}
	if a.Symbols != nil {
		copied.Symbols = make([]string, len(a.Symbols))
		copy(copied.Symbols, a.Symbols)
	}
	if a.SentimentScore != nil {
		score := *a.SentimentScore
		copied.SentimentScore = &score
	}
	return copied
}
