package model

import (
	"time"

	"github.com/oneirolab/dreamvault/pkg/domain/types"
)

// SeedDreams returns the sample entries shown on first run, before the
// user has recorded anything. They are dated relative to now so the
// history and range views have something to show.
func SeedDreams(now time.Time) []*Dream {
	return []*Dream{
		{
			ID:      types.NewDreamID(),
			Title:   "Flying over the city",
			Content: "I dreamed I was flying above the city skyline, completely free...",
			Date:    now,
			Clarity: 8,
			Emotion: "😮",
			Tags:    []string{"flying", "city", "freedom"},
		},
		{
			ID:      types.NewDreamID(),
			Title:   "The shifting maze",
			Content: "Searching for an exit in a maze whose walls kept rearranging themselves...",
			Date:    now.AddDate(0, 0, -1),
			Clarity: 6,
			Emotion: "😨",
			Tags:    []string{"maze", "searching", "fear"},
		},
		{
			ID:      types.NewDreamID(),
			Title:   "Walk along the shore",
			Content: "I walked along a quiet beach and the sound of the waves was vivid...",
			Date:    now.AddDate(0, 0, -3),
			Clarity: 9,
			Emotion: "😌",
			Tags:    []string{"beach", "calm", "water"},
		},
	}
}
