package model

import (
	"sort"
	"strings"
	"time"

	"github.com/oneirolab/dreamvault/pkg/domain/types"
)

// Search keeps dreams whose title, content, or any tag contains the query
// as a case-insensitive substring. An empty query keeps everything.
func Search(dreams []*Dream, query string) []*Dream {
	if query == "" {
		return dreams
	}

	q := strings.ToLower(query)
	result := make([]*Dream, 0, len(dreams))
	for _, d := range dreams {
		if matchesQuery(d, q) {
			result = append(result, d)
		}
	}
	return result
}

func matchesQuery(d *Dream, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(d.Title), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Content), loweredQuery) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return true
		}
	}
	return false
}

// FilterByTags keeps dreams that carry at least one of the selected tags
// (OR semantics). An empty selection keeps everything.
func FilterByTags(dreams []*Dream, selected []string) []*Dream {
	if len(selected) == 0 {
		return dreams
	}

	wanted := make(map[string]bool, len(selected))
	for _, tag := range selected {
		wanted[tag] = true
	}

	result := make([]*Dream, 0, len(dreams))
	for _, d := range dreams {
		for _, tag := range d.Tags {
			if wanted[tag] {
				result = append(result, d)
				break
			}
		}
	}
	return result
}

// FilterByEmotion keeps dreams with an exactly matching emotion tag.
// An empty emotion keeps everything.
func FilterByEmotion(dreams []*Dream, emotion string) []*Dream {
	if emotion == "" {
		return dreams
	}

	result := make([]*Dream, 0, len(dreams))
	for _, d := range dreams {
		if d.Emotion == emotion {
			result = append(result, d)
		}
	}
	return result
}

// FilterInRange keeps dreams dated within the trailing window ending at now,
// inclusive of now. RangeAll keeps everything.
func FilterInRange(dreams []*Dream, rng types.TimeRange, now time.Time) []*Dream {
	cutoff, ok := rng.Normalize().Cutoff(now)
	if !ok {
		return dreams
	}

	result := make([]*Dream, 0, len(dreams))
	for _, d := range dreams {
		if !d.Date.Before(cutoff) && !d.Date.After(now) {
			result = append(result, d)
		}
	}
	return result
}

// FilterFavorites keeps dreams marked as favorite
func FilterFavorites(dreams []*Dream) []*Dream {
	result := make([]*Dream, 0, len(dreams))
	for _, d := range dreams {
		if d.IsFavorite {
			result = append(result, d)
		}
	}
	return result
}

// SortByDateDesc returns the dreams ordered most-recent-first. The sort is
// stable so same-date entries keep their insertion order.
func SortByDateDesc(dreams []*Dream) []*Dream {
	sorted := make([]*Dream, len(dreams))
	copy(sorted, dreams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// FindByID returns the dream with the given ID, or nil if absent
func FindByID(dreams []*Dream, id types.DreamID) *Dream {
	for _, d := range dreams {
		if d.ID == id {
			return d
		}
	}
	return nil
}
