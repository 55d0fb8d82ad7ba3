package model

import (
	"sort"
	"time"
)

// FrequencyEntry is one row of a frequency table
type FrequencyEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Count returns the number of dreams in the collection
func Count(dreams []*Dream) int {
	return len(dreams)
}

// AverageClarity returns the arithmetic mean of clarity ratings.
// An empty collection yields 0 so callers never see NaN.
func AverageClarity(dreams []*Dream) float64 {
	if len(dreams) == 0 {
		return 0
	}

	total := 0
	for _, d := range dreams {
		total += d.Clarity
	}
	return float64(total) / float64(len(dreams))
}

// EmotionFrequency returns emotion occurrence counts, descending by count.
// Ties keep first-seen order.
func EmotionFrequency(dreams []*Dream) []FrequencyEntry {
	counts := make(map[string]int)
	var order []string
	for _, d := range dreams {
		if d.Emotion == "" {
			continue
		}
		if _, seen := counts[d.Emotion]; !seen {
			order = append(order, d.Emotion)
		}
		counts[d.Emotion]++
	}
	return sortedFrequency(counts, order, 0)
}

// TagFrequency returns tag occurrence counts, descending by count with
// first-seen tie order. Repeated tags all count; a record's own duplicate
// tags are not deduplicated. topN > 0 truncates the table.
func TagFrequency(dreams []*Dream, topN int) []FrequencyEntry {
	counts := make(map[string]int)
	var order []string
	for _, d := range dreams {
		for _, tag := range d.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}
	return sortedFrequency(counts, order, topN)
}

// MostCommonEmotions returns the top-n emotions by frequency
func MostCommonEmotions(dreams []*Dream, n int) []FrequencyEntry {
	freq := EmotionFrequency(dreams)
	if n > 0 && n < len(freq) {
		freq = freq[:n]
	}
	return freq
}

// RecordedDayCount returns the number of distinct calendar days that have at
// least one entry. Multiple entries on the same day count once.
func RecordedDayCount(dreams []*Dream) int {
	days := make(map[string]bool)
	for _, d := range dreams {
		days[d.Date.Format(time.DateOnly)] = true
	}
	return len(days)
}

func sortedFrequency(counts map[string]int, firstSeen []string, topN int) []FrequencyEntry {
	entries := make([]FrequencyEntry, 0, len(firstSeen))
	for _, label := range firstSeen {
		entries = append(entries, FrequencyEntry{Label: label, Count: counts[label]})
	}

	// Stable sort keeps the first-seen order among equal counts
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if topN > 0 && topN < len(entries) {
		entries = entries[:topN]
	}
	return entries
}
