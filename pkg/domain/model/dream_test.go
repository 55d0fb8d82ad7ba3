package model_test

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
)

func TestDreamValidate(t *testing.T) {
	score := 0.5
	tests := []struct {
		name    string
		dream   *model.Dream
		wantErr bool
	}{
		{
			name:  "valid dream",
			dream: &model.Dream{ID: "d1", Clarity: 5},
		},
		{
			name:  "clarity at lower bound",
			dream: &model.Dream{ID: "d1", Clarity: 1},
		},
		{
			name:  "clarity at upper bound",
			dream: &model.Dream{ID: "d1", Clarity: 10},
		},
		{
			name:    "clarity below range",
			dream:   &model.Dream{ID: "d1", Clarity: 0},
			wantErr: true,
		},
		{
			name:    "clarity above range",
			dream:   &model.Dream{ID: "d1", Clarity: 11},
			wantErr: true,
		},
		{
			name: "analysis with narrative is valid",
			dream: &model.Dream{
				ID:      "d1",
				Clarity: 5,
				Analysis: &model.Analysis{
					Narrative:      "a symbolic journey",
					SentimentScore: &score,
					ComputedAt:     time.Now(),
				},
			},
		},
		{
			name: "computed analysis without narrative is invalid",
			dream: &model.Dream{
				ID:      "d1",
				Clarity: 5,
				Analysis: &model.Analysis{
					ComputedAt: time.Now(),
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dream.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDreamClone(t *testing.T) {
	score := -0.3
	original := &model.Dream{
		ID:         types.NewDreamID(),
		Title:      "Flying",
		Content:    "over the city",
		Date:       time.Now(),
		Clarity:    8,
		Emotion:    "😮",
		Tags:       []string{"flying", "city"},
		Location:   "home",
		IsFavorite: true,
		IsLucid:    true,
		RelatedIDs: []types.DreamID{"other"},
		Analysis: &model.Analysis{
			Narrative:      "a desire for freedom",
			Symbols:        []string{"sky"},
			SentimentScore: &score,
			Theme:          "freedom",
			ComputedAt:     time.Now(),
		},
	}

	cloned := original.Clone()
	if !reflect.DeepEqual(original, cloned) {
		t.Fatalf("clone differs from original: %+v vs %+v", original, cloned)
	}

	// Mutating the clone must not leak into the original
	cloned.Tags[0] = "changed"
	cloned.Analysis.Symbols[0] = "changed"
	*cloned.Analysis.SentimentScore = 1.0
	if original.Tags[0] != "flying" {
		t.Error("clone shares tags slice with original")
	}
	if original.Analysis.Symbols[0] != "sky" {
		t.Error("clone shares analysis symbols with original")
	}
	if *original.Analysis.SentimentScore != -0.3 {
		t.Error("clone shares sentiment score pointer with original")
	}
}

func TestDreamJSONRoundTrip(t *testing.T) {
	score := 0.7
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	computed := time.Date(2026, 2, 11, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		dream *model.Dream
	}{
		{
			name: "without analysis",
			dream: &model.Dream{
				ID:      "d1",
				Title:   "Maze",
				Content: "shifting walls",
				Date:    date,
				Clarity: 6,
				Emotion: "😨",
				Tags:    []string{"maze", "fear"},
			},
		},
		{
			name: "with full analysis",
			dream: &model.Dream{
				ID:         "d2",
				Title:      "Shore",
				Content:    "quiet beach",
				Date:       date,
				Clarity:    9,
				Emotion:    "😌",
				Tags:       []string{"beach"},
				Location:   "seaside",
				IsFavorite: true,
				IsLucid:    true,
				RelatedIDs: []types.DreamID{"d1"},
				Analysis: &model.Analysis{
					Narrative:      "a longing for rest",
					Symbols:        []string{"water", "horizon"},
					SentimentScore: &score,
					Theme:          "rest",
					ComputedAt:     computed,
				},
			},
		},
		{
			name: "analysis with only narrative",
			dream: &model.Dream{
				ID:      "d3",
				Title:   "Library",
				Content: "towering shelves",
				Date:    date,
				Clarity: 3,
				Emotion: "🤔",
				Tags:    []string{"library"},
				Analysis: &model.Analysis{
					Narrative:  "a search for answers",
					ComputedAt: computed,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.dream)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			var decoded model.Dream
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if !reflect.DeepEqual(tt.dream, &decoded) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", &decoded, tt.dream)
			}
		})
	}
}

func TestDreamJSONFieldNames(t *testing.T) {
	dream := &model.Dream{ID: "d1", Title: "t", Content: "c", Clarity: 5}
	data, err := json.Marshal(dream)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"id", "title", "content", "occurredOn", "clarity", "emotion", "isFavorite", "isLucidDream"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing field %q in %s", key, data)
		}
	}
	if _, ok := raw["analysis"]; ok {
		t.Error("absent analysis must not be serialized")
	}
}
