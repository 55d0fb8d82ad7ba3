package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
)

func TestAverageClarity(t *testing.T) {
	t.Run("empty collection yields 0", func(t *testing.T) {
		gt.Value(t, model.AverageClarity(nil)).Equal(0)
	})

	t.Run("mean of clarity values", func(t *testing.T) {
		dreams := []*model.Dream{
			{Clarity: 4},
			{Clarity: 8},
		}
		gt.Value(t, model.AverageClarity(dreams)).Equal(6.0)
	})
}

func TestEmotionFrequency(t *testing.T) {
	dreams := []*model.Dream{
		{Emotion: "😮"},
		{Emotion: "😨"},
		{Emotion: "😮"},
		{Emotion: ""},
	}

	freq := model.EmotionFrequency(dreams)
	gt.Array(t, freq).Length(2)
	gt.Value(t, freq[0]).Equal(model.FrequencyEntry{Label: "😮", Count: 2})
	gt.Value(t, freq[1]).Equal(model.FrequencyEntry{Label: "😨", Count: 1})
}

func TestEmotionFrequencyTieOrder(t *testing.T) {
	dreams := []*model.Dream{
		{Emotion: "😌"},
		{Emotion: "😮"},
	}

	freq := model.EmotionFrequency(dreams)
	gt.Array(t, freq).Length(2)
	gt.Value(t, freq[0].Label).Equal("😌")
	gt.Value(t, freq[1].Label).Equal("😮")
}

func TestTagFrequency(t *testing.T) {
	t.Run("counts across records with descending order", func(t *testing.T) {
		dreams := []*model.Dream{
			{Tags: []string{"a", "b"}},
			{Tags: []string{"a"}},
		}

		freq := model.TagFrequency(dreams, 0)
		gt.Array(t, freq).Length(2)
		gt.Value(t, freq[0]).Equal(model.FrequencyEntry{Label: "a", Count: 2})
		gt.Value(t, freq[1]).Equal(model.FrequencyEntry{Label: "b", Count: 1})
	})

	t.Run("duplicate tags within one record each count", func(t *testing.T) {
		dreams := []*model.Dream{
			{Tags: []string{"a", "a"}},
			{Tags: []string{"b"}},
		}

		freq := model.TagFrequency(dreams, 0)
		gt.Value(t, freq[0]).Equal(model.FrequencyEntry{Label: "a", Count: 2})
	})

	t.Run("topN truncates", func(t *testing.T) {
		dreams := []*model.Dream{
			{Tags: []string{"a", "b", "c"}},
			{Tags: []string{"a", "b"}},
			{Tags: []string{"a"}},
		}

		freq := model.TagFrequency(dreams, 2)
		gt.Array(t, freq).Length(2)
		gt.Value(t, freq[0].Label).Equal("a")
		gt.Value(t, freq[1].Label).Equal("b")
	})
}

func TestMostCommonEmotions(t *testing.T) {
	dreams := []*model.Dream{
		{Emotion: "😮"},
		{Emotion: "😮"},
		{Emotion: "😨"},
		{Emotion: "😌"},
	}

	top := model.MostCommonEmotions(dreams, 2)
	gt.Array(t, top).Length(2)
	gt.Value(t, top[0].Label).Equal("😮")
}

func TestRecordedDayCount(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("same day at different times counts once", func(t *testing.T) {
		dreams := []*model.Dream{
			{Date: day.Add(8 * time.Hour)},
			{Date: day.Add(22 * time.Hour)},
		}
		gt.Value(t, model.RecordedDayCount(dreams)).Equal(1)
	})

	t.Run("distinct days each count", func(t *testing.T) {
		dreams := []*model.Dream{
			{Date: day},
			{Date: day.AddDate(0, 0, 1)},
			{Date: day.AddDate(0, 0, 2)},
		}
		gt.Value(t, model.RecordedDayCount(dreams)).Equal(3)
	})

	t.Run("empty collection yields 0", func(t *testing.T) {
		gt.Value(t, model.RecordedDayCount(nil)).Equal(0)
	})
}
