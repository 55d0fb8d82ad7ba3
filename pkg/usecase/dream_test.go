package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
	"github.com/oneirolab/dreamvault/pkg/repository/memory"
	"github.com/oneirolab/dreamvault/pkg/usecase"
)

func seedJournal(t *testing.T, uc *usecase.UseCases, now time.Time) {
	t.Helper()
	ctx := context.Background()

	dreams := []*model.Dream{
		{ID: "d1", Title: "Flying over the city", Content: "above the skyline", Date: now, Clarity: 8, Emotion: "😮", Tags: []string{"flying", "city"}},
		{ID: "d2", Title: "The maze", Content: "shifting walls", Date: now.AddDate(0, 0, -1), Clarity: 6, Emotion: "😨", Tags: []string{"maze"}, IsFavorite: true},
		{ID: "d3", Title: "Shore walk", Content: "sound of waves", Date: now.AddDate(0, 0, -8), Clarity: 9, Emotion: "😌", Tags: []string{"beach"}},
	}
	for _, d := range dreams {
		_, err := uc.Dream.CreateDream(ctx, d)
		gt.NoError(t, err).Required()
	}
}

func TestCreateDreamValidatesClarity(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	_, err := uc.Dream.CreateDream(ctx, &model.Dream{Title: "bad", Clarity: 0})
	gt.Error(t, err)

	_, err = uc.Dream.CreateDream(ctx, &model.Dream{Title: "bad", Clarity: 11})
	gt.Error(t, err)

	created, err := uc.Dream.CreateDream(ctx, &model.Dream{Title: "ok", Clarity: 10})
	gt.NoError(t, err).Required()
	gt.Value(t, created.Clarity).Equal(10)
}

func TestCreateDreamDefaultsDate(t *testing.T) {
	uc := usecase.New(memory.New())

	created, err := uc.Dream.CreateDream(context.Background(), &model.Dream{Title: "undated", Clarity: 5})
	gt.NoError(t, err).Required()
	gt.Bool(t, created.Date.IsZero()).False()
}

func TestUpdateDreamValidatesClarity(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	created, err := uc.Dream.CreateDream(ctx, &model.Dream{Title: "ok", Clarity: 5})
	gt.NoError(t, err).Required()

	created.Clarity = 0
	_, err = uc.Dream.UpdateDream(ctx, created)
	gt.Error(t, err)
}

func TestListDreamsQueryFunnel(t *testing.T) {
	now := time.Now()
	uc := usecase.New(memory.New())
	seedJournal(t, uc, now)
	ctx := context.Background()

	t.Run("no options returns everything newest first", func(t *testing.T) {
		dreams, err := uc.Dream.ListDreams(ctx, usecase.QueryOptions{})
		gt.NoError(t, err).Required()
		gt.Array(t, dreams).Length(3)
		gt.Value(t, dreams[0].ID).Equal(types.DreamID("d1"))
		gt.Value(t, dreams[2].ID).Equal(types.DreamID("d3"))
	})

	t.Run("search and emotion intersect", func(t *testing.T) {
		dreams, err := uc.Dream.ListDreams(ctx, usecase.QueryOptions{Search: "walls", Emotion: "😨"})
		gt.NoError(t, err).Required()
		gt.Array(t, dreams).Length(1)
		gt.Value(t, dreams[0].ID).Equal(types.DreamID("d2"))

		dreams, err = uc.Dream.ListDreams(ctx, usecase.QueryOptions{Search: "walls", Emotion: "😌"})
		gt.NoError(t, err).Required()
		gt.Array(t, dreams).Length(0)
	})

	t.Run("week range drops the 8-day-old entry", func(t *testing.T) {
		dreams, err := uc.Dream.ListDreams(ctx, usecase.QueryOptions{Range: types.RangeWeek})
		gt.NoError(t, err).Required()
		gt.Array(t, dreams).Length(2)
		gt.Value(t, dreams[0].ID).Equal(types.DreamID("d1"))
		gt.Value(t, dreams[1].ID).Equal(types.DreamID("d2"))
	})

	t.Run("favorites view uses the same filters", func(t *testing.T) {
		dreams, err := uc.Dream.ListDreams(ctx, usecase.QueryOptions{FavoritesOnly: true})
		gt.NoError(t, err).Required()
		gt.Array(t, dreams).Length(1)
		gt.Value(t, dreams[0].ID).Equal(types.DreamID("d2"))

		// Favorites search matches tags too, same as the history view
		dreams, err = uc.Dream.ListDreams(ctx, usecase.QueryOptions{FavoritesOnly: true, Search: "maze"})
		gt.NoError(t, err).Required()
		gt.Array(t, dreams).Length(1)
	})
}

func TestToggleFavorite(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	created, err := uc.Dream.CreateDream(ctx, &model.Dream{Title: "fav", Clarity: 5})
	gt.NoError(t, err).Required()
	gt.Bool(t, created.IsFavorite).False()

	toggled, err := uc.Dream.ToggleFavorite(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.Bool(t, toggled.IsFavorite).True()

	toggled, err = uc.Dream.ToggleFavorite(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.Bool(t, toggled.IsFavorite).False()
}

func TestStats(t *testing.T) {
	now := time.Now()
	uc := usecase.New(memory.New())
	seedJournal(t, uc, now)
	ctx := context.Background()

	summary, err := uc.Dream.Stats(ctx, usecase.QueryOptions{}, 0)
	gt.NoError(t, err).Required()

	gt.Value(t, summary.Count).Equal(3)
	gt.Value(t, summary.RecordedDays).Equal(3)
	gt.Value(t, summary.AverageClarity).Equal((8.0 + 6.0 + 9.0) / 3.0)
	gt.Array(t, summary.Emotions).Length(3)
	gt.Array(t, summary.Tags).Length(4)

	t.Run("range-filtered stats", func(t *testing.T) {
		summary, err := uc.Dream.Stats(ctx, usecase.QueryOptions{Range: types.RangeWeek}, 0)
		gt.NoError(t, err).Required()
		gt.Value(t, summary.Count).Equal(2)
		gt.Value(t, summary.AverageClarity).Equal(7.0)
	})

	t.Run("empty view yields zero average", func(t *testing.T) {
		summary, err := uc.Dream.Stats(ctx, usecase.QueryOptions{Search: "no such dream"}, 0)
		gt.NoError(t, err).Required()
		gt.Value(t, summary.Count).Equal(0)
		gt.Value(t, summary.AverageClarity).Equal(0.0)
	})
}
