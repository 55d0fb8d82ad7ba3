package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
	"github.com/oneirolab/dreamvault/pkg/repository"
)

type dreamRepository struct {
	db *sql.DB
}

const dreamColumns = "id, title, content, occurred_on, clarity, emotion, tags, location, is_favorite, is_lucid, related_ids, analysis"

// occurredOnLayout is fixed-width UTC with zero-padded nanoseconds, so
// lexicographic order of the occurred_on column matches chronological
// order. Variable-width forms like RFC3339Nano do not have this property:
// offsets shift the clock digits and trimmed fractions sort before 'Z'.
const occurredOnLayout = "2006-01-02 15:04:05.000000000"

func encodeOccurredOn(t time.Time) string {
	return t.UTC().Format(occurredOnLayout)
}

func parseOccurredOn(s string) (time.Time, error) {
	return time.ParseInLocation(occurredOnLayout, s, time.UTC)
}

func encodeRow(d *model.Dream) (tags, relatedIDs string, analysis sql.NullString, err error) {
	tagData, err := json.Marshal(d.Tags)
	if err != nil {
		return "", "", sql.NullString{}, goerr.Wrap(err, "failed to encode tags")
	}
	relatedData, err := json.Marshal(d.RelatedIDs)
	if err != nil {
		return "", "", sql.NullString{}, goerr.Wrap(err, "failed to encode related IDs")
	}
	if d.Analysis != nil {
		analysisData, err := json.Marshal(d.Analysis)
		if err != nil {
			return "", "", sql.NullString{}, goerr.Wrap(err, "failed to encode analysis")
		}
		analysis = sql.NullString{String: string(analysisData), Valid: true}
	}
	return string(tagData), string(relatedData), analysis, nil
}

func scanDream(scan func(dest ...any) error) (*model.Dream, error) {
	var d model.Dream
	var occurredOn, tags, relatedIDs string
	var analysis sql.NullString

	if err := scan(&d.ID, &d.Title, &d.Content, &occurredOn, &d.Clarity, &d.Emotion,
		&tags, &d.Location, &d.IsFavorite, &d.IsLucid, &relatedIDs, &analysis); err != nil {
		return nil, err
	}

	date, err := parseOccurredOn(occurredOn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse occurred_on", goerr.V("value", occurredOn))
	}
	d.Date = date

	if err := json.Unmarshal([]byte(tags), &d.Tags); err != nil {
		return nil, goerr.Wrap(err, "failed to decode tags")
	}
	if err := json.Unmarshal([]byte(relatedIDs), &d.RelatedIDs); err != nil {
		return nil, goerr.Wrap(err, "failed to decode related IDs")
	}
	if analysis.Valid {
		d.Analysis = &model.Analysis{}
		if err := json.Unmarshal([]byte(analysis.String), d.Analysis); err != nil {
			return nil, goerr.Wrap(err, "failed to decode analysis")
		}
	}

	return &d, nil
}

func (r *dreamRepository) Create(ctx context.Context, dream *model.Dream) (*model.Dream, error) {
	created := dream.Clone()
	if created.ID == "" {
		created.ID = types.NewDreamID()
	}

	var exists int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM dreams WHERE id = ?", created.ID.String()).Scan(&exists)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check dream existence")
	}
	if exists > 0 {
		return nil, goerr.Wrap(repository.ErrDuplicateID, "dream ID already exists", goerr.V("id", created.ID))
	}

	tags, relatedIDs, analysis, err := encodeRow(created)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO dreams (`+dreamColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, created.ID.String(), created.Title, created.Content,
		encodeOccurredOn(created.Date), created.Clarity, created.Emotion,
		tags, created.Location, created.IsFavorite, created.IsLucid, relatedIDs, analysis)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert dream", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *dreamRepository) Get(ctx context.Context, id types.DreamID) (*model.Dream, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+dreamColumns+" FROM dreams WHERE id = ?", id.String())

	dream, err := scanDream(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "dream not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get dream", goerr.V("id", id))
	}

	return dream, nil
}

func (r *dreamRepository) List(ctx context.Context) ([]*model.Dream, error) {
	// rowid DESC breaks same-date ties by insertion order, newest first
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+dreamColumns+" FROM dreams ORDER BY occurred_on DESC, rowid DESC")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list dreams")
	}
	defer func() { _ = rows.Close() }()

	result := []*model.Dream{}
	for rows.Next() {
		dream, err := scanDream(rows.Scan)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan dream")
		}
		result = append(result, dream)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate dreams")
	}

	return result, nil
}

func (r *dreamRepository) Update(ctx context.Context, dream *model.Dream) (*model.Dream, error) {
	updated := dream.Clone()

	tags, relatedIDs, analysis, err := encodeRow(updated)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE dreams
		SET title = ?, content = ?, occurred_on = ?, clarity = ?, emotion = ?,
			tags = ?, location = ?, is_favorite = ?, is_lucid = ?, related_ids = ?, analysis = ?
		WHERE id = ?
	`, updated.Title, updated.Content, encodeOccurredOn(updated.Date),
		updated.Clarity, updated.Emotion, tags, updated.Location,
		updated.IsFavorite, updated.IsLucid, relatedIDs, analysis, updated.ID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update dream", goerr.V("id", updated.ID))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read update result")
	}
	if affected == 0 {
		return nil, goerr.Wrap(repository.ErrNotFound, "dream not found", goerr.V("id", updated.ID))
	}

	return updated, nil
}

func (r *dreamRepository) Delete(ctx context.Context, id types.DreamID) error {
	// Deleting an absent ID is a no-op
	if _, err := r.db.ExecContext(ctx, "DELETE FROM dreams WHERE id = ?", id.String()); err != nil {
		return goerr.Wrap(err, "failed to delete dream", goerr.V("id", id))
	}
	return nil
}
