package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"notenest/internal/domain"
)

type RecommendationStore struct {
	db *sqlx.DB
}

func NewRecommendationStore(db *sqlx.DB) *RecommendationStore {
	return &RecommendationStore{db: db}
}

func (s *RecommendationStore) Upsert(ctx context.Context, rec *domain.Recommendation) (int64, error) {
	videos, err := json.Marshal(rec.Videos)
	if err != nil {
		return 0, fmt.Errorf("marshal videos: %w", err)
	}

	query := `
		INSERT INTO recommendations (note_id, keywords, videos, generated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (note_id) DO UPDATE SET
			keywords = EXCLUDED.keywords,
			videos = EXCLUDED.videos,
			generated_at = EXCLUDED.generated_at
		RETURNING id`

	var id int64
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		rec.NoteID,
		pq.Array(rec.Keywords),
		videos,
		rec.GeneratedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByNoteID returns the cached recommendation for a note, or nil when
// none has been generated yet.
func (s *RecommendationStore) GetByNoteID(ctx context.Context, noteID int64) (*domain.Recommendation, error) {
	query := `
		SELECT id, note_id, keywords, videos, generated_at
		FROM recommendations
		WHERE note_id = $1`

	var rec domain.Recommendation
	var keywords pq.StringArray
	var videos []byte

	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, noteID)
	err := row.Scan(&rec.ID, &rec.NoteID, &keywords, &videos, &rec.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec.Keywords = keywords
	if err := json.Unmarshal(videos, &rec.Videos); err != nil {
		return nil, fmt.Errorf("unmarshal videos: %w", err)
	}

	return &rec, nil
}
