package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"notenest/internal/domain"
	"notenest/internal/keywords"
)

type NoteStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
	// ListNeedingRefresh returns approved notes whose recommendation is
	// missing or was generated before the cutoff.
	ListNeedingRefresh(ctx context.Context, generatedBefore time.Time, limit int) ([]domain.Note, error)
}

type RecommendationStore interface {
	Upsert(ctx context.Context, rec *domain.Recommendation) (int64, error)
	// GetByNoteID returns nil without error when no recommendation has
	// been generated for the note yet.
	GetByNoteID(ctx context.Context, noteID int64) (*domain.Recommendation, error)
}

type KeywordExtractor interface {
	Extract(bundle keywords.TextBundle) []string
}

type VideoFinder interface {
	FindRelated(ctx context.Context, keywords []string, maxResults int) ([]domain.Video, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, rec *domain.Recommendation, isNew bool) error
	Close() error
}
