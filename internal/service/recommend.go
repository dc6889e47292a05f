package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"notenest/internal/config"
	"notenest/internal/domain"
	"notenest/internal/keywords"
)

type RecommendationService struct {
	notes     NoteStore
	recs      RecommendationStore
	extractor KeywordExtractor
	videos    VideoFinder
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.RecommendConfig
}

func NewRecommendationService(
	notes NoteStore,
	recs RecommendationStore,
	extractor KeywordExtractor,
	videos VideoFinder,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.RecommendConfig,
) *RecommendationService {
	return &RecommendationService{
		notes:     notes,
		recs:      recs,
		extractor: extractor,
		videos:    videos,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		config:    cfg,
	}
}

// Recommend derives keywords and related videos for a note. Lookup
// failures are logged and collapsed to an empty video list, so the
// result is always usable.
func (s *RecommendationService) Recommend(ctx context.Context, note *domain.Note) *domain.Recommendation {
	kws := s.extractor.Extract(bundleFor(note))
	if kws == nil {
		kws = []string{}
	}

	videos, err := s.videos.FindRelated(ctx, kws, s.config.MaxResults)
	if err != nil {
		s.logger.Error("video lookup failed", "note_id", note.ID, "error", err)
		videos = nil
	}
	if videos == nil {
		videos = []domain.Video{}
	}

	return &domain.Recommendation{
		NoteID:      note.ID,
		Keywords:    kws,
		Videos:      videos,
		GeneratedAt: time.Now().UTC(),
	}
}

// RecommendForNote loads a note, computes its recommendation, stores it
// and publishes the result. A publish failure is logged but does not fail
// the call.
func (s *RecommendationService) RecommendForNote(ctx context.Context, noteID int64) (*domain.Recommendation, error) {
	note, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("load note: %w", err)
	}

	rec := s.Recommend(ctx, note)

	isNew, err := s.saveRecommendation(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("save recommendation: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, rec, isNew); err != nil {
			s.logger.Error("publish recommendation", "note_id", noteID, "error", err)
		}
	}

	return rec, nil
}

// RefreshStale recomputes recommendations for notes whose cached result is
// missing or older than the configured max age.
func (s *RecommendationService) RefreshStale(ctx context.Context) (*domain.RefreshStats, error) {
	startTime := time.Now()
	cutoff := time.Now().Add(-s.config.MaxAge)

	s.logger.Info("starting recommendation refresh",
		"cutoff", cutoff,
		"batch_size", s.config.BatchSize,
	)

	notes, err := s.notes.ListNeedingRefresh(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	stats := &domain.RefreshStats{Scanned: len(notes)}

	for i := range notes {
		note := &notes[i]
		rec := s.Recommend(ctx, note)

		isNew, err := s.saveRecommendation(ctx, rec)
		if err != nil {
			s.logger.Error("save recommendation", "note_id", note.ID, "error", err)
			stats.Errors++
			continue
		}
		stats.Refreshed++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, rec, isNew); err != nil {
				stats.Errors++
			} else {
				stats.Published++
			}
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("refresh completed",
		"scanned", stats.Scanned,
		"refreshed", stats.Refreshed,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *RecommendationService) saveRecommendation(ctx context.Context, rec *domain.Recommendation) (bool, error) {
	existing, err := s.recs.GetByNoteID(ctx, rec.NoteID)
	if err != nil {
		return false, err
	}
	isNew := existing == nil

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.recs.Upsert(txCtx, rec)
		if err != nil {
			return fmt.Errorf("upsert recommendation: %w", err)
		}
		rec.ID = id
		return nil
	})

	return isNew, err
}

// Both extractors receive the full bundle, subject included; each consumes
// the fields its algorithm defines.
func bundleFor(note *domain.Note) keywords.TextBundle {
	return keywords.TextBundle{
		Title:       note.Title,
		Subject:     deref(note.Subject),
		Description: deref(note.Description),
		Summary:     deref(note.Summary),
		Content:     deref(note.Content),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
