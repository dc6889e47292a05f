package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"notenest/internal/config"
	"notenest/internal/domain"
	"notenest/internal/keywords"
	"notenest/internal/service/mocks"
	"notenest/testdata/utils"
)

type RecommendationServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	notes     *mocks.MockNoteStore
	recs      *mocks.MockRecommendationStore
	extractor *mocks.MockKeywordExtractor
	videos    *mocks.MockVideoFinder
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *RecommendationService
	cfg     config.RecommendConfig
	logger  *slog.Logger
}

func (s *RecommendationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.notes = mocks.NewMockNoteStore(s.ctrl)
	s.recs = mocks.NewMockRecommendationStore(s.ctrl)
	s.extractor = mocks.NewMockKeywordExtractor(s.ctrl)
	s.videos = mocks.NewMockVideoFinder(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.RecommendConfig{
		Strategy:   "frequency",
		MaxResults: 5,
		MaxAge:     24 * time.Hour,
		BatchSize:  50,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewRecommendationService(
		s.notes,
		s.recs,
		s.extractor,
		s.videos,
		s.txManager,
		s.publisher,
		s.logger,
		s.cfg,
	)
}

func (s *RecommendationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRecommendationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecommendationServiceTestSuite))
}

func (s *RecommendationServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *RecommendationServiceTestSuite) TestRecommend_Success() {
	ctx := context.Background()

	note := &domain.Note{
		ID:          1,
		Title:       "Quantum Computing",
		Subject:     utils.Ptr("Physics"),
		Description: utils.Ptr("Qubits and superposition"),
	}

	s.extractor.EXPECT().Extract(keywords.TextBundle{
		Title:       "Quantum Computing",
		Subject:     "Physics",
		Description: "Qubits and superposition",
	}).Return([]string{"quantum", "qubits"})

	videos := []domain.Video{{ID: "vid1", Title: "Qubits Explained"}}
	s.videos.EXPECT().FindRelated(ctx, []string{"quantum", "qubits"}, 5).Return(videos, nil)

	rec := s.service.Recommend(ctx, note)

	s.Equal(int64(1), rec.NoteID)
	s.Equal([]string{"quantum", "qubits"}, rec.Keywords)
	s.Equal(videos, rec.Videos)
	s.False(rec.GeneratedAt.IsZero())
}

func (s *RecommendationServiceTestSuite) TestRecommend_LookupFailureCollapsesToEmpty() {
	ctx := context.Background()

	note := &domain.Note{ID: 2, Title: "Thermodynamics"}

	s.extractor.EXPECT().Extract(gomock.Any()).Return([]string{"thermodynamics"})
	s.videos.EXPECT().FindRelated(ctx, []string{"thermodynamics"}, 5).
		Return(nil, errors.New("quota exceeded"))

	rec := s.service.Recommend(ctx, note)

	s.Equal([]string{"thermodynamics"}, rec.Keywords)
	s.NotNil(rec.Videos)
	s.Empty(rec.Videos)
}

func (s *RecommendationServiceTestSuite) TestRecommend_NoKeywords() {
	ctx := context.Background()

	note := &domain.Note{ID: 3, Title: "Short"}

	s.extractor.EXPECT().Extract(gomock.Any()).Return(nil)
	s.videos.EXPECT().FindRelated(ctx, []string{}, 5).Return([]domain.Video{}, nil)

	rec := s.service.Recommend(ctx, note)

	s.NotNil(rec.Keywords)
	s.Empty(rec.Keywords)
	s.NotNil(rec.Videos)
	s.Empty(rec.Videos)
}

func (s *RecommendationServiceTestSuite) TestRecommendForNote_New() {
	ctx := context.Background()

	note := &domain.Note{ID: 10, Title: "Cell Biology"}

	s.notes.EXPECT().GetByID(ctx, int64(10)).Return(note, nil)
	s.extractor.EXPECT().Extract(gomock.Any()).Return([]string{"biology"})
	s.videos.EXPECT().FindRelated(ctx, []string{"biology"}, 5).Return([]domain.Video{{ID: "vid1"}}, nil)

	s.recs.EXPECT().GetByNoteID(ctx, int64(10)).Return(nil, nil)
	s.expectTransaction(ctx)
	s.recs.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(100), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)

	rec, err := s.service.RecommendForNote(ctx, 10)

	s.NoError(err)
	s.Equal(int64(100), rec.ID)
	s.Equal(int64(10), rec.NoteID)
}

func (s *RecommendationServiceTestSuite) TestRecommendForNote_ExistingPublishesUpdate() {
	ctx := context.Background()

	note := &domain.Note{ID: 11, Title: "Organic Chemistry"}

	s.notes.EXPECT().GetByID(ctx, int64(11)).Return(note, nil)
	s.extractor.EXPECT().Extract(gomock.Any()).Return([]string{"chemistry"})
	s.videos.EXPECT().FindRelated(ctx, []string{"chemistry"}, 5).Return([]domain.Video{}, nil)

	s.recs.EXPECT().GetByNoteID(ctx, int64(11)).
		Return(&domain.Recommendation{ID: 40, NoteID: 11}, nil)
	s.expectTransaction(ctx)
	s.recs.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(40), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), false).Return(nil)

	_, err := s.service.RecommendForNote(ctx, 11)

	s.NoError(err)
}

func (s *RecommendationServiceTestSuite) TestRecommendForNote_NoteLoadError() {
	ctx := context.Background()

	s.notes.EXPECT().GetByID(ctx, int64(99)).Return(nil, errors.New("no such note"))

	rec, err := s.service.RecommendForNote(ctx, 99)

	s.Error(err)
	s.Nil(rec)
	s.Contains(err.Error(), "load note")
}

func (s *RecommendationServiceTestSuite) TestRefreshStale() {
	ctx := context.Background()

	notes := []domain.Note{
		{ID: 1, Title: "Calculus", Status: "approved"},
		{ID: 2, Title: "Statistics", Status: "approved"},
	}

	s.notes.EXPECT().ListNeedingRefresh(ctx, gomock.Any(), 50).Return(notes, nil)

	s.extractor.EXPECT().Extract(gomock.Any()).Return([]string{"mathematics"}).Times(2)
	s.videos.EXPECT().FindRelated(ctx, []string{"mathematics"}, 5).
		Return([]domain.Video{}, nil).Times(2)

	s.recs.EXPECT().GetByNoteID(ctx, int64(1)).Return(nil, nil)
	s.recs.EXPECT().GetByNoteID(ctx, int64(2)).Return(nil, nil)
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).Times(2)
	s.recs.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(1), nil).Times(2)

	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(errors.New("broker down"))

	stats, err := s.service.RefreshStale(ctx)

	s.NoError(err)
	s.Equal(2, stats.Scanned)
	s.Equal(2, stats.Refreshed)
	s.Equal(1, stats.Published)
	s.Equal(1, stats.Errors)
}

func (s *RecommendationServiceTestSuite) TestRefreshStale_SaveErrorSkipsPublish() {
	ctx := context.Background()

	notes := []domain.Note{{ID: 5, Title: "Geometry", Status: "approved"}}

	s.notes.EXPECT().ListNeedingRefresh(ctx, gomock.Any(), 50).Return(notes, nil)
	s.extractor.EXPECT().Extract(gomock.Any()).Return([]string{"geometry"})
	s.videos.EXPECT().FindRelated(ctx, []string{"geometry"}, 5).Return([]domain.Video{}, nil)
	s.recs.EXPECT().GetByNoteID(ctx, int64(5)).Return(nil, errors.New("db down"))

	stats, err := s.service.RefreshStale(ctx)

	s.NoError(err)
	s.Equal(1, stats.Scanned)
	s.Equal(0, stats.Refreshed)
	s.Equal(1, stats.Errors)
	s.Equal(0, stats.Published)
}

func (s *RecommendationServiceTestSuite) TestRefreshStale_ListError() {
	ctx := context.Background()

	s.notes.EXPECT().ListNeedingRefresh(ctx, gomock.Any(), 50).
		Return(nil, errors.New("db down"))

	stats, err := s.service.RefreshStale(ctx)

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "list notes")
}

func (s *RecommendationServiceTestSuite) TestRefreshStale_PublisherNil() {
	ctx := context.Background()

	service := NewRecommendationService(
		s.notes,
		s.recs,
		s.extractor,
		s.videos,
		s.txManager,
		nil,
		s.logger,
		s.cfg,
	)

	notes := []domain.Note{{ID: 7, Title: "Astronomy", Status: "approved"}}

	s.notes.EXPECT().ListNeedingRefresh(ctx, gomock.Any(), 50).Return(notes, nil)
	s.extractor.EXPECT().Extract(gomock.Any()).Return([]string{"astronomy"})
	s.videos.EXPECT().FindRelated(ctx, []string{"astronomy"}, 5).Return([]domain.Video{}, nil)
	s.recs.EXPECT().GetByNoteID(ctx, int64(7)).Return(nil, nil)
	s.expectTransaction(ctx)
	s.recs.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(1), nil)

	stats, err := service.RefreshStale(ctx)

	s.NoError(err)
	s.Equal(1, stats.Refreshed)
	s.Equal(0, stats.Published)
}
