package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"notenest/internal/domain"
)

type NoteStore struct {
	db *sqlx.DB
}

func NewNoteStore(db *sqlx.DB) *NoteStore {
	return &NoteStore{db: db}
}

const noteColumns = `id, title, subject, description, summary, content,
	file_url, page_count, download_count, difficulty, status,
	created_at, updated_at`

func (s *NoteStore) Create(ctx context.Context, note *domain.Note) (int64, error) {
	query := `
		INSERT INTO notes (
			title, subject, description, summary, content,
			file_url, page_count, download_count, difficulty, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		note.Title,
		note.Subject,
		note.Description,
		note.Summary,
		note.Content,
		note.FileURL,
		note.PageCount,
		note.DownloadCount,
		note.Difficulty,
		note.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *NoteStore) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	var note domain.Note
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &note, query, id); err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNeedingRefresh returns approved notes with no cached recommendation
// or one generated before the cutoff.
func (s *NoteStore) ListNeedingRefresh(ctx context.Context, generatedBefore time.Time, limit int) ([]domain.Note, error) {
	query := `
		SELECT n.id, n.title, n.subject, n.description, n.summary, n.content,
			n.file_url, n.page_count, n.download_count, n.difficulty, n.status,
			n.created_at, n.updated_at
		FROM notes n
		LEFT JOIN recommendations r ON r.note_id = n.id
		WHERE n.status = 'approved'
			AND (r.id IS NULL OR r.generated_at < $1)
		ORDER BY n.id
		LIMIT $2`

	var notes []domain.Note
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &notes, query, generatedBefore, limit)
	return notes, err
}
