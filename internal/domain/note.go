package domain

import "time"

type Note struct {
	ID            int64     `db:"id"`
	Title         string    `db:"title"`
	Subject       *string   `db:"subject"`
	Description   *string   `db:"description"`
	Summary       *string   `db:"summary"`
	Content       *string   `db:"content"`
	FileURL       string    `db:"file_url"`
	PageCount     int       `db:"page_count"`
	DownloadCount int       `db:"download_count"`
	Difficulty    string    `db:"difficulty"` // "Basic", "Intermediate" or "Advanced"
	Status        string    `db:"status"`     // "pending", "approved" or "rejected"
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
