package domain

import "time"

// Video is a single related video with display-ready duration and counts.
// Duration and counts stay nil when the details lookup had no record for it.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Thumbnail    string    `json:"thumbnail"`
	ChannelTitle string    `json:"channelTitle"`
	PublishedAt  time.Time `json:"publishedAt"`
	Duration     *string   `json:"duration"`
	ViewCount    *string   `json:"viewCount"`
	LikeCount    *string   `json:"likeCount"`
	URL          string    `json:"url"`
}

type Recommendation struct {
	ID          int64
	NoteID      int64
	Keywords    []string
	Videos      []Video
	GeneratedAt time.Time
}

// RefreshStats holds statistics about a refresh run.
type RefreshStats struct {
	Scanned   int
	Refreshed int
	Errors    int
	Published int
	Duration  time.Duration
}
