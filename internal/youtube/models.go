package youtube

// SearchResponse represents the search endpoint payload.
type SearchResponse struct {
	Items []SearchItem `json:"items"`
}

type SearchItem struct {
	ID      SearchID `json:"id"`
	Snippet Snippet  `json:"snippet"`
}

type SearchID struct {
	VideoID string `json:"videoId"`
}

type Snippet struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

type Thumbnails struct {
	Medium  Thumbnail `json:"medium"`
	Default Thumbnail `json:"default"`
}

type Thumbnail struct {
	URL string `json:"url"`
}

// VideosResponse represents the videos endpoint payload.
type VideosResponse struct {
	Items []VideosItem `json:"items"`
}

type VideosItem struct {
	ID             string         `json:"id"`
	ContentDetails ContentDetails `json:"contentDetails"`
	Statistics     Statistics     `json:"statistics"`
}

type ContentDetails struct {
	Duration string `json:"duration"`
}

type Statistics struct {
	ViewCount string `json:"viewCount"`
	LikeCount string `json:"likeCount"`
}
