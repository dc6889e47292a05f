package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"notenest/internal/domain"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// YouTube Data API category for education.
	educationCategoryID = "27"
)

// Config holds YouTube client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the YouTube Data API v3. A client without an API key is
// valid: every lookup degrades to an empty result with a logged warning
// and no network call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// New creates a new YouTube client.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		logger:  logger.With("component", "youtube"),
	}
}

// FindRelated searches for education-category videos matching the keywords
// and joins duration and statistics onto each hit. The join is a left
// join: a video missing from the details response is kept with nil
// duration and counts.
func (c *Client) FindRelated(ctx context.Context, keywords []string, maxResults int) ([]domain.Video, error) {
	if c.apiKey == "" {
		c.logger.Warn("api key not configured, skipping video lookup")
		return []domain.Video{}, nil
	}

	query := strings.Join(keywords, " ")
	search, err := c.search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}
	if len(search.Items) == 0 {
		return []domain.Video{}, nil
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		ids = append(ids, item.ID.VideoID)
	}

	details, err := c.videosInfo(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("video details: %w", err)
	}

	byID := make(map[string]VideosItem, len(details.Items))
	for _, item := range details.Items {
		byID[item.ID] = item
	}

	videos := make([]domain.Video, 0, len(search.Items))
	for _, item := range search.Items {
		videos = append(videos, c.transform(item, byID))
	}

	c.logger.Debug("found related videos", "query", query, "count", len(videos))

	return videos, nil
}

func (c *Client) search(ctx context.Context, query string, maxResults int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("videoCategoryId", educationCategoryID)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("order", "relevance")

	var resp SearchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) videosInfo(ctx context.Context, ids []string) (*VideosResponse, error) {
	params := url.Values{}
	params.Set("part", "contentDetails,statistics")
	params.Set("id", strings.Join(ids, ","))

	var resp VideosResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) transform(item SearchItem, details map[string]VideosItem) domain.Video {
	publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	if err != nil {
		c.logger.Warn("failed to parse publish date",
			"video_id", item.ID.VideoID,
			"published_at", item.Snippet.PublishedAt,
		)
	}

	thumbnail := item.Snippet.Thumbnails.Medium.URL
	if thumbnail == "" {
		thumbnail = item.Snippet.Thumbnails.Default.URL
	}

	video := domain.Video{
		ID:           item.ID.VideoID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Thumbnail:    thumbnail,
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  publishedAt,
		URL:          "https://www.youtube.com/watch?v=" + item.ID.VideoID,
	}

	if d, ok := details[item.ID.VideoID]; ok {
		video.Duration = FormatDuration(d.ContentDetails.Duration)
		video.ViewCount = FormatCount(d.Statistics.ViewCount)
		video.LikeCount = FormatCount(d.Statistics.LikeCount)
	}

	return video
}
