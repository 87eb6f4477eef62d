package podcastindex

// Normalized result shapes returned to callers. Fields absent in a given
// upstream response are omitted from the JSON encoding rather than
// defaulted to misleading zero values.

const (
	// maxDescriptionLength is the truncation limit applied to description
	// fields unless the caller requested full text.
	maxDescriptionLength = 200
	ellipsis             = "..."
)

// PodcastResult is a normalized podcast feed
type PodcastResult struct {
	ID           int64                  `json:"id"`
	Title        string                 `json:"title"`
	Author       string                 `json:"author,omitempty"`
	OwnerName    string                 `json:"ownerName,omitempty"`
	Description  string                 `json:"description,omitempty"`
	Link         string                 `json:"link,omitempty"`
	FeedURL      string                 `json:"feedUrl,omitempty"`
	Image        string                 `json:"image,omitempty"`
	Artwork      string                 `json:"artwork,omitempty"`
	Language     string                 `json:"language,omitempty"`
	Categories   []string               `json:"categories,omitempty"`
	ITunesID     int64                  `json:"itunesId,omitempty"`
	EpisodeCount int                    `json:"episodeCount,omitempty"`
	LastUpdated  int64                  `json:"lastUpdated,omitempty"`
	Value        map[string]interface{} `json:"value,omitempty"`
}

// EpisodeResult is a normalized episode
type EpisodeResult struct {
	ID            int64                  `json:"id"`
	PodcastID     int64                  `json:"podcastId,omitempty"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description,omitempty"`
	Link          string                 `json:"link,omitempty"`
	AudioURL      string                 `json:"audioUrl,omitempty"`
	Duration      int                    `json:"duration,omitempty"`
	PublishedAt   int64                  `json:"publishedAt,omitempty"`
	Image         string                 `json:"image,omitempty"`
	FeedTitle     string                 `json:"feedTitle,omitempty"`
	Episode       int                    `json:"episode,omitempty"`
	Season        int                    `json:"season,omitempty"`
	ChaptersURL   string                 `json:"chaptersUrl,omitempty"`
	TranscriptURL string                 `json:"transcriptUrl,omitempty"`
	Persons       []interface{}          `json:"persons,omitempty"`
	Transcripts   []interface{}          `json:"transcripts,omitempty"`
	Value         map[string]interface{} `json:"value,omitempty"`
}

// PodcastResults is a normalized podcast list with upstream counts
type PodcastResults struct {
	Count    int             `json:"count"`
	Query    string          `json:"query,omitempty"`
	Podcasts []PodcastResult `json:"podcasts"`
}

// EpisodeResults is a normalized episode list with upstream counts
type EpisodeResults struct {
	Count    int             `json:"count"`
	Query    string          `json:"query,omitempty"`
	Episodes []EpisodeResult `json:"episodes"`
}

// truncateDescription shortens a description to the fixed limit with an
// ellipsis marker unless full text was requested. Truncation happens here
// because some upstream endpoints always return full text regardless of
// the fulltext query parameter.
func truncateDescription(s string, fullText bool) string {
	if fullText {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxDescriptionLength {
		return s
	}
	return string(runes[:maxDescriptionLength]) + ellipsis
}

// normalizePodcast maps an upstream feed to a PodcastResult
func normalizePodcast(f *feed, fullText bool) PodcastResult {
	// Categories arrive as an id->name map; only the names are useful.
	var categories []string
	for _, name := range f.Categories {
		if name != "" {
			categories = append(categories, name)
		}
	}

	return PodcastResult{
		ID:           f.ID,
		Title:        f.Title,
		Author:       f.Author,
		OwnerName:    f.OwnerName,
		Description:  truncateDescription(f.Description, fullText),
		Link:         f.Link,
		FeedURL:      f.URL,
		Image:        f.Image,
		Artwork:      f.Artwork,
		Language:     f.Language,
		Categories:   categories,
		ITunesID:     f.ITunesID,
		EpisodeCount: f.EpisodeCount,
		LastUpdated:  f.LastUpdateTime,
		Value:        f.Value,
	}
}

// normalizeEpisode maps an upstream episode to an EpisodeResult
func normalizeEpisode(e *episode, fullText bool) EpisodeResult {
	// Use the episode image if available, otherwise fall back to the feed image
	image := e.Image
	if image == "" {
		image = e.FeedImage
	}

	return EpisodeResult{
		ID:            e.ID,
		PodcastID:     e.FeedID,
		Title:         e.Title,
		Description:   truncateDescription(e.Description, fullText),
		Link:          e.Link,
		AudioURL:      e.EnclosureURL,
		Duration:      e.Duration,
		PublishedAt:   e.DatePublished,
		Image:         image,
		FeedTitle:     e.FeedTitle,
		Episode:       e.Episode,
		Season:        e.Season,
		ChaptersURL:   e.ChaptersURL,
		TranscriptURL: e.TranscriptURL,
		Persons:       e.Persons,
		Transcripts:   e.Transcripts,
		Value:         e.Value,
	}
}

func normalizePodcastList(resp *feedsResponse, fullText bool) *PodcastResults {
	podcasts := make([]PodcastResult, 0, len(resp.Feeds))
	for i := range resp.Feeds {
		podcasts = append(podcasts, normalizePodcast(&resp.Feeds[i], fullText))
	}
	return &PodcastResults{
		Count:    resp.Count,
		Query:    resp.Query,
		Podcasts: podcasts,
	}
}

func normalizeEpisodeList(resp *episodeItemsResponse, fullText bool) *EpisodeResults {
	episodes := make([]EpisodeResult, 0, len(resp.Items))
	for i := range resp.Items {
		episodes = append(episodes, normalizeEpisode(&resp.Items[i], fullText))
	}
	return &EpisodeResults{
		Count:    resp.Count,
		Query:    resp.Query,
		Episodes: episodes,
	}
}
