package types

// Tool argument shapes. Field names follow the upstream query parameter
// names so agent-facing schemas and wire payloads stay aligned.

// SearchPodcastsRequest carries arguments for the search_podcasts tool
type SearchPodcastsRequest struct {
	Query    string `json:"q"`
	Max      int    `json:"max,omitempty"`
	Val      string `json:"val,omitempty"`
	Clean    bool   `json:"clean,omitempty"`
	FullText bool   `json:"fulltext,omitempty"`
	APOnly   bool   `json:"aponly,omitempty"`
	Similar  bool   `json:"similar,omitempty"`
}

// SearchPodcastsByTitleRequest carries arguments for search_podcasts_by_title
type SearchPodcastsByTitleRequest struct {
	Query    string `json:"q"`
	Max      int    `json:"max,omitempty"`
	Val      string `json:"val,omitempty"`
	Clean    bool   `json:"clean,omitempty"`
	FullText bool   `json:"fulltext,omitempty"`
	Similar  bool   `json:"similar,omitempty"`
}

// SearchEpisodesByPersonRequest carries arguments for search_episodes_by_person
type SearchEpisodesByPersonRequest struct {
	Person   string `json:"person"`
	Max      int    `json:"max,omitempty"`
	FullText bool   `json:"fulltext,omitempty"`
}

// GetEpisodesByFeedRequest carries arguments for get_episodes_by_feed
type GetEpisodesByFeedRequest struct {
	FeedID   int64 `json:"id"`
	Since    int64 `json:"since,omitempty"`
	Max      int   `json:"max,omitempty"`
	FullText bool  `json:"fulltext,omitempty"`
}

// GetPodcastByIDRequest carries arguments for get_podcast_by_id
type GetPodcastByIDRequest struct {
	FeedID int64 `json:"id"`
}

// GetEpisodeByIDRequest carries arguments for get_episode_by_id
type GetEpisodeByIDRequest struct {
	EpisodeID int64 `json:"id"`
	FullText  bool  `json:"fulltext,omitempty"`
}
