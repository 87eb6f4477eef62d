package podcastindex

// Raw payload shapes as returned by the Podcast Index API. Nested
// substructures whose schema is upstream-defined (value blocks, person
// tags, transcripts) are decoded as opaque values and passed through
// unmodified.

// feed is a podcast feed as returned by the upstream API
type feed struct {
	ID             int64                  `json:"id"`
	PodcastGUID    string                 `json:"podcastGuid"`
	Title          string                 `json:"title"`
	URL            string                 `json:"url"`
	OriginalURL    string                 `json:"originalUrl"`
	Link           string                 `json:"link"`
	Description    string                 `json:"description"`
	Author         string                 `json:"author"`
	OwnerName      string                 `json:"ownerName"`
	Image          string                 `json:"image"`
	Artwork        string                 `json:"artwork"`
	LastUpdateTime int64                  `json:"lastUpdateTime"`
	Language       string                 `json:"language"`
	Categories     map[string]string      `json:"categories"`
	EpisodeCount   int                    `json:"episodeCount"`
	ITunesID       int64                  `json:"itunesId"`
	Value          map[string]interface{} `json:"value"`
}

// episode is an episode item as returned by the upstream API
type episode struct {
	ID              int64                  `json:"id"`
	Title           string                 `json:"title"`
	Link            string                 `json:"link"`
	Description     string                 `json:"description"`
	GUID            string                 `json:"guid"`
	DatePublished   int64                  `json:"datePublished"`
	EnclosureURL    string                 `json:"enclosureUrl"`
	EnclosureType   string                 `json:"enclosureType"`
	EnclosureLength int64                  `json:"enclosureLength"`
	Duration        int                    `json:"duration"`
	Episode         int                    `json:"episode"`
	Season          int                    `json:"season"`
	Image           string                 `json:"image"`
	FeedImage       string                 `json:"feedImage"`
	FeedID          int64                  `json:"feedId"`
	FeedTitle       string                 `json:"feedTitle"`
	FeedLanguage    string                 `json:"feedLanguage"`
	ChaptersURL     string                 `json:"chaptersUrl"`
	TranscriptURL   string                 `json:"transcriptUrl"`
	Persons         []interface{}          `json:"persons"`
	Transcripts     []interface{}          `json:"transcripts"`
	Value           map[string]interface{} `json:"value"`
}

// statusReporter lets the request helper check the logical status flag
// that the upstream embeds in every response body.
type statusReporter interface {
	GetStatus() string
	GetDescription() string
}

// feedsResponse is the envelope for search/byterm and search/bytitle
type feedsResponse struct {
	Status      string `json:"status"`
	Feeds       []feed `json:"feeds"`
	Count       int    `json:"count"`
	Query       string `json:"query"`
	Description string `json:"description"`
}

func (r *feedsResponse) GetStatus() string      { return r.Status }
func (r *feedsResponse) GetDescription() string { return r.Description }

// episodeItemsResponse is the envelope for search/byperson and
// episodes/byfeedid
type episodeItemsResponse struct {
	Status      string    `json:"status"`
	Items       []episode `json:"items"`
	Count       int       `json:"count"`
	Query       string    `json:"query"`
	Description string    `json:"description"`
}

func (r *episodeItemsResponse) GetStatus() string      { return r.Status }
func (r *episodeItemsResponse) GetDescription() string { return r.Description }

// podcastByIDResponse is the envelope for podcasts/byfeedid
type podcastByIDResponse struct {
	Status      string `json:"status"`
	Feed        feed   `json:"feed"`
	Description string `json:"description"`
}

func (r *podcastByIDResponse) GetStatus() string      { return r.Status }
func (r *podcastByIDResponse) GetDescription() string { return r.Description }

// episodeByIDResponse is the envelope for episodes/byid
type episodeByIDResponse struct {
	Status      string  `json:"status"`
	Episode     episode `json:"episode"`
	Description string  `json:"description"`
}

func (r *episodeByIDResponse) GetStatus() string      { return r.Status }
func (r *episodeByIDResponse) GetDescription() string { return r.Description }
