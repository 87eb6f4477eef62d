package podcastindex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/eugenechae/podcast-index-mcp/pkg/errors"
)

// statusTrue is the upstream's logical-success flag, embedded as a string
// in every response body.
const statusTrue = "true"

// Client handles communication with the Podcast Index API. Each call is a
// single linear attempt (validate, sign, send, parse, normalize) with no
// retry state and no cross-call memory; concurrent calls share only the
// read-only credentials held by the signer.
type Client struct {
	httpClient *http.Client
	baseURL    string
	signer     *Signer
}

// Config holds configuration for the Podcast Index client
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a new Podcast Index API client. Missing credentials
// fail here with a configuration error, before any request is attempted.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.podcastindex.org/api/1.0"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "podcast-index-mcp/1.0"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	signer, err := NewSigner(cfg.APIKey, cfg.APISecret, cfg.UserAgent)
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		signer:     signer,
	}, nil
}

// makeAPIRequest performs one signed GET against an upstream endpoint and
// decodes the response into result. Normalization either fully succeeds or
// the call fails; no partial results are returned disguised as success.
func (c *Client) makeAPIRequest(ctx context.Context, endpoint string, params url.Values, result statusReporter) error {
	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "creating request")
	}

	c.signer.Sign(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return apperrors.TimeoutError(endpoint, err)
		}
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "executing request")
	}
	defer resp.Body.Close()

	// Retries, if any, belong to the caller. An authentication failure
	// (e.g. timestamp outside the upstream's tolerance window) surfaces
	// here as a 401.
	if resp.StatusCode != http.StatusOK {
		return apperrors.TransportError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return apperrors.UpstreamError("malformed response payload").WithCause(err)
	}

	if result.GetStatus() != statusTrue {
		message := result.GetDescription()
		if message == "" {
			message = "upstream returned error status"
		}
		return apperrors.UpstreamError(message)
	}

	return nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// SearchPodcasts searches for podcasts by general term (title, author and
// owner fields upstream).
func (c *Client) SearchPodcasts(ctx context.Context, params SearchParams) (*PodcastResults, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var resp feedsResponse
	if err := c.makeAPIRequest(ctx, "search/byterm", params.values(), &resp); err != nil {
		return nil, err
	}

	return normalizePodcastList(&resp, params.FullText), nil
}

// SearchPodcastsByTitle searches for podcasts matching the title field only.
func (c *Client) SearchPodcastsByTitle(ctx context.Context, params SearchByTitleParams) (*PodcastResults, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var resp feedsResponse
	if err := c.makeAPIRequest(ctx, "search/bytitle", params.values(), &resp); err != nil {
		return nil, err
	}

	return normalizePodcastList(&resp, params.FullText), nil
}

// SearchEpisodesByPerson searches episodes mentioning a person.
func (c *Client) SearchEpisodesByPerson(ctx context.Context, params SearchByPersonParams) (*EpisodeResults, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var resp episodeItemsResponse
	if err := c.makeAPIRequest(ctx, "search/byperson", params.values(), &resp); err != nil {
		return nil, err
	}

	return normalizeEpisodeList(&resp, params.FullText), nil
}

// EpisodesByFeedID lists a feed's episodes, reverse-chronological.
func (c *Client) EpisodesByFeedID(ctx context.Context, params EpisodesByFeedParams) (*EpisodeResults, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var resp episodeItemsResponse
	if err := c.makeAPIRequest(ctx, "episodes/byfeedid", params.values(), &resp); err != nil {
		return nil, err
	}

	return normalizeEpisodeList(&resp, params.FullText), nil
}

// PodcastByFeedID fetches a single podcast's details by feed ID. The
// details endpoint always returns full text, so no truncation is applied.
func (c *Client) PodcastByFeedID(ctx context.Context, params PodcastByFeedIDParams) (*PodcastResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var resp podcastByIDResponse
	if err := c.makeAPIRequest(ctx, "podcasts/byfeedid", params.values(), &resp); err != nil {
		return nil, err
	}

	podcast := normalizePodcast(&resp.Feed, true)
	return &podcast, nil
}

// EpisodeByID fetches a single episode by its Podcast Index ID.
func (c *Client) EpisodeByID(ctx context.Context, params EpisodeByIDParams) (*EpisodeResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var resp episodeByIDResponse
	if err := c.makeAPIRequest(ctx, "episodes/byid", params.values(), &resp); err != nil {
		return nil, err
	}

	result := normalizeEpisode(&resp.Episode, params.FullText)
	return &result, nil
}
