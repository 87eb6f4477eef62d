package types

import (
	"context"

	"github.com/eugenechae/podcast-index-mcp/internal/services/podcastindex"
)

// PodcastClient defines the interface for Podcast Index operations exposed
// as tools.
type PodcastClient interface {
	SearchPodcasts(ctx context.Context, params podcastindex.SearchParams) (*podcastindex.PodcastResults, error)
	SearchPodcastsByTitle(ctx context.Context, params podcastindex.SearchByTitleParams) (*podcastindex.PodcastResults, error)
	SearchEpisodesByPerson(ctx context.Context, params podcastindex.SearchByPersonParams) (*podcastindex.EpisodeResults, error)
	EpisodesByFeedID(ctx context.Context, params podcastindex.EpisodesByFeedParams) (*podcastindex.EpisodeResults, error)
	PodcastByFeedID(ctx context.Context, params podcastindex.PodcastByFeedIDParams) (*podcastindex.PodcastResult, error)
	EpisodeByID(ctx context.Context, params podcastindex.EpisodeByIDParams) (*podcastindex.EpisodeResult, error)
}
