package podcastindex

import (
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/eugenechae/podcast-index-mcp/pkg/errors"
)

const (
	// defaultMax is sent when the caller does not request a result limit.
	defaultMax = 10
	// maxResults is the upstream's documented ceiling for the max parameter.
	maxResults = 1000
)

// valueBlockTypes is the fixed set of accepted value-block filters.
var valueBlockTypes = map[string]bool{
	"any":             true,
	"lightning":       true,
	"hive":            true,
	"webmonetization": true,
}

// setFlag encodes the upstream's "presence implies true" boolean
// convention: the key is set to the truthy token only when the flag is
// true, and omitted entirely otherwise. An explicit falsy value is not
// equivalent to omission for this upstream.
func setFlag(v url.Values, key string, flag bool) {
	if flag {
		v.Set(key, "true")
	}
}

func setMax(v url.Values, max int) {
	if max == 0 {
		max = defaultMax
	}
	v.Set("max", strconv.Itoa(max))
}

func validateMax(max int) error {
	if max == 0 {
		return nil
	}
	if max < 1 || max > maxResults {
		return apperrors.ValidationError("max", "must be between 1 and 1000")
	}
	return nil
}

func validateVal(val string) error {
	if val == "" {
		return nil
	}
	if !valueBlockTypes[val] {
		return apperrors.ValidationError("val", "must be one of: any, lightning, hive, webmonetization")
	}
	return nil
}

// SearchParams holds parameters for a general-term podcast search.
// Zero values mean "not provided": Max 0 falls back to the default limit
// and Val "" applies no value-block filter.
type SearchParams struct {
	Query    string
	Max      int
	Val      string
	Clean    bool
	FullText bool
	APOnly   bool
	Similar  bool
}

// Validate rejects bad input before any network call is attempted.
func (p SearchParams) Validate() error {
	if strings.TrimSpace(p.Query) == "" {
		return apperrors.ValidationError("q", "search term must not be empty")
	}
	if err := validateMax(p.Max); err != nil {
		return err
	}
	return validateVal(p.Val)
}

func (p SearchParams) values() url.Values {
	v := url.Values{}
	v.Set("q", p.Query)
	setMax(v, p.Max)
	if p.Val != "" {
		v.Set("val", p.Val)
	}
	setFlag(v, "clean", p.Clean)
	setFlag(v, "fulltext", p.FullText)
	setFlag(v, "aponly", p.APOnly)
	setFlag(v, "similar", p.Similar)
	return v
}

// SearchByTitleParams holds parameters for a title-field podcast search.
type SearchByTitleParams struct {
	Query    string
	Max      int
	Val      string
	Clean    bool
	FullText bool
	Similar  bool
}

// Validate rejects bad input before any network call is attempted.
func (p SearchByTitleParams) Validate() error {
	if strings.TrimSpace(p.Query) == "" {
		return apperrors.ValidationError("q", "search term must not be empty")
	}
	if err := validateMax(p.Max); err != nil {
		return err
	}
	return validateVal(p.Val)
}

func (p SearchByTitleParams) values() url.Values {
	v := url.Values{}
	v.Set("q", p.Query)
	setMax(v, p.Max)
	if p.Val != "" {
		v.Set("val", p.Val)
	}
	setFlag(v, "clean", p.Clean)
	setFlag(v, "fulltext", p.FullText)
	setFlag(v, "similar", p.Similar)
	return v
}

// SearchByPersonParams holds parameters for an episode search by person
// name (matched against person tags, titles and descriptions upstream).
type SearchByPersonParams struct {
	Person   string
	Max      int
	FullText bool
}

// Validate rejects bad input before any network call is attempted.
func (p SearchByPersonParams) Validate() error {
	if strings.TrimSpace(p.Person) == "" {
		return apperrors.ValidationError("person", "person name must not be empty")
	}
	return validateMax(p.Max)
}

func (p SearchByPersonParams) values() url.Values {
	v := url.Values{}
	v.Set("q", p.Person)
	setMax(v, p.Max)
	setFlag(v, "fulltext", p.FullText)
	return v
}

// EpisodesByFeedParams holds parameters for listing a feed's episodes,
// returned reverse-chronologically by the upstream. Since 0 means "no
// lower bound" and is omitted from the query.
type EpisodesByFeedParams struct {
	FeedID   int64
	Since    int64
	Max      int
	FullText bool
}

// Validate rejects bad input before any network call is attempted.
func (p EpisodesByFeedParams) Validate() error {
	if p.FeedID <= 0 {
		return apperrors.ValidationError("id", "feed id must be a positive integer")
	}
	if p.Since < 0 {
		return apperrors.ValidationError("since", "must be a unix timestamp >= 0")
	}
	return validateMax(p.Max)
}

func (p EpisodesByFeedParams) values() url.Values {
	v := url.Values{}
	v.Set("id", strconv.FormatInt(p.FeedID, 10))
	if p.Since > 0 {
		v.Set("since", strconv.FormatInt(p.Since, 10))
	}
	setMax(v, p.Max)
	setFlag(v, "fulltext", p.FullText)
	return v
}

// PodcastByFeedIDParams holds parameters for fetching feed details.
type PodcastByFeedIDParams struct {
	FeedID int64
}

// Validate rejects bad input before any network call is attempted.
func (p PodcastByFeedIDParams) Validate() error {
	if p.FeedID <= 0 {
		return apperrors.ValidationError("id", "feed id must be a positive integer")
	}
	return nil
}

func (p PodcastByFeedIDParams) values() url.Values {
	v := url.Values{}
	v.Set("id", strconv.FormatInt(p.FeedID, 10))
	return v
}

// EpisodeByIDParams holds parameters for fetching a single episode.
type EpisodeByIDParams struct {
	EpisodeID int64
	FullText  bool
}

// Validate rejects bad input before any network call is attempted.
func (p EpisodeByIDParams) Validate() error {
	if p.EpisodeID <= 0 {
		return apperrors.ValidationError("id", "episode id must be a positive integer")
	}
	return nil
}

func (p EpisodeByIDParams) values() url.Values {
	v := url.Values{}
	v.Set("id", strconv.FormatInt(p.EpisodeID, 10))
	setFlag(v, "fulltext", p.FullText)
	return v
}
