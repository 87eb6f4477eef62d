package podcastindex

import (
	"testing"

	apperrors "github.com/eugenechae/podcast-index-mcp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params SearchParams
		field  string // empty means valid
	}{
		{"valid minimal", SearchParams{Query: "go time"}, ""},
		{"valid full", SearchParams{Query: "go time", Max: 50, Val: "lightning", Clean: true, FullText: true, APOnly: true, Similar: true}, ""},
		{"empty query", SearchParams{Query: ""}, "q"},
		{"whitespace query", SearchParams{Query: "   "}, "q"},
		{"max too small", SearchParams{Query: "x", Max: -1}, "max"},
		{"max too large", SearchParams{Query: "x", Max: 1001}, "max"},
		{"max at ceiling", SearchParams{Query: "x", Max: 1000}, ""},
		{"unknown val", SearchParams{Query: "x", Val: "bitcoin"}, "val"},
		{"val any", SearchParams{Query: "x", Val: "any"}, ""},
		{"val hive", SearchParams{Query: "x", Val: "hive"}, ""},
		{"val webmonetization", SearchParams{Query: "x", Val: "webmonetization"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}
}

func TestSearchParamsEncoding(t *testing.T) {
	v := SearchParams{Query: "go time", Max: 50, Val: "lightning", Clean: true, FullText: true, APOnly: true, Similar: true}.values()

	assert.Equal(t, "go time", v.Get("q"))
	assert.Equal(t, "50", v.Get("max"))
	assert.Equal(t, "lightning", v.Get("val"))
	assert.Equal(t, "true", v.Get("clean"))
	assert.Equal(t, "true", v.Get("fulltext"))
	assert.Equal(t, "true", v.Get("aponly"))
	assert.Equal(t, "true", v.Get("similar"))
}

func TestBooleanFlagsOmittedWhenFalse(t *testing.T) {
	// Presence implies true upstream; false must encode as omission,
	// not as a falsy token.
	v := SearchParams{Query: "go time"}.values()

	for _, key := range []string{"clean", "fulltext", "aponly", "similar", "val"} {
		_, present := v[key]
		assert.False(t, present, "key %q should be omitted", key)
	}
}

func TestMaxDefaultsWhenAbsent(t *testing.T) {
	v := SearchParams{Query: "go time"}.values()
	assert.Equal(t, "10", v.Get("max"))
}

func TestSearchByTitleParams(t *testing.T) {
	err := SearchByTitleParams{Query: ""}.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	v := SearchByTitleParams{Query: "Serial", Similar: true}.values()
	assert.Equal(t, "Serial", v.Get("q"))
	assert.Equal(t, "true", v.Get("similar"))
	_, present := v["aponly"]
	assert.False(t, present, "title search has no aponly flag")
}

func TestSearchByPersonParams(t *testing.T) {
	err := SearchByPersonParams{Person: " "}.Validate()
	require.Error(t, err)

	v := SearchByPersonParams{Person: "Adam Curry", Max: 5, FullText: true}.values()
	assert.Equal(t, "Adam Curry", v.Get("q"))
	assert.Equal(t, "5", v.Get("max"))
	assert.Equal(t, "true", v.Get("fulltext"))
}

func TestEpisodesByFeedParams(t *testing.T) {
	tests := []struct {
		name   string
		params EpisodesByFeedParams
		field  string
	}{
		{"valid", EpisodesByFeedParams{FeedID: 920666}, ""},
		{"valid with since", EpisodesByFeedParams{FeedID: 920666, Since: 1700000000}, ""},
		{"zero id", EpisodesByFeedParams{FeedID: 0}, "id"},
		{"negative id", EpisodesByFeedParams{FeedID: -3}, "id"},
		{"negative since", EpisodesByFeedParams{FeedID: 920666, Since: -1}, "since"},
		{"bad max", EpisodesByFeedParams{FeedID: 920666, Max: 5000}, "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}

	v := EpisodesByFeedParams{FeedID: 920666, Since: 1700000000, FullText: true}.values()
	assert.Equal(t, "920666", v.Get("id"))
	assert.Equal(t, "1700000000", v.Get("since"))
	assert.Equal(t, "true", v.Get("fulltext"))

	// since=0 means no lower bound and is omitted
	v = EpisodesByFeedParams{FeedID: 920666}.values()
	_, present := v["since"]
	assert.False(t, present)
}

func TestIDParams(t *testing.T) {
	assert.Error(t, PodcastByFeedIDParams{FeedID: 0}.Validate())
	assert.Error(t, PodcastByFeedIDParams{FeedID: -1}.Validate())
	assert.NoError(t, PodcastByFeedIDParams{FeedID: 920666}.Validate())

	assert.Error(t, EpisodeByIDParams{EpisodeID: 0}.Validate())
	assert.NoError(t, EpisodeByIDParams{EpisodeID: 16795090}.Validate())

	v := EpisodeByIDParams{EpisodeID: 16795090, FullText: true}.values()
	assert.Equal(t, "16795090", v.Get("id"))
	assert.Equal(t, "true", v.Get("fulltext"))
}
