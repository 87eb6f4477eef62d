package podcastindex

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("a", 500)

	truncated := truncateDescription(long, false)
	assert.Len(t, truncated, maxDescriptionLength+len(ellipsis))
	assert.True(t, strings.HasSuffix(truncated, ellipsis))

	assert.Equal(t, long, truncateDescription(long, true))

	short := "a short description"
	assert.Equal(t, short, truncateDescription(short, false))

	// Exactly at the limit: no ellipsis appended
	exact := strings.Repeat("b", maxDescriptionLength)
	assert.Equal(t, exact, truncateDescription(exact, false))
}

func TestTruncateDescriptionMultibyte(t *testing.T) {
	long := strings.Repeat("ü", 300)
	truncated := truncateDescription(long, false)
	assert.Equal(t, maxDescriptionLength+len(ellipsis), len([]rune(truncated)))
}

func TestNormalizePodcastPassesValueBlockThrough(t *testing.T) {
	f := feed{
		ID:    920666,
		Title: "Podcasting 2.0",
		Value: map[string]interface{}{
			"model": map[string]interface{}{"type": "lightning", "method": "keysend"},
		},
		Categories: map[string]string{"102": "Technology", "9": "News"},
	}

	result := normalizePodcast(&f, true)

	assert.Equal(t, int64(920666), result.ID)
	assert.Equal(t, f.Value, result.Value)
	assert.ElementsMatch(t, []string{"Technology", "News"}, result.Categories)
}

func TestNormalizedPodcastOmitsAbsentFields(t *testing.T) {
	result := normalizePodcast(&feed{ID: 920666, Title: "X"}, true)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))

	// Absent upstream fields must be omitted, not defaulted to "" or 0.
	assert.Equal(t, []string{"id", "title"}, sortedKeys(fields))
}

func TestNormalizeEpisodeFallsBackToFeedImage(t *testing.T) {
	e := episode{ID: 1, Title: "Ep", FeedImage: "https://example.com/feed.jpg"}
	result := normalizeEpisode(&e, true)
	assert.Equal(t, "https://example.com/feed.jpg", result.Image)

	e.Image = "https://example.com/ep.jpg"
	result = normalizeEpisode(&e, true)
	assert.Equal(t, "https://example.com/ep.jpg", result.Image)
}

func TestNormalizeEpisodePassesOpaqueStructures(t *testing.T) {
	persons := []interface{}{
		map[string]interface{}{"name": "Dave Jones", "role": "host"},
	}
	transcripts := []interface{}{
		map[string]interface{}{"url": "https://example.com/t.srt", "type": "application/srt"},
	}

	e := episode{ID: 1, Title: "Ep", Persons: persons, Transcripts: transcripts}
	result := normalizeEpisode(&e, true)

	assert.Equal(t, persons, result.Persons)
	assert.Equal(t, transcripts, result.Transcripts)
}

func TestNormalizeEpisodeListTruncates(t *testing.T) {
	long := strings.Repeat("x", 400)
	resp := episodeItemsResponse{
		Status: "true",
		Items:  []episode{{ID: 1, Title: "Ep", Description: long}},
		Count:  1,
	}

	results := normalizeEpisodeList(&resp, false)
	require.Len(t, results.Episodes, 1)
	assert.Len(t, results.Episodes[0].Description, maxDescriptionLength+len(ellipsis))

	results = normalizeEpisodeList(&resp, true)
	assert.Equal(t, long, results.Episodes[0].Description)
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
