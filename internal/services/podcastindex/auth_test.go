package podcastindex

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"testing"
	"time"

	apperrors "github.com/eugenechae/podcast-index-mcp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func TestNewSignerRequiresCredentials(t *testing.T) {
	_, err := NewSigner("", "secret", "TestAgent/1.0")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfiguration))

	_, err = NewSigner("key", "", "TestAgent/1.0")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfiguration))
}

func TestHeadersDeterministic(t *testing.T) {
	signer, err := NewSigner("test-key", "test-secret", "TestAgent/1.0")
	require.NoError(t, err)
	signer.now = fixedClock(1700000000)

	first := signer.Headers()
	second := signer.Headers()

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1700000000), first.Timestamp)
	assert.Equal(t, "test-key", first.APIKey)
	assert.Equal(t, "TestAgent/1.0", first.UserAgent)

	sum := sha1.Sum([]byte("test-key" + "test-secret" + "1700000000"))
	assert.Equal(t, hex.EncodeToString(sum[:]), first.Authorization)
}

func TestHeadersChangeWithInputs(t *testing.T) {
	signer, err := NewSigner("test-key", "test-secret", "TestAgent/1.0")
	require.NoError(t, err)
	signer.now = fixedClock(1700000000)
	base := signer.Headers()

	// Different timestamp
	signer.now = fixedClock(1700000001)
	assert.NotEqual(t, base.Authorization, signer.Headers().Authorization)

	// Different key
	other, err := NewSigner("other-key", "test-secret", "TestAgent/1.0")
	require.NoError(t, err)
	other.now = fixedClock(1700000000)
	assert.NotEqual(t, base.Authorization, other.Headers().Authorization)

	// Different secret
	other, err = NewSigner("test-key", "other-secret", "TestAgent/1.0")
	require.NoError(t, err)
	other.now = fixedClock(1700000000)
	assert.NotEqual(t, base.Authorization, other.Headers().Authorization)
}

func TestSignSetsRequestHeaders(t *testing.T) {
	signer, err := NewSigner("test-key", "test-secret", "TestAgent/1.0")
	require.NoError(t, err)
	signer.now = fixedClock(1700000000)

	req, err := http.NewRequest(http.MethodGet, "https://api.example.com/search/byterm", nil)
	require.NoError(t, err)

	signer.Sign(req)

	assert.Equal(t, "test-key", req.Header.Get("X-Auth-Key"))
	assert.Equal(t, "1700000000", req.Header.Get("X-Auth-Date"))
	assert.Equal(t, "TestAgent/1.0", req.Header.Get("User-Agent"))
	assert.Len(t, req.Header.Get("Authorization"), 40) // hex SHA-1
}
