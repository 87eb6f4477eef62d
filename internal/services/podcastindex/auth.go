package podcastindex

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/eugenechae/podcast-index-mcp/pkg/errors"
)

// AuthHeaders is the per-request authentication header set required by the
// Podcast Index API. Generated fresh per outbound request; the timestamp
// must be current within the upstream's tolerance window.
type AuthHeaders struct {
	UserAgent     string
	APIKey        string
	Timestamp     int64
	Authorization string
}

// Signer produces authentication headers from a credential pair and the
// current time. The clock is injected so tests can pin the timestamp.
type Signer struct {
	apiKey    string
	apiSecret string
	userAgent string
	now       func() time.Time
}

// NewSigner creates a Signer. Empty credentials fail here, once, so a
// missing credential is caught at startup rather than on the first request.
func NewSigner(apiKey, apiSecret, userAgent string) (*Signer, error) {
	if apiKey == "" {
		return nil, apperrors.ConfigError("API_KEY", "Podcast Index API key is required")
	}
	if apiSecret == "" {
		return nil, apperrors.ConfigError("API_SECRET", "Podcast Index API secret is required")
	}
	return &Signer{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		userAgent: userAgent,
		now:       time.Now,
	}, nil
}

// Headers generates the authentication header set for one request.
// Deterministic for a fixed (key, secret, timestamp) triple.
func (s *Signer) Headers() AuthHeaders {
	timestamp := s.now().Unix()

	// Auth hash: SHA1(apiKey + apiSecret + unixTime), no separators.
	authString := s.apiKey + s.apiSecret + strconv.FormatInt(timestamp, 10)
	h := sha1.New()
	h.Write([]byte(authString))

	return AuthHeaders{
		UserAgent:     s.userAgent,
		APIKey:        s.apiKey,
		Timestamp:     timestamp,
		Authorization: hex.EncodeToString(h.Sum(nil)),
	}
}

// Sign adds the required authentication headers to a Podcast Index API request
func (s *Signer) Sign(req *http.Request) {
	headers := s.Headers()
	req.Header.Set("X-Auth-Date", strconv.FormatInt(headers.Timestamp, 10))
	req.Header.Set("X-Auth-Key", headers.APIKey)
	req.Header.Set("Authorization", headers.Authorization)
	req.Header.Set("User-Agent", headers.UserAgent)
}
