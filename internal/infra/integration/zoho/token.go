package zoho

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// refreshMargin is how close to expiry a token may get before we swap it
// for a fresh one.
const refreshMargin = 5 * time.Minute

// TokenCache holds one access token per process and trades the long-lived
// refresh token for a new one when the current token is absent or about to
// expire. The whole check-then-refresh section runs under the mutex, so
// concurrent expirations trigger exactly one exchange.
type TokenCache struct {
	cfg  Config
	http *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewTokenCache(cfg Config, httpClient *http.Client) *TokenCache {
	return &TokenCache{
		cfg:  cfg,
		http: httpClient,
	}
}

// Token returns a valid access token, refreshing first if needed. A failed
// refresh leaves the previous credential in place.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Add(refreshMargin).Before(c.expiry) {
		return c.token, nil
	}

	if err := c.refresh(ctx); err != nil {
		return "", err
	}
	return c.token, nil
}

// refresh runs the refresh-token exchange. Caller holds the mutex.
func (c *TokenCache) refresh(ctx context.Context) error {
	switch {
	case c.cfg.RefreshToken == "":
		return &ConfigError{Missing: "ZOHO_REFRESH_TOKEN"}
	case c.cfg.ClientID == "":
		return &ConfigError{Missing: "ZOHO_CLIENT_ID"}
	case c.cfg.ClientSecret == "":
		return &ConfigError{Missing: "ZOHO_CLIENT_SECRET"}
	case c.cfg.TokenURL == "":
		return &ConfigError{Missing: "ZOHO_REFRESH_TOKEN_URL"}
	}

	params := url.Values{}
	params.Set("refresh_token", c.cfg.RefreshToken)
	params.Set("client_id", c.cfg.ClientID)
	params.Set("client_secret", c.cfg.ClientSecret)
	params.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(params.Encode()))
	if err != nil {
		return &AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return &AuthError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var data tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return &AuthError{Err: err}
	}

	c.token = data.AccessToken
	c.expiry = time.Now().Add(time.Duration(data.ExpiresIn) * time.Second)

	log.Printf("[zoho] access token refreshed, valid for %ds", data.ExpiresIn)
	return nil
}
