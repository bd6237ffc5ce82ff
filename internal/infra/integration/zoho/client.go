package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/xavierca1/canchoice-leads/internal/entity"
)

const DefaultBaseURL = "https://www.zohoapis.com/crm/v6"

// Client talks to the CRM's Leads module. One per process; the embedded
// token cache is shared by all calls.
type Client struct {
	cfg    Config
	tokens *TokenCache
	http   *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	httpClient := &http.Client{Timeout: 15 * time.Second}
	return &Client{
		cfg:    cfg,
		tokens: NewTokenCache(cfg, httpClient),
		http:   httpClient,
	}
}

// SearchLeads runs the given filter expression against the Leads search
// endpoint and returns the raw records. It does not interpret statuses;
// duplicate classification happens in the use case layer.
func (c *Client) SearchLeads(ctx context.Context, criteria string) ([]entity.LeadRecord, error) {
	if c.cfg.OrgID == "" {
		return nil, &ConfigError{Missing: "ZOHO_ORG_ID"}
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/Leads/search?criteria=%s", c.cfg.BaseURL, url.QueryEscape(criteria))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("zoho search request: %w", err)
	}
	defer resp.Body.Close()

	// The CRM answers 204 when nothing matches.
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("zoho search decode: %w", err)
	}
	return result.Data, nil
}

// CreateLead submits the field mapping as a single-element batch and returns
// the CRM's response envelope verbatim. Field names are not validated here;
// the intake form owns the schema.
func (c *Client) CreateLead(ctx context.Context, fields map[string]any) (map[string]any, error) {
	if c.cfg.OrgID == "" {
		return nil, &ConfigError{Missing: "ZOHO_ORG_ID"}
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"data": []map[string]any{fields},
	}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("zoho create marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/Leads", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("zoho create request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var envelope map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("zoho create decode: %w", err)
	}
	return envelope, nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token)
	req.Header.Set("X-CRM-ORG", c.cfg.OrgID)
}
