package zoho

import "github.com/xavierca1/canchoice-leads/internal/entity"

// Config carries everything needed to talk to the CRM. All fields come
// from the environment; the client checks the ones each call requires.
type Config struct {
	RefreshToken string
	ClientID     string
	ClientSecret string
	TokenURL     string
	OrgID        string
	BaseURL      string
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}

type searchResponse struct {
	Data []entity.LeadRecord `json:"data"`
	Info map[string]any      `json:"info,omitempty"`
}
