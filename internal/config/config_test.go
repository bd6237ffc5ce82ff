package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailConfigured(t *testing.T) {
	cfg := &Config{MailHost: "smtp.example.com", DealerEmail: "dealer@example.com"}
	assert.True(t, cfg.MailConfigured())

	assert.False(t, (&Config{DealerEmail: "dealer@example.com"}).MailConfigured())
	assert.False(t, (&Config{MailHost: "smtp.example.com"}).MailConfigured())
	assert.False(t, (&Config{}).MailConfigured())
}

func TestCRMConfigured(t *testing.T) {
	cfg := &Config{
		ZohoRefreshToken: "rt",
		ZohoClientID:     "id",
		ZohoClientSecret: "secret",
		ZohoTokenURL:     "https://accounts.example.com/token",
		ZohoOrgID:        "org",
	}
	assert.True(t, cfg.CRMConfigured())

	cfg.ZohoOrgID = ""
	assert.False(t, cfg.CRMConfigured())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ZOHO_TIMEZONE", "not/a-zone")
	t.Setenv("MAIL_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, 587, cfg.MailPort)
}
