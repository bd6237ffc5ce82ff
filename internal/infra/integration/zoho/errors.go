package zoho

import "fmt"

// ConfigError means a required environment setting is absent. The request
// cannot proceed and is surfaced as a 500 by the HTTP layer.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("zoho: missing configuration: %s", e.Missing)
}

// AuthError means the refresh-token exchange failed.
type AuthError struct {
	Status int
	Body   string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("zoho: token refresh failed: %v", e.Err)
	}
	return fmt.Sprintf("zoho: token refresh failed: status %d: %s", e.Status, e.Body)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UpstreamError carries the CRM's own status and body for a rejected
// search or create call.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("zoho: upstream status %d: %s", e.Status, e.Body)
}
