package zoho

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient returns a client pointed at srv with a pre-warmed token, so no
// exchange happens mid-test.
func testClient(srv *httptest.Server) *Client {
	c := NewClient(Config{
		OrgID:   "org-1",
		BaseURL: srv.URL,
	})
	c.tokens.token = "tok-1"
	c.tokens.expiry = time.Now().Add(time.Hour)
	return c
}

func TestSearchLeadsSendsCriteriaAndHeaders(t *testing.T) {
	var gotPath, gotCriteria, gotAuth, gotOrg string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCriteria = r.URL.Query().Get("criteria")
		gotAuth = r.Header.Get("Authorization")
		gotOrg = r.Header.Get("X-CRM-ORG")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"101","Lead_Status":"Contacted"}]}`))
	}))
	defer srv.Close()

	c := testClient(srv)

	records, err := c.SearchLeads(context.Background(), `(Meeting_Time:between:a,b)`)
	require.NoError(t, err)

	assert.Equal(t, "/Leads/search", gotPath)
	assert.Equal(t, `(Meeting_Time:between:a,b)`, gotCriteria)
	assert.Equal(t, "Zoho-oauthtoken tok-1", gotAuth)
	assert.Equal(t, "org-1", gotOrg)

	require.Len(t, records, 1)
	assert.Equal(t, "101", records[0].ID())
	assert.Equal(t, "Contacted", records[0].Status())
}

func TestSearchLeadsNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	records, err := testClient(srv).SearchLeads(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSearchLeadsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"INVALID_TOKEN"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).SearchLeads(context.Background(), "x")
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusUnauthorized, upstream.Status)
	assert.Contains(t, upstream.Body, "INVALID_TOKEN")
}

func TestSearchLeadsMissingOrg(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:0"})

	_, err := c.SearchLeads(context.Background(), "x")
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "ZOHO_ORG_ID", cfgErr.Missing)
}

func TestCreateLeadWrapsSingleElementBatch(t *testing.T) {
	var gotRaw []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRaw, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"code":"SUCCESS","details":{"id":"500"}}]}`))
	}))
	defer srv.Close()

	fields := map[string]any{
		"First_Name": "Jane",
		"Last_Name":  "Doe",
		"Mobile":     "5551234567",
	}

	envelope, err := testClient(srv).CreateLead(context.Background(), fields)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)

	var gotBody map[string]any
	require.NoError(t, json.Unmarshal(gotRaw, &gotBody))
	batch, ok := gotBody["data"].([]any)
	require.True(t, ok)
	require.Len(t, batch, 1)
	assert.Equal(t, "Jane", batch[0].(map[string]any)["First_Name"])

	data, ok := envelope["data"].([]any)
	require.True(t, ok)
	assert.Equal(t, "SUCCESS", data[0].(map[string]any)["code"])
}

func TestCreateLeadUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"MANDATORY_NOT_FOUND"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).CreateLead(context.Background(), map[string]any{})
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusBadRequest, upstream.Status)
}
