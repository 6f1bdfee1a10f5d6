package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitcoinera/aragon/apps"
	"github.com/Bitcoinera/aragon/config"
	"github.com/Bitcoinera/aragon/routing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(config.ServerConfig{
		Addr:           ":0",
		AllowedOrigins: []string{"http://localhost:3000"},
	}, routing.NewParser(), apps.Builtin())
}

func TestHandleLocator(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Handler())
	defer srv.Close()

	t.Run("org locator", func(t *testing.T) {
		query := url.Values{}
		query.Set("pathname", "/mydao/voting")
		query.Set("search", "?p=%7B%22a%22%3A1%7D")

		resp, err := http.Get(srv.URL + "/api/locator?" + query.Encode())
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var locator routing.Locator
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&locator))
		assert.Equal(t, routing.ModeOrg, locator.Mode)
		require.NotNil(t, locator.Org)
		assert.Equal(t, "mydao.aragonid.eth", locator.Org.DAO)
		assert.Equal(t, "voting", locator.Org.InstanceID)
		require.NotNil(t, locator.Org.Params)
		assert.Equal(t, `{"a":1}`, *locator.Org.Params)
	})

	t.Run("missing pathname", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/locator")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/locator", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestHandlePath(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Handler())
	defer srv.Close()

	t.Run("builds canonical path", func(t *testing.T) {
		body := `{"dao": "mydao.aragonid.eth", "instance_id": "voting"}`
		resp, err := http.Post(srv.URL+"/api/path", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var reply pathResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
		assert.Equal(t, "/mydao/voting", reply.Path)
	})

	t.Run("missing dao", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/path", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/path", "application/json", strings.NewReader(`{`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandlePreferences(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Handler())
	defer srv.Close()

	query := url.Values{}
	query.Set("search", "?preferences=/admin&labels=xyz")
	resp, err := http.Get(srv.URL + "/api/preferences?" + query.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var prefs routing.Preferences
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&prefs))
	assert.Equal(t, "admin", prefs.Path)
	assert.Equal(t, map[string]string{routing.LabelsMarker: "xyz"}, prefs.Params)
}

func TestHandleNavigate(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Handler())
	defer srv.Close()

	// Follow no redirects so the 301 is observable
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	t.Run("legacy url answers permanent redirect", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/mydao.aragonid.eth/voting")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
		assert.Equal(t, "/mydao/voting", resp.Header.Get("Location"))
	})

	t.Run("canonical url answers locator", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/mydao/voting")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var locator routing.Locator
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&locator))
		assert.Equal(t, routing.ModeOrg, locator.Mode)
		assert.Equal(t, "mydao.aragonid.eth", locator.Org.DAO)
		assert.Nil(t, locator.Redirect)
	})

	t.Run("onboarding url answers start locator", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/open")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var locator routing.Locator
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&locator))
		assert.Equal(t, routing.ModeStart, locator.Mode)
		require.NotNil(t, locator.Start)
		assert.Equal(t, "open", locator.Start.Action)
	})
}

func TestSetRegistry(t *testing.T) {
	s := newTestServer(t)

	custom, err := apps.New(apps.Descriptor{ID: "voting", Name: "Voting", Route: "/governance"})
	require.NoError(t, err)
	s.SetRegistry(custom)

	path := s.currentBuilder().BuildPath(routing.OrgFields{DAO: "mydao.aragonid.eth", InstanceID: "voting"})
	assert.Equal(t, "/mydao/governance", path)
}

func TestCORS(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Handler())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))

	// Disallowed origin gets no CORS headers
	req.Header.Set("Origin", "http://evil.example.com")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Empty(t, resp2.Header.Get("Access-Control-Allow-Origin"))
}
