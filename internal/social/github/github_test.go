package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"social-login/internal/social"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingTransport fails every request so tests can prove an operation
// performed no network activity.
type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, errors.New("unexpected network call")
}

func offlineClient(t *countingTransport) *http.Client {
	return &http.Client{Transport: t}
}

func TestNewRequiresAppID(t *testing.T) {
	a, err := New(Config{RedirectURI: "https://app.example.com/login"})

	require.Error(t, err)
	assert.Nil(t, a)
	assert.Equal(t, social.KindLoad, social.KindOf(err))
}

func TestNewRequiresRedirectURIInRedirectMode(t *testing.T) {
	a, err := New(Config{
		AppID:        "app123",
		RelayBaseURL: "https://relay.example.com",
	})

	require.Error(t, err)
	assert.Nil(t, a)
	assert.Equal(t, social.KindLoad, social.KindOf(err))
}

func TestNewDirectTokenMode(t *testing.T) {
	a, err := New(Config{AppID: "app123"})

	require.NoError(t, err)
	assert.Equal(t, ModeDirectToken, a.Mode())
	assert.Empty(t, a.AuthorizationURL())
}

func TestNewRedirectModeBuildsAuthorizationURL(t *testing.T) {
	a, err := New(Config{
		AppID:        "app123",
		RedirectURI:  "https://app.example.com/login",
		RelayBaseURL: "https://relay.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, ModeRedirectOAuth, a.Mode())

	u, err := url.Parse(a.AuthorizationURL())
	require.NoError(t, err)
	assert.Equal(t, "github.com", u.Host)
	assert.Equal(t, "/login/oauth/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "app123", q.Get("client_id"))
	assert.Equal(t, "https://app.example.com/login?rslCallback=github", q.Get("redirect_uri"))
	assert.Equal(t, "user", q.Get("scope"))
	assert.Equal(t, StateToken("https://app.example.com/login"), q.Get("state"))
}

func TestLoadDirectTokenModeIsANoOp(t *testing.T) {
	transport := &countingTransport{}
	a, err := New(Config{AppID: "app123", HTTPClient: offlineClient(transport)})
	require.NoError(t, err)

	token, err := a.Load(context.Background(), url.Values{
		"rslCallback": {"github"},
		"code":        {"ABC123"},
	})

	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Zero(t, transport.calls)
}

func TestLoadIgnoresForeignCallbacks(t *testing.T) {
	transport := &countingTransport{}
	a := newRedirectAdapter(t, "https://relay.example.com", offlineClient(transport))

	for _, callback := range []url.Values{
		{},
		{"code": {"ABC123"}},
		{"rslCallback": {"facebook"}, "code": {"ABC123"}},
	} {
		token, err := a.Load(context.Background(), callback)
		require.NoError(t, err)
		assert.Empty(t, token)
	}
	assert.Zero(t, transport.calls)
}

func TestLoadRejectsCallbackWithoutCode(t *testing.T) {
	transport := &countingTransport{}
	a := newRedirectAdapter(t, "https://relay.example.com", offlineClient(transport))

	_, err := a.Load(context.Background(), url.Values{"rslCallback": {"github"}})

	require.Error(t, err)
	assert.Equal(t, social.KindAccessToken, social.KindOf(err))
	assert.Contains(t, err.Error(), "Authorization code not found")
	assert.Zero(t, transport.calls)
}

func TestLoadExchangesCodeAtRelay(t *testing.T) {
	var relayHits int
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayHits++
		assert.Equal(t, "/authenticate/ABC123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token": "t1"}`))
	}))
	defer relay.Close()

	a := newRedirectAdapter(t, relay.URL, nil)

	token, err := a.Load(context.Background(), url.Values{
		"rslCallback": {"github"},
		"code":        {"ABC123"},
	})

	require.NoError(t, err)
	assert.Equal(t, "t1", token)
	assert.Equal(t, 1, relayHits)
	assert.Equal(t, "t1", a.accessToken)
}

func TestLoadRelayErrorLeavesTokenUnset(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": "denied"}`))
	}))
	defer relay.Close()

	a := newRedirectAdapter(t, relay.URL, nil)

	_, err := a.Load(context.Background(), url.Values{
		"rslCallback": {"github"},
		"code":        {"ABC123"},
	})

	require.Error(t, err)
	assert.Equal(t, social.KindAccessToken, social.KindOf(err))
	assert.ErrorContains(t, err, "denied")
	assert.Empty(t, a.accessToken)
}

func TestLoadRelayTransportFailurePreservesCause(t *testing.T) {
	a := newRedirectAdapter(t, "http://127.0.0.1:0", nil)

	_, err := a.Load(context.Background(), url.Values{
		"rslCallback": {"github"},
		"code":        {"ABC123"},
	})

	require.Error(t, err)
	assert.Equal(t, social.KindAccessToken, social.KindOf(err))

	var adapterErr *social.Error
	require.ErrorAs(t, err, &adapterErr)
	assert.Error(t, adapterErr.Cause)
}

func TestCheckLoginWithoutTokenSkipsNetwork(t *testing.T) {
	transport := &countingTransport{}
	a := newRedirectAdapter(t, "https://relay.example.com", offlineClient(transport))

	_, err := a.CheckLogin(context.Background(), false)

	require.Error(t, err)
	assert.Equal(t, social.KindAccessToken, social.KindOf(err))
	assert.Contains(t, err.Error(), "No access token available")
	assert.Zero(t, transport.calls)
}

func TestCheckLoginSucceedsAfterLoad(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token": "t1"}`))
	}))
	defer relay.Close()

	graphql := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"viewer": {"id": "1", "name": "Ada", "email": "a@x.com", "avatarUrl": "u"}}}`))
	}))
	defer graphql.Close()

	a := newRedirectAdapter(t, relay.URL, nil)
	a.graphqlEndpoint = graphql.URL

	_, err := a.Load(context.Background(), url.Values{
		"rslCallback": {"github"},
		"code":        {"ABC123"},
	})
	require.NoError(t, err)

	resp, err := a.CheckLogin(context.Background(), false)
	require.NoError(t, err)

	viewer := resp.(*ViewerResponse).Data.Viewer
	assert.Equal(t, "1", viewer.ID)
	assert.Equal(t, "Ada", viewer.Name)
}

func TestCheckLoginDirectTokenModeUsesAppID(t *testing.T) {
	graphql := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer app123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"viewer": {"id": "1", "name": "Ada", "email": "a@x.com", "avatarUrl": "u"}}}`))
	}))
	defer graphql.Close()

	a, err := New(Config{AppID: "app123"})
	require.NoError(t, err)
	a.graphqlEndpoint = graphql.URL

	_, err = a.CheckLogin(context.Background(), false)
	require.NoError(t, err)
}

func TestCheckLoginRejectsErrorPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"errors field", `{"errors": [{"message": "something went wrong"}]}`},
		{"message field", `{"message": "Bad credentials"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graphql := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer graphql.Close()

			a, err := New(Config{AppID: "app123"})
			require.NoError(t, err)
			a.graphqlEndpoint = graphql.URL

			_, err = a.CheckLogin(context.Background(), false)
			require.Error(t, err)
			assert.Equal(t, social.KindCheckLogin, social.KindOf(err))
		})
	}
}

func TestCheckLoginTransportFailurePreservesCause(t *testing.T) {
	a, err := New(Config{AppID: "app123"})
	require.NoError(t, err)
	a.graphqlEndpoint = "http://127.0.0.1:0"

	_, err = a.CheckLogin(context.Background(), false)
	require.Error(t, err)
	assert.Equal(t, social.KindCheckLogin, social.KindOf(err))

	var adapterErr *social.Error
	require.ErrorAs(t, err, &adapterErr)
	assert.Error(t, adapterErr.Cause)
}

func TestLoginDirectTokenModePassesProbeErrorThrough(t *testing.T) {
	graphql := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "Bad credentials"}`))
	}))
	defer graphql.Close()

	a, err := New(Config{AppID: "app123"})
	require.NoError(t, err)
	a.graphqlEndpoint = graphql.URL

	_, err = a.Login(context.Background())
	require.Error(t, err)
	assert.Equal(t, social.KindCheckLogin, social.KindOf(err))

	var redirectErr *social.RedirectError
	assert.False(t, errors.As(err, &redirectErr))
}

func TestLoginRedirectModeSignalsRedirect(t *testing.T) {
	transport := &countingTransport{}
	a := newRedirectAdapter(t, "https://relay.example.com", offlineClient(transport))

	_, err := a.Login(context.Background())
	require.Error(t, err)

	var redirectErr *social.RedirectError
	require.ErrorAs(t, err, &redirectErr)
	assert.Equal(t, a.AuthorizationURL(), redirectErr.URL)
}

func TestLoginReturnsSessionWhenProbeSucceeds(t *testing.T) {
	graphql := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"viewer": {"id": "1", "name": "Ada", "email": "a@x.com", "avatarUrl": "u"}}}`))
	}))
	defer graphql.Close()

	a, err := New(Config{AppID: "app123"})
	require.NoError(t, err)
	a.graphqlEndpoint = graphql.URL

	resp, err := a.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", resp.(*ViewerResponse).Data.Viewer.Name)
}

func TestCheckLoginAutoLoginDelegatesToLogin(t *testing.T) {
	a := newRedirectAdapter(t, "https://relay.example.com", offlineClient(&countingTransport{}))

	_, err := a.CheckLogin(context.Background(), true)
	require.Error(t, err)

	var redirectErr *social.RedirectError
	require.ErrorAs(t, err, &redirectErr)
}

func newRedirectAdapter(t *testing.T, relayBaseURL string, client *http.Client) *Adapter {
	t.Helper()

	a, err := New(Config{
		AppID:        "app123",
		RedirectURI:  "https://app.example.com/login",
		RelayBaseURL: relayBaseURL,
		HTTPClient:   client,
	})
	require.NoError(t, err)
	return a
}
