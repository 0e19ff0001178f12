package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"social-login/internal/social"
)

const (
	// ProviderName is the value the callback marker must echo back.
	ProviderName = "github"

	callbackMarker = "rslCallback"
	oauthHost      = "https://github.com"
	oauthScope     = "user"

	defaultGraphQLEndpoint = "https://api.github.com/graphql"
	defaultTimeout         = 10 * time.Second
)

// Mode selects how the adapter authenticates against GitHub.
type Mode int

const (
	// ModeDirectToken uses the app identifier itself as the bearer
	// credential; no redirect handshake occurs.
	ModeDirectToken Mode = iota
	// ModeRedirectOAuth requires a browser redirect to GitHub's
	// authorization page and a relay to exchange the resulting code
	// for a token.
	ModeRedirectOAuth
)

func (m Mode) String() string {
	if m == ModeRedirectOAuth {
		return "redirect_oauth"
	}
	return "direct_token"
}

// Config configures a GitHub login adapter.
type Config struct {
	// AppID is the OAuth client identifier. Required.
	AppID string
	// RedirectURI is where GitHub sends the user back after
	// authorization. Required in redirect mode.
	RedirectURI string
	// RelayBaseURL points at the token-exchange relay. Supplying it
	// switches the adapter into redirect mode.
	RelayBaseURL string
	// HTTPClient overrides the default client (10s timeout).
	HTTPClient *http.Client
}

// Adapter implements the social.Provider contract for GitHub.
//
// All configuration-derived fields are fixed at construction; the only
// later write is the cached access token, recorded once when Load
// completes a callback exchange. The adapter is not safe for use while
// a Load call is still in flight.
type Adapter struct {
	appID        string
	relayBaseURL string
	mode         Mode
	authorizeURL string
	state        string

	accessToken string

	http            *http.Client
	graphqlEndpoint string
}

var _ social.Provider = (*Adapter)(nil)

// New validates the configuration, decides the operating mode, and in
// redirect mode precomputes the authorization URL with its
// deterministic state parameter.
func New(cfg Config) (*Adapter, error) {
	logger := slog.With("provider", ProviderName, "operation", "load")

	if cfg.AppID == "" {
		logger.Warn("Rejecting configuration without app identifier")
		return nil, social.NewError(ProviderName, social.KindLoad, "appId is required")
	}

	a := &Adapter{
		appID:           cfg.AppID,
		mode:            ModeDirectToken,
		http:            cfg.HTTPClient,
		graphqlEndpoint: defaultGraphQLEndpoint,
	}
	if a.http == nil {
		a.http = &http.Client{Timeout: defaultTimeout}
	}

	if cfg.RelayBaseURL != "" {
		if cfg.RedirectURI == "" {
			logger.Warn("Rejecting redirect-mode configuration without redirect URI")
			return nil, social.NewError(ProviderName, social.KindLoad, "redirectUri is required in redirect mode")
		}

		callback, err := callbackURL(cfg.RedirectURI)
		if err != nil {
			return nil, social.WrapError(ProviderName, social.KindLoad, "invalid redirect URI", err)
		}

		a.mode = ModeRedirectOAuth
		a.relayBaseURL = strings.TrimSuffix(cfg.RelayBaseURL, "/")
		a.state = StateToken(cfg.RedirectURI)
		a.authorizeURL = authorizeURL(cfg.AppID, callback, a.state)
	}

	logger.Debug("Adapter configured",
		"mode", a.mode.String(),
		"has_relay", a.relayBaseURL != "")

	return a, nil
}

// Name returns the provider identifier used by the host aggregator.
func (a *Adapter) Name() string {
	return ProviderName
}

// Mode reports the operating mode decided at construction.
func (a *Adapter) Mode() Mode {
	return a.mode
}

// AuthorizationURL returns the precomputed authorization URL, or the
// empty string in direct-token mode.
func (a *Adapter) AuthorizationURL() string {
	return a.authorizeURL
}

// Load resumes a pending authorization callback. The callback values
// are the query parameters of the navigation that re-entered the host
// application; when they carry this provider's marker, Load drives the
// relay token exchange to completion and returns the access token.
// Without a pending callback (or in direct-token mode) it returns the
// empty string with no network activity.
//
// Calling Load again while a previous exchange is still in flight is
// unsupported.
func (a *Adapter) Load(ctx context.Context, callback url.Values) (string, error) {
	if a.mode != ModeRedirectOAuth {
		return "", nil
	}
	if callback.Get(callbackMarker) != ProviderName {
		return "", nil
	}

	logger := slog.With("provider", ProviderName, "operation", "load")

	code := callback.Get("code")
	if code == "" {
		logger.Warn("Authorization callback without code parameter")
		return "", social.NewError(ProviderName, social.KindAccessToken, "Authorization code not found")
	}

	token, err := a.exchangeCode(ctx, code)
	if err != nil {
		return "", err
	}

	a.accessToken = token
	logger.Debug("Authorization callback completed")
	return token, nil
}

// Login probes for an existing session. When the probe fails in
// redirect mode it fails with a *social.RedirectError carrying the
// authorization URL; the host navigates there and the handshake
// completes on the next Load. In direct-token mode there is no
// interactive flow and the probe's error is returned unchanged.
func (a *Adapter) Login(ctx context.Context) (any, error) {
	resp, err := a.checkLogin(ctx)
	if err == nil {
		return resp, nil
	}
	if a.mode != ModeRedirectOAuth {
		return nil, err
	}

	slog.With("provider", ProviderName, "operation", "login").
		Debug("No valid session, authorization redirect required", "error", err)
	return nil, &social.RedirectError{URL: a.authorizeURL}
}

// CheckLogin probes GitHub for a valid credential and returns the raw
// viewer-bearing response on success. With autoLogin it behaves exactly
// like Login.
func (a *Adapter) CheckLogin(ctx context.Context, autoLogin bool) (any, error) {
	if autoLogin {
		return a.Login(ctx)
	}
	resp, err := a.checkLogin(ctx)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// bearerToken prefers the exchanged access token and falls back to the
// app identifier, which is what direct-token mode authenticates with.
func (a *Adapter) bearerToken() string {
	if a.accessToken != "" {
		return a.accessToken
	}
	return a.appID
}

// callbackURL appends the provider marker to the redirect target so
// the next page load can recognize a pending callback.
func callbackURL(redirectURI string) (string, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(callbackMarker, ProviderName)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func authorizeURL(appID, callback, state string) string {
	q := url.Values{}
	q.Set("client_id", appID)
	q.Set("redirect_uri", callback)
	q.Set("scope", oauthScope)
	q.Set("state", state)
	return oauthHost + "/login/oauth/authorize?" + q.Encode()
}
