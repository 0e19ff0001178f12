package relay

import (
	"context"
	"log/slog"

	"social-login/internal/shared/errors"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// Exchanger swaps authorization codes for GitHub access tokens. It is
// the server-side half of the redirect handshake and the only place
// the client secret lives.
type Exchanger struct {
	config *oauth2.Config
}

// NewExchanger creates an exchanger for a GitHub OAuth application.
func NewExchanger(clientID, clientSecret string) *Exchanger {
	return &Exchanger{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     githuboauth.Endpoint,
		},
	}
}

// Exchange redeems a single-use authorization code at GitHub's token
// endpoint and returns the resulting access token.
func (e *Exchanger) Exchange(ctx context.Context, code string) (string, error) {
	logger := slog.With("component", "exchanger", "operation", "exchange")

	token, err := e.config.Exchange(ctx, code)
	if err != nil {
		logger.Warn("Token exchange failed", "error", err)
		return "", errors.WrapExternal("failed to exchange authorization code", err)
	}

	if token.AccessToken == "" {
		return "", errors.External("provider returned no access token")
	}

	logger.Debug("Authorization code exchanged")
	return token.AccessToken, nil
}
