package github

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"social-login/internal/social"
)

// tokenResponse is the relay's reply to an authorization code exchange.
type tokenResponse struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// exchangeCode issues the single unauthenticated relay request that
// swaps an authorization code for an access token.
func (a *Adapter) exchangeCode(ctx context.Context, code string) (string, error) {
	logger := slog.With("provider", ProviderName, "operation", "exchange_code")

	endpoint := a.relayBaseURL + "/authenticate/" + url.PathEscape(code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", social.WrapError(ProviderName, social.KindAccessToken, "failed to build relay request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		logger.Warn("Relay request failed", "error", err)
		return "", social.WrapError(ProviderName, social.KindAccessToken, "access token request failed", err)
	}
	defer resp.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		logger.Warn("Failed to decode relay response", "error", err)
		return "", social.WrapError(ProviderName, social.KindAccessToken, "failed to decode relay response", err)
	}

	if tr.Error != "" {
		logger.Warn("Relay refused the authorization code", "relay_error", tr.Error)
		return "", social.WrapError(ProviderName, social.KindAccessToken, "relay refused the authorization code", errors.New(tr.Error))
	}
	if tr.Token == "" {
		logger.Warn("Relay response carried no token")
		return "", social.NewError(ProviderName, social.KindAccessToken, "no token in relay response")
	}

	return tr.Token, nil
}
