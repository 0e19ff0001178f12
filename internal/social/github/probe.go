package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"social-login/internal/social"
)

const viewerQuery = "query { viewer { id, name, email, avatarUrl } }"

// Viewer is the authenticated GitHub identity returned by the probe.
type Viewer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// GraphQLError is a single entry of a GraphQL error payload.
type GraphQLError struct {
	Message string `json:"message"`
}

// ViewerResponse is the raw viewer-bearing probe response. A body
// carrying Message or Errors is a provider-side failure and is rejected
// at the network boundary; code past the probe only ever sees a
// response with a populated viewer.
type ViewerResponse struct {
	Data struct {
		Viewer Viewer `json:"viewer"`
	} `json:"data"`
	Message string         `json:"message,omitempty"`
	Errors  []GraphQLError `json:"errors,omitempty"`
}

// checkLogin issues the authenticated GraphQL probe confirming the
// current credential and fetching the viewer profile.
func (a *Adapter) checkLogin(ctx context.Context) (*ViewerResponse, error) {
	logger := slog.With("provider", ProviderName, "operation", "check_login")

	if a.mode == ModeRedirectOAuth && a.accessToken == "" {
		logger.Debug("No access token recorded, skipping probe")
		return nil, social.NewError(ProviderName, social.KindAccessToken, "No access token available")
	}

	body, err := json.Marshal(map[string]string{"query": viewerQuery})
	if err != nil {
		return nil, social.WrapError(ProviderName, social.KindCheckLogin, "failed to encode probe query", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.graphqlEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, social.WrapError(ProviderName, social.KindCheckLogin, "failed to build probe request", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.bearerToken())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		logger.Warn("Probe request failed", "error", err)
		return nil, social.WrapError(ProviderName, social.KindCheckLogin, "login check request failed", err)
	}
	defer resp.Body.Close()

	var vr ViewerResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		logger.Warn("Failed to decode probe response", "error", err)
		return nil, social.WrapError(ProviderName, social.KindCheckLogin, "failed to decode probe response", err)
	}

	if vr.Message != "" {
		logger.Warn("Provider rejected the credential", "message", vr.Message)
		return nil, social.WrapError(ProviderName, social.KindCheckLogin, "provider rejected the credential", errors.New(vr.Message))
	}
	if len(vr.Errors) > 0 {
		logger.Warn("Provider returned errors", "first_error", vr.Errors[0].Message)
		return nil, social.WrapError(ProviderName, social.KindCheckLogin, "provider returned errors", errors.New(vr.Errors[0].Message))
	}

	logger.Debug("Probe succeeded", "viewer_id", vr.Data.Viewer.ID)
	return &vr, nil
}
