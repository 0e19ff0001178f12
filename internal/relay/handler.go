package relay

import (
	"log/slog"
	"net/http"

	"social-login/internal/shared/errors"
	"social-login/internal/shared/response"

	"github.com/go-chi/chi/v5"
)

// TokenResponse is the relay's success reply, the shape adapters
// expect from GET /authenticate/{code}.
type TokenResponse struct {
	Token string `json:"token"`
}

// AuthenticateHandler serves the code-for-token exchange endpoint.
type AuthenticateHandler struct {
	exchanger *Exchanger
	logger    *slog.Logger
}

// NewAuthenticateHandler creates the handler for GET /authenticate/{code}.
func NewAuthenticateHandler(exchanger *Exchanger) *AuthenticateHandler {
	return &AuthenticateHandler{
		exchanger: exchanger,
		logger:    slog.With("handler", "authenticate"),
	}
}

func (h *AuthenticateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.Error(w, r, h.logger, errors.MethodNotAllowed(r.Method))
		return
	}

	code := chi.URLParam(r, "code")
	if code == "" {
		response.Error(w, r, h.logger, errors.Validation("missing authorization code"))
		return
	}

	token, err := h.exchanger.Exchange(r.Context(), code)
	if err != nil {
		response.Error(w, r, h.logger, err)
		return
	}

	response.Success(w, http.StatusOK, TokenResponse{Token: token})
}
