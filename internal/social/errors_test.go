package social

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NewError("github", KindAccessToken, "No access token available")
	assert.Equal(t, KindAccessToken, KindOf(err))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, KindAccessToken, KindOf(wrapped))

	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError("github", KindCheckLogin, "login check request failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRedirectErrorCarriesURL(t *testing.T) {
	err := &RedirectError{URL: "https://github.com/login/oauth/authorize?client_id=x"}

	assert.Contains(t, err.Error(), "authorization redirect required")
	assert.Contains(t, err.Error(), err.URL)
}
