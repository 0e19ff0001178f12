package social

import (
	"context"
	"net/url"
	"time"
)

// Provider is the contract every social-login adapter exposes to the host
// aggregator. The probe payload is provider-specific and opaque to the
// aggregator: it is only ever piped from CheckLogin/Login into
// GenerateUser, which maps it to the canonical User.
type Provider interface {
	Name() string

	// Load resumes a pending authorization callback, if the supplied
	// callback query belongs to this provider. It returns the exchanged
	// access token, or the empty string when no callback was pending.
	// Callers must wait for Load before calling Login or CheckLogin.
	Load(ctx context.Context, callback url.Values) (string, error)

	// Login probes for an existing session and, when interactive
	// authorization is required, fails with a *RedirectError carrying
	// the provider's authorization URL.
	Login(ctx context.Context) (any, error)

	// CheckLogin probes the provider for a valid credential. With
	// autoLogin it behaves exactly like Login.
	CheckLogin(ctx context.Context, autoLogin bool) (any, error)

	// GenerateUser maps a successful probe payload into the canonical
	// user. Feeding it anything other than a payload produced by this
	// provider's CheckLogin is a caller bug.
	GenerateUser(response any) *User
}

// Profile is the provider-independent identity shape.
type Profile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ProfilePicURL string `json:"profilePicURL"`
}

// Token carries the bearer credential for a session. A zero ExpiresAt
// means the token never expires.
type Token struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Expired reports whether the token has passed its expiry. Tokens
// without an expiry never expire.
func (t Token) Expired() bool {
	return !t.ExpiresAt.IsZero() && time.Now().After(t.ExpiresAt)
}

// User is the canonical user/session record handed to the aggregator.
type User struct {
	Profile Profile `json:"profile"`
	Token   Token   `json:"token"`
}
